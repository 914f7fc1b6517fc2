package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "asramaku_backend/internals/features/finance/fees/dto"
	model "asramaku_backend/internals/features/finance/fees/model"
	service "asramaku_backend/internals/features/finance/fees/service"
	helper "asramaku_backend/internals/helpers"
)

type StudentDuesController struct {
	DB *gorm.DB
}

func NewStudentDuesController(db *gorm.DB) *StudentDuesController {
	return &StudentDuesController{DB: db}
}

/* ======================= GENERATE ======================= */
// POST /api/a/fees/dues/generate
// Sebulan sekali per hostel; duplikat → 409.
func (h *StudentDuesController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateDuesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// scope: admin dipaksa ke hostel token-nya; owner bebas
	hostelID, err := helper.ResolveHostelScope(c, req.HostelID)
	if err != nil {
		return err
	}
	if hostelID == uuid.Nil {
		return fiber.NewError(fiber.StatusBadRequest, "hostel_id wajib diisi")
	}

	summary, err := service.GenerateMonthlyDues(h.DB, hostelID, req.MonthYear)
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "Tagihan bulanan berhasil digenerate", summary)
}

/* ======================== LIST DUES PER PENGHUNI ======================== */
// GET /api/a/fees/dues?student_id=&month=&include_superseded=
func (h *StudentDuesController) ListByStudent(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListStudentDuesQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validator.New().Struct(q); err != nil {
		return helper.JsonValidationError(c, err)
	}

	base := h.DB.Model(&model.StudentDueModel{}).
		Where("student_due_hostel_id = ? AND student_due_student_id = ?", hostelID, *q.StudentID)

	if q.Month != nil && strings.TrimSpace(*q.Month) != "" {
		if _, err := service.ParseMonthKey(*q.Month); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "month wajib berformat YYYY-MM")
		}
		base = base.Where("student_due_month = ?", *q.Month)
	}

	// Tanpa include_superseded: sembunyikan baris yang sisanya sudah
	// dibilling-ulang ke bulan lain, supaya penjumlahan lintas bulan
	// tidak menghitung uang yang sama dua kali.
	if !q.IncludeSuperseded {
		base = base.Where(`NOT EXISTS (
			SELECT 1 FROM student_dues later
			WHERE later.student_due_student_id = student_dues.student_due_student_id
			  AND later.student_due_fee_category_id = student_dues.student_due_fee_category_id
			  AND later.student_due_is_carried_forward = TRUE
			  AND later.student_due_carried_from_month = student_dues.student_due_month
		)`)
	}

	var list []model.StudentDueModel
	if err := base.
		Order("student_due_due_date ASC, student_due_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	return helper.JsonOK(c, "OK", dto.FromStudentDueModels(list))
}

/* ======================== RINGKASAN PER PENGHUNI ======================== */
// GET /api/a/students/dues?hostel_id=&month=
func (h *StudentDuesController) StudentsWithDues(c *fiber.Ctx) error {
	var requested *uuid.UUID
	if s := strings.TrimSpace(c.Query("hostel_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format hostel_id tidak valid")
		}
		requested = &id
	}

	hostelID, err := helper.ResolveHostelScope(c, requested)
	if err != nil {
		return err
	}

	month := strings.TrimSpace(c.Query("month"))
	summaries, err := service.GetStudentsWithDues(h.DB, hostelID, month)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "OK", summaries)
}
