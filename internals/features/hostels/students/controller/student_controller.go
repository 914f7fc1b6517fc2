package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomModel "asramaku_backend/internals/features/hostels/rooms/model"
	dto "asramaku_backend/internals/features/hostels/students/dto"
	model "asramaku_backend/internals/features/hostels/students/model"
	helper "asramaku_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// pastikan kamar milik hostel yang sama & masih ada slot
func (h *StudentController) ensureRoomAssignable(hostelID, roomID interface{}) error {
	var room roomModel.RoomModel
	if err := h.DB.
		Where("room_id = ? AND room_hostel_id = ? AND room_is_active = TRUE", roomID, hostelID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Kamar tidak ditemukan di hostel ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var occupancy int64
	if err := h.DB.Model(&model.StudentModel{}).
		Where("student_room_id = ? AND student_status = ?", roomID, model.StudentStatusActive).
		Count(&occupancy).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if occupancy >= int64(room.RoomCapacity) {
		return fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Kamar %s sudah penuh (kapasitas %d)", room.RoomNumber, room.RoomCapacity))
	}
	return nil
}

/* ======================= CREATE ======================= */
// POST /api/a/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.StudentRoomID != nil {
		if err := h.ensureRoomAssignable(hostelID, *req.StudentRoomID); err != nil {
			return err
		}
	}

	m := req.ToModel(hostelID)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	return helper.JsonCreated(c, "Penghuni berhasil didaftarkan", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/students?status=&room_id=&q=
func (h *StudentController) List(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.StudentModel{}).
		Where("student_hostel_id = ?", hostelID)

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		base = base.Where("student_status = ?", status)
	}
	if roomID := strings.TrimSpace(c.Query("room_id")); roomID != "" {
		base = base.Where("student_room_id = ?", roomID)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("(student_name ILIKE ? OR student_phone ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	var list []model.StudentModel
	if err := base.
		Order("student_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", dto.FromModels(list), &pg)
}

/* ======================== GET BY ID ======================== */
// GET /api/a/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_hostel_id = ?", id, hostelID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonStoreError(c, err)
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE (PUT, partial) ======================== */
// PUT /api/a/students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.StudentRoomID != nil {
		if err := h.ensureRoomAssignable(hostelID, *req.StudentRoomID); err != nil {
			return err
		}
	}

	patch := req.ToPatch()
	if len(patch) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := h.DB.Model(&model.StudentModel{}).
		Where("student_id = ? AND student_hostel_id = ?", id, hostelID).
		Updates(patch)
	if res.Error != nil {
		return helper.JsonStoreError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	var updated model.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_hostel_id = ?", id, hostelID).
		First(&updated).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonUpdated(c, "Data penghuni berhasil diperbarui", dto.FromModel(updated))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/students/:id
func (h *StudentController) Delete(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	res := h.DB.
		Where("student_id = ? AND student_hostel_id = ?", id, hostelID).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return helper.JsonStoreError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Data penghuni berhasil dihapus", fiber.Map{"id": id})
}
