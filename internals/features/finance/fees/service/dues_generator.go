package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "asramaku_backend/internals/features/finance/fees/model"
)

/* ===============================
   Generator tagihan bulanan
=================================*/

// EligibleStudent: penghuni Active dengan kamar ter-assign; rent diambil
// dari kamarnya saat generate (bukan snapshot lama).
type EligibleStudent struct {
	StudentID       uuid.UUID
	RoomRentMonthly float64
}

type GenerationSummary struct {
	MonthYear         string `json:"month_year"`
	StudentsProcessed int    `json:"students_processed"`
	StudentsSkipped   int    `json:"students_skipped"`
	CategoriesApplied int    `json:"categories_applied"`
	FreshCharges      int    `json:"fresh_charges"`
	CarriedForward    int    `json:"carried_forward"`
	RowsInserted      int    `json:"rows_inserted"`
}

// BuildFreshCharges membuat satu baris tagihan baru per kategori aktif.
// Kategori "Monthly Rent" memakai sewa kamar penghuni; lainnya nominal flat.
func BuildFreshCharges(
	hostelID uuid.UUID,
	st EligibleStudent,
	categories []model.FeeCategoryModel,
	monthKey string,
	dueDate time.Time,
) []model.StudentDueModel {
	rows := make([]model.StudentDueModel, 0, len(categories))
	for _, cat := range categories {
		amount := cat.FeeCategoryAmount
		if strings.EqualFold(cat.FeeCategoryName, model.FeeCategoryMonthlyRent) {
			amount = st.RoomRentMonthly
		}
		rows = append(rows, model.StudentDueModel{
			StudentDueHostelID:      hostelID,
			StudentDueStudentID:     st.StudentID,
			StudentDueFeeCategoryID: cat.FeeCategoryID,
			StudentDueMonth:         monthKey,
			StudentDueAmount:        amount,
			StudentDuePaidAmount:    0,
			StudentDueBalanceAmount: amount,
			StudentDueIsPaid:        false,
			StudentDueDueDate:       dueDate,
		})
	}
	return rows
}

// BuildCarryForwards membilling-ulang sisa tagihan yang belum lunas dari
// bulan-bulan sebelumnya sebagai baris baru di bulan target. Baris asal
// TIDAK disentuh - keduanya merepresentasikan uang yang sama (perilaku
// warisan sistem; lihat DESIGN.md).
func BuildCarryForwards(
	prior []model.StudentDueModel,
	monthKey string,
	dueDate time.Time,
) []model.StudentDueModel {
	rows := make([]model.StudentDueModel, 0, len(prior))
	for _, src := range prior {
		if src.StudentDueIsPaid || src.StudentDueBalanceAmount <= 0 {
			continue
		}
		from := src.StudentDueMonth
		rows = append(rows, model.StudentDueModel{
			StudentDueHostelID:         src.StudentDueHostelID,
			StudentDueStudentID:        src.StudentDueStudentID,
			StudentDueFeeCategoryID:    src.StudentDueFeeCategoryID,
			StudentDueMonth:            monthKey,
			StudentDueAmount:           src.StudentDueBalanceAmount, // sisa, bukan nominal awal
			StudentDuePaidAmount:       0,
			StudentDueBalanceAmount:    src.StudentDueBalanceAmount,
			StudentDueIsPaid:           false,
			StudentDueDueDate:          dueDate,
			StudentDueIsCarriedForward: true,
			StudentDueCarriedFromMonth: &from,
		})
	}
	return rows
}

// PlanMonthlyDues mengambil semua keputusan generate di atas data yang
// sudah di-load: guard duplikat (409), kategori kosong (400), penghuni
// eligible kosong (sukses no-op, semua counter nol), lalu menyusun baris
// carry-forward + tagihan baru. Pure; store tidak disentuh.
func PlanMonthlyDues(
	hostelID uuid.UUID,
	monthYear string,
	dueDate time.Time,
	existingRows int64,
	categories []model.FeeCategoryModel,
	eligible []EligibleStudent,
	activeTotal int64,
	prior []model.StudentDueModel,
) ([]model.StudentDueModel, *GenerationSummary, error) {
	if existingRows > 0 {
		return nil, nil, fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Tagihan bulan %s untuk hostel ini sudah pernah digenerate", monthYear))
	}
	if len(categories) == 0 {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest,
			"Belum ada kategori biaya bulanan aktif untuk hostel ini")
	}

	summary := &GenerationSummary{MonthYear: monthYear}

	// yang Active tapi tanpa kamar dilewati, tapi tetap dilaporkan
	summary.StudentsSkipped = int(activeTotal) - len(eligible)

	if len(eligible) == 0 {
		// no-op success: tidak ada baris, counter generate semua nol
		return nil, summary, nil
	}

	summary.CategoriesApplied = len(categories)
	summary.StudentsProcessed = len(eligible)

	rows := BuildCarryForwards(prior, monthYear, dueDate)
	summary.CarriedForward = len(rows)

	for _, st := range eligible {
		fresh := BuildFreshCharges(hostelID, st, categories, monthYear, dueDate)
		summary.FreshCharges += len(fresh)
		rows = append(rows, fresh...)
	}
	summary.RowsInserted = len(rows)

	return rows, summary, nil
}

// GenerateMonthlyDues menjalankan generate tagihan sebulan sekali per hostel.
// Seluruhnya dalam satu transaksi; guard duplikat + advisory lock menutup
// race dua request generate bersamaan.
func GenerateMonthlyDues(db *gorm.DB, hostelID uuid.UUID, monthYear string) (*GenerationSummary, error) {
	if hostelID == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "hostel_id wajib diisi")
	}
	monthYear = strings.TrimSpace(monthYear)
	if _, err := ParseMonthKey(monthYear); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "month_year wajib berformat YYYY-MM")
	}
	dueDate, err := DueDateFor(monthYear)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var summary *GenerationSummary

	txErr := db.Transaction(func(tx *gorm.DB) error {
		// 🔒 serialisasi generate per (hostel, bulan)
		if err := tx.Exec(
			`SELECT pg_advisory_xact_lock(hashtext(?))`,
			hostelID.String()+":"+monthYear,
		).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		// Guard duplikat: sudah pernah digenerate?
		var existing int64
		if err := tx.Model(&model.StudentDueModel{}).
			Where("student_due_hostel_id = ? AND student_due_month = ?", hostelID, monthYear).
			Count(&existing).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		// Kategori biaya bulanan aktif
		var categories []model.FeeCategoryModel
		if err := tx.
			Where("fee_category_hostel_id = ? AND fee_category_is_active = TRUE AND fee_category_frequency = ?",
				hostelID, model.FeeFrequencyMonthly).
			Order("fee_category_name ASC").
			Find(&categories).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		// Penghuni eligible: Active + punya kamar
		var eligible []EligibleStudent
		if err := tx.Table("students").
			Select("students.student_id AS student_id, rooms.room_rent_monthly AS room_rent_monthly").
			Joins("JOIN rooms ON rooms.room_id = students.student_room_id").
			Where("students.student_hostel_id = ? AND students.student_status = 'Active'", hostelID).
			Where("students.student_room_id IS NOT NULL").
			Where("students.student_deleted_at IS NULL").
			Scan(&eligible).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		var activeTotal int64
		if err := tx.Table("students").
			Where("student_hostel_id = ? AND student_status = 'Active' AND student_deleted_at IS NULL", hostelID).
			Count(&activeTotal).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		// Sisa tagihan belum lunas dari bulan < target (carry-forward)
		var prior []model.StudentDueModel
		if len(eligible) > 0 {
			studentIDs := make([]uuid.UUID, 0, len(eligible))
			for _, st := range eligible {
				studentIDs = append(studentIDs, st.StudentID)
			}
			if err := tx.
				Where("student_due_hostel_id = ? AND student_due_is_paid = FALSE", hostelID).
				Where("student_due_student_id IN ?", studentIDs).
				Where("student_due_month < ?", monthYear).
				Find(&prior).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
		}

		rows, plan, err := PlanMonthlyDues(hostelID, monthYear, dueDate,
			existing, categories, eligible, activeTotal, prior)
		if err != nil {
			return err
		}
		summary = plan

		// Bulk insert - all or nothing
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, 500).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError,
					"Gagal menyimpan tagihan: "+err.Error())
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return summary, nil
}
