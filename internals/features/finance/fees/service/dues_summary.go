package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

/* ===============================
   Query layer: ringkasan tagihan per penghuni
=================================*/

const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusNoDues  = "No Dues"
)

// DueLineItem: satu baris tagihan + nama kategorinya (untuk tampilan)
type DueLineItem struct {
	StudentDueID     uuid.UUID  `json:"student_due_id"`
	FeeCategoryID    uuid.UUID  `json:"fee_category_id"`
	FeeCategoryName  string     `json:"fee_category_name"`
	DueMonth         string     `json:"due_month"`
	DueAmount        float64    `json:"due_amount"`
	PaidAmount       float64    `json:"paid_amount"`
	BalanceAmount    float64    `json:"balance_amount"`
	IsPaid           bool       `json:"is_paid"`
	DueDate          time.Time  `json:"due_date"`
	PaidDate         *time.Time `json:"paid_date,omitempty"`
	IsCarriedForward bool       `json:"is_carried_forward"`
	CarriedFromMonth *string    `json:"carried_from_month,omitempty"`
}

type StudentDuesSummary struct {
	StudentID   uuid.UUID  `json:"student_id"`
	StudentName string     `json:"student_name"`
	HostelID    uuid.UUID  `json:"hostel_id"`
	HostelName  string     `json:"hostel_name"`
	RoomID      *uuid.UUID `json:"room_id,omitempty"`
	RoomNumber  *string    `json:"room_number,omitempty"`

	TotalDues     float64 `json:"total_dues"`
	TotalPaid     float64 `json:"total_paid"`
	UnpaidCount   int     `json:"unpaid_count"`
	PaidCount     int     `json:"paid_count"`
	PaymentStatus string  `json:"payment_status"`

	UnpaidDues []DueLineItem `json:"unpaid_dues"`
	PaidDues   []DueLineItem `json:"paid_dues"`
}

// studentDisplayRow: hasil join students + rooms + hostels untuk tampilan
type studentDisplayRow struct {
	StudentID       uuid.UUID
	StudentName     string
	HostelID        uuid.UUID
	HostelName      string
	RoomID          *uuid.UUID
	RoomNumber      *string
	RoomRentMonthly float64
}

// DeriveStatus: kebijakan status persis mengikuti sistem lama.
// - tanpa baris tagihan + rent > 0 → "Pending" dengan total_dues = proyeksi rent
// - tanpa baris tagihan + rent 0   → "No Dues"
// - ada baris & total_dues > 0     → "Pending"
// - ada baris & total_dues == 0    → "Paid"
func DeriveStatus(hasRows bool, totalDues, monthlyRent float64) (status string, projectedDues float64) {
	if !hasRows {
		if monthlyRent > 0 {
			return PaymentStatusPending, monthlyRent
		}
		return PaymentStatusNoDues, 0
	}
	if totalDues > 0 {
		return PaymentStatusPending, totalDues
	}
	return PaymentStatusPaid, 0
}

// SummarizeStudent menyusun ringkasan satu penghuni dari baris tagihan
// bulan target. Pure function; tidak menyentuh store.
func SummarizeStudent(st studentDisplayRow, dues []DueLineItem) StudentDuesSummary {
	out := StudentDuesSummary{
		StudentID:   st.StudentID,
		StudentName: st.StudentName,
		HostelID:    st.HostelID,
		HostelName:  st.HostelName,
		RoomID:      st.RoomID,
		RoomNumber:  st.RoomNumber,
		UnpaidDues:  []DueLineItem{},
		PaidDues:    []DueLineItem{},
	}

	for _, d := range dues {
		// total_paid menghitung SEMUA baris bulan itu (lunas maupun belum)
		out.TotalPaid += d.PaidAmount
		if d.IsPaid {
			out.PaidCount++
			out.PaidDues = append(out.PaidDues, d)
		} else {
			out.UnpaidCount++
			out.TotalDues += d.BalanceAmount
			out.UnpaidDues = append(out.UnpaidDues, d)
		}
	}

	status, projected := DeriveStatus(len(dues) > 0, out.TotalDues, st.RoomRentMonthly)
	out.PaymentStatus = status
	if len(dues) == 0 {
		out.TotalDues = projected // proyeksi rent, belum ada baris tagihan
	}
	return out
}

// GetStudentsWithDues: agregasi read-only per penghuni Active untuk bulan
// target (default bulan berjalan). hostelID == uuid.Nil → semua hostel
// (hanya owner yang sampai ke sini tanpa scope).
func GetStudentsWithDues(db *gorm.DB, hostelID uuid.UUID, monthKey string) ([]StudentDuesSummary, error) {
	if monthKey == "" {
		monthKey = MonthKeyOf(time.Now())
	}
	if _, err := ParseMonthKey(monthKey); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "month wajib berformat YYYY-MM")
	}

	type dueRow struct {
		DueLineItem
		StudentID uuid.UUID
	}

	var (
		students []studentDisplayRow
		dueRows  []dueRow
	)

	// dua query independen → jalan paralel
	var g errgroup.Group

	g.Go(func() error {
		q := db.Table("students").
			Select(`students.student_id AS student_id,
				students.student_name AS student_name,
				hostels.hostel_id AS hostel_id,
				hostels.hostel_name AS hostel_name,
				rooms.room_id AS room_id,
				rooms.room_number AS room_number,
				COALESCE(rooms.room_rent_monthly, 0) AS room_rent_monthly`).
			Joins("JOIN hostels ON hostels.hostel_id = students.student_hostel_id").
			Joins("LEFT JOIN rooms ON rooms.room_id = students.student_room_id").
			Where("students.student_status = 'Active' AND students.student_deleted_at IS NULL")
		if hostelID != uuid.Nil {
			q = q.Where("students.student_hostel_id = ?", hostelID)
		}
		return q.Order("students.student_name ASC").Scan(&students).Error
	})

	g.Go(func() error {
		q := db.Table("student_dues").
			Select(`student_dues.student_due_id AS student_due_id,
				student_dues.student_due_student_id AS student_id,
				student_dues.student_due_fee_category_id AS fee_category_id,
				fee_structure.fee_category_name AS fee_category_name,
				student_dues.student_due_month AS due_month,
				student_dues.student_due_amount AS due_amount,
				student_dues.student_due_paid_amount AS paid_amount,
				student_dues.student_due_balance_amount AS balance_amount,
				student_dues.student_due_is_paid AS is_paid,
				student_dues.student_due_due_date AS due_date,
				student_dues.student_due_paid_date AS paid_date,
				student_dues.student_due_is_carried_forward AS is_carried_forward,
				student_dues.student_due_carried_from_month AS carried_from_month`).
			Joins("JOIN fee_structure ON fee_structure.fee_category_id = student_dues.student_due_fee_category_id").
			Where("student_dues.student_due_month = ?", monthKey)
		if hostelID != uuid.Nil {
			q = q.Where("student_dues.student_due_hostel_id = ?", hostelID)
		}
		return q.Order("student_dues.student_due_due_date ASC").Scan(&dueRows).Error
	})

	if err := g.Wait(); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	byStudent := make(map[uuid.UUID][]DueLineItem, len(students))
	for _, r := range dueRows {
		byStudent[r.StudentID] = append(byStudent[r.StudentID], r.DueLineItem)
	}

	out := make([]StudentDuesSummary, 0, len(students))
	for _, st := range students {
		out = append(out, SummarizeStudent(st, byStudent[st.StudentID]))
	}
	return out, nil
}
