package dto

import (
	"time"

	"github.com/google/uuid"

	m "asramaku_backend/internals/features/finance/fees/model"
)

/* =============== REQUESTS =============== */

// POST /fees/dues/generate
type GenerateDuesRequest struct {
	HostelID  *uuid.UUID `json:"hostel_id" validate:"required"`
	MonthYear string     `json:"month_year" validate:"required,len=7"`
}

// GET /fees/dues (list per penghuni)
type ListStudentDuesQuery struct {
	StudentID *uuid.UUID `query:"student_id" validate:"required"`
	Month     *string    `query:"month" validate:"omitempty,len=7"`
	// default: baris yang sudah dibilling-ulang ke bulan berikutnya ikut
	// tampil; false → disembunyikan supaya total tidak dobel
	IncludeSuperseded bool `query:"include_superseded"`
}

/* =============== RESPONSES =============== */

type StudentDueResponse struct {
	StudentDueID            uuid.UUID `json:"student_due_id"`
	StudentDueStudentID     uuid.UUID `json:"student_due_student_id"`
	StudentDueFeeCategoryID uuid.UUID `json:"student_due_fee_category_id"`

	StudentDueMonth         string  `json:"student_due_month"`
	StudentDueAmount        float64 `json:"student_due_amount"`
	StudentDuePaidAmount    float64 `json:"student_due_paid_amount"`
	StudentDueBalanceAmount float64 `json:"student_due_balance_amount"`

	StudentDueIsPaid   bool       `json:"student_due_is_paid"`
	StudentDueDueDate  time.Time  `json:"student_due_due_date"`
	StudentDuePaidDate *time.Time `json:"student_due_paid_date,omitempty"`

	StudentDueIsCarriedForward bool    `json:"student_due_is_carried_forward"`
	StudentDueCarriedFromMonth *string `json:"student_due_carried_from_month,omitempty"`
}

func FromStudentDueModel(x m.StudentDueModel) StudentDueResponse {
	return StudentDueResponse{
		StudentDueID:               x.StudentDueID,
		StudentDueStudentID:        x.StudentDueStudentID,
		StudentDueFeeCategoryID:    x.StudentDueFeeCategoryID,
		StudentDueMonth:            x.StudentDueMonth,
		StudentDueAmount:           x.StudentDueAmount,
		StudentDuePaidAmount:       x.StudentDuePaidAmount,
		StudentDueBalanceAmount:    x.StudentDueBalanceAmount,
		StudentDueIsPaid:           x.StudentDueIsPaid,
		StudentDueDueDate:          x.StudentDueDueDate,
		StudentDuePaidDate:         x.StudentDuePaidDate,
		StudentDueIsCarriedForward: x.StudentDueIsCarriedForward,
		StudentDueCarriedFromMonth: x.StudentDueCarriedFromMonth,
	}
}

func FromStudentDueModels(list []m.StudentDueModel) []StudentDueResponse {
	out := make([]StudentDueResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromStudentDueModel(it))
	}
	return out
}
