package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentDueModel merepresentasikan tabel student_dues.
// Invariant: paid + balance == amount, is_paid == (balance <= 0).
// Baris hanya dibuat oleh generator tagihan dan hanya dimutasi oleh
// alokator pembayaran; tidak pernah dihapus.
type StudentDueModel struct {
	StudentDueID            uuid.UUID `gorm:"column:student_due_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_due_id"`
	StudentDueHostelID      uuid.UUID `gorm:"column:student_due_hostel_id;type:uuid;not null" json:"student_due_hostel_id"`
	StudentDueStudentID     uuid.UUID `gorm:"column:student_due_student_id;type:uuid;not null" json:"student_due_student_id"`
	StudentDueFeeCategoryID uuid.UUID `gorm:"column:student_due_fee_category_id;type:uuid;not null" json:"student_due_fee_category_id"`

	// 'YYYY-MM' - zero-padded, jadi aman dibandingkan leksikografis
	StudentDueMonth string `gorm:"column:student_due_month;type:varchar(7);not null" json:"student_due_month"`

	StudentDueAmount        float64 `gorm:"column:student_due_amount;type:numeric(12,2);not null" json:"student_due_amount"`
	StudentDuePaidAmount    float64 `gorm:"column:student_due_paid_amount;type:numeric(12,2);not null;default:0" json:"student_due_paid_amount"`
	StudentDueBalanceAmount float64 `gorm:"column:student_due_balance_amount;type:numeric(12,2);not null" json:"student_due_balance_amount"`

	StudentDueIsPaid   bool       `gorm:"column:student_due_is_paid;not null;default:false" json:"student_due_is_paid"`
	StudentDueDueDate  time.Time  `gorm:"column:student_due_due_date;type:date;not null" json:"student_due_due_date"`
	StudentDuePaidDate *time.Time `gorm:"column:student_due_paid_date" json:"student_due_paid_date,omitempty"`

	StudentDueIsCarriedForward bool    `gorm:"column:student_due_is_carried_forward;not null;default:false" json:"student_due_is_carried_forward"`
	StudentDueCarriedFromMonth *string `gorm:"column:student_due_carried_from_month;type:varchar(7)" json:"student_due_carried_from_month,omitempty"`

	StudentDueCreatedAt time.Time  `gorm:"column:student_due_created_at;autoCreateTime" json:"student_due_created_at"`
	StudentDueUpdatedAt *time.Time `gorm:"column:student_due_updated_at;autoUpdateTime" json:"student_due_updated_at,omitempty"`
}

func (StudentDueModel) TableName() string { return "student_dues" }
