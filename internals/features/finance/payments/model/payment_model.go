package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel merepresentasikan tabel student_fee_payments.
// Satu baris per pembayaran masuk; rincian alokasinya tercermin pada
// mutasi student_dues, bukan pada tabel terpisah.
type PaymentModel struct {
	PaymentID        uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentHostelID  uuid.UUID `gorm:"column:payment_hostel_id;type:uuid;not null" json:"payment_hostel_id"`
	PaymentStudentID uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null" json:"payment_student_id"`
	PaymentModeID    uuid.UUID `gorm:"column:payment_mode_id;type:uuid;not null" json:"payment_mode_id"`

	PaymentAmount float64   `gorm:"column:payment_amount;type:numeric(12,2);not null" json:"payment_amount"`
	PaymentDate   time.Time `gorm:"column:payment_date;not null" json:"payment_date"`

	PaymentTransactionReference *string `gorm:"column:payment_transaction_reference" json:"payment_transaction_reference,omitempty"`
	PaymentReceiptNumber        string  `gorm:"column:payment_receipt_number;not null" json:"payment_receipt_number"`
	PaymentRemarks              *string `gorm:"column:payment_remarks" json:"payment_remarks,omitempty"`

	PaymentCreatedBy *uuid.UUID `gorm:"column:payment_created_by;type:uuid" json:"payment_created_by,omitempty"`
	PaymentCreatedAt time.Time  `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
}

func (PaymentModel) TableName() string { return "student_fee_payments" }
