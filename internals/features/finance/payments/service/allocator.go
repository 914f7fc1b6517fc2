package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	feesModel "asramaku_backend/internals/features/finance/fees/model"
	paymentModel "asramaku_backend/internals/features/finance/payments/model"
	helper "asramaku_backend/internals/helpers"
)

/* ===============================
   Alokasi pembayaran (tertua dulu)
=================================*/

// DueAllocation: porsi satu pembayaran yang masuk ke satu baris tagihan.
type DueAllocation struct {
	StudentDueID     uuid.UUID `json:"student_due_id"`
	DueMonth         string    `json:"due_month"`
	AppliedAmount    float64   `json:"applied_amount"`
	RemainingBalance float64   `json:"remaining_balance"`
	IsNowPaid        bool      `json:"is_now_paid"`
}

// AllocateAcrossDues membagi amount ke baris tagihan yang belum lunas,
// urut jatuh tempo tertua dulu. dues harus sudah terurut due_date ASC;
// baris dimutasi in place (paid naik, balance turun, is_paid + paid_date
// saat balance habis). Sisa yang tidak terserap dikembalikan, tidak
// pernah dipaksakan jadi saldo minus.
func AllocateAcrossDues(dues []feesModel.StudentDueModel, amount float64, now time.Time) ([]DueAllocation, float64) {
	remaining := amount
	allocations := make([]DueAllocation, 0, len(dues))

	for i := range dues {
		if remaining <= 0 {
			break
		}
		d := &dues[i]
		if d.StudentDueIsPaid || d.StudentDueBalanceAmount <= 0 {
			continue
		}

		applied := d.StudentDueBalanceAmount
		if remaining < applied {
			applied = remaining
		}

		d.StudentDuePaidAmount += applied
		d.StudentDueBalanceAmount -= applied
		remaining -= applied

		if d.StudentDueBalanceAmount <= 0 {
			d.StudentDueBalanceAmount = 0
			d.StudentDueIsPaid = true
			paidAt := now
			d.StudentDuePaidDate = &paidAt
		}

		allocations = append(allocations, DueAllocation{
			StudentDueID:     d.StudentDueID,
			DueMonth:         d.StudentDueMonth,
			AppliedAmount:    applied,
			RemainingBalance: d.StudentDueBalanceAmount,
			IsNowPaid:        d.StudentDueIsPaid,
		})
	}

	return allocations, remaining
}

/* ===============================
   Orkestrasi pencatatan pembayaran
=================================*/

type RecordPaymentInput struct {
	HostelID             uuid.UUID
	StudentID            uuid.UUID
	PaymentModeID        uuid.UUID
	Amount               float64
	PaymentDate          time.Time
	TransactionReference *string
	Remarks              *string
	CreatedBy            *uuid.UUID
}

type RecordPaymentResult struct {
	Payment           paymentModel.PaymentModel `json:"payment"`
	Allocations       []DueAllocation           `json:"allocations"`
	UnallocatedAmount float64                   `json:"unallocated_amount"`
}

// RecordPayment menyimpan pembayaran lalu mengalokasikannya ke tagihan
// penghuni. Seluruhnya dalam satu transaksi; baris tagihan dikunci
// FOR UPDATE supaya dua kasir yang menerima pembayaran untuk penghuni
// yang sama tidak saling menimpa.
func RecordPayment(db *gorm.DB, in RecordPaymentInput) (*RecordPaymentResult, error) {
	if in.Amount <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Jumlah pembayaran harus lebih dari 0")
	}
	if in.PaymentDate.IsZero() {
		in.PaymentDate = time.Now()
	}

	var result RecordPaymentResult

	err := db.Transaction(func(tx *gorm.DB) error {
		// penghuni harus ada di hostel scope
		var studentCount int64
		if err := tx.Table("students").
			Where("student_id = ? AND student_hostel_id = ? AND student_deleted_at IS NULL",
				in.StudentID, in.HostelID).
			Count(&studentCount).Error; err != nil {
			return err
		}
		if studentCount == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Penghuni tidak ditemukan di hostel ini")
		}

		var mode paymentModel.PaymentModeModel
		if err := tx.
			Where("payment_mode_id = ? AND payment_mode_is_active = TRUE", in.PaymentModeID).
			First(&mode).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Metode pembayaran tidak valid")
			}
			return err
		}

		// kunci baris tagihan belum lunas, tertua dulu; tie-break
		// created_at lalu id supaya urutannya deterministik
		var dues []feesModel.StudentDueModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("student_due_student_id = ? AND student_due_hostel_id = ? AND student_due_is_paid = FALSE",
				in.StudentID, in.HostelID).
			Order("student_due_due_date ASC, student_due_created_at ASC, student_due_id ASC").
			Find(&dues).Error; err != nil {
			return err
		}

		allocations, unallocated := AllocateAcrossDues(dues, in.Amount, in.PaymentDate)

		payment := paymentModel.PaymentModel{
			PaymentHostelID:             in.HostelID,
			PaymentStudentID:            in.StudentID,
			PaymentModeID:               in.PaymentModeID,
			PaymentAmount:               in.Amount,
			PaymentDate:                 in.PaymentDate,
			PaymentTransactionReference: in.TransactionReference,
			PaymentReceiptNumber:        helper.NewReceiptNumber(in.PaymentDate),
			PaymentRemarks:              in.Remarks,
			PaymentCreatedBy:            in.CreatedBy,
		}
		if err := tx.Create(&payment).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				// tabrakan nomor kwitansi; biarkan klien mengulang
				return fiber.NewError(fiber.StatusConflict, "Nomor kwitansi bentrok, silakan coba lagi")
			}
			return err
		}

		for i := range dues {
			d := dues[i]
			changed := false
			for _, a := range allocations {
				if a.StudentDueID == d.StudentDueID {
					changed = true
					break
				}
			}
			if !changed {
				continue
			}
			patch := map[string]interface{}{
				"student_due_paid_amount":    d.StudentDuePaidAmount,
				"student_due_balance_amount": d.StudentDueBalanceAmount,
				"student_due_is_paid":        d.StudentDueIsPaid,
				"student_due_paid_date":      d.StudentDuePaidDate,
			}
			if err := tx.Model(&feesModel.StudentDueModel{}).
				Where("student_due_id = ?", d.StudentDueID).
				Updates(patch).Error; err != nil {
				return err
			}
		}

		result = RecordPaymentResult{
			Payment:           payment,
			Allocations:       allocations,
			UnallocatedAmount: unallocated,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
