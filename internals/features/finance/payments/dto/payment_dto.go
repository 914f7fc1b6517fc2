package dto

import (
	"time"

	"github.com/google/uuid"

	m "asramaku_backend/internals/features/finance/payments/model"
)

/* =============== REQUESTS =============== */

type CreatePaymentRequest struct {
	StudentID     *uuid.UUID `json:"student_id" validate:"required"`
	HostelID      *uuid.UUID `json:"hostel_id"`
	PaymentModeID *uuid.UUID `json:"payment_mode_id" validate:"required"`
	AmountPaid    float64    `json:"amount_paid" validate:"required,gt=0"`

	// default: waktu server saat pencatatan
	PaymentDate          *time.Time `json:"payment_date"`
	TransactionReference *string    `json:"transaction_reference"`
	Remarks              *string    `json:"remarks"`
}

// POST /payments/online: bayar seluruh tunggakan via gateway
type CreateOnlinePaymentRequest struct {
	StudentID *uuid.UUID `json:"student_id" validate:"required"`
}

type ListPaymentsQuery struct {
	StudentID *uuid.UUID `query:"student_id"`
	DateFrom  *string    `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo    *string    `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Page      int        `query:"page"`
	Limit     int        `query:"limit"`
}

/* =============== RESPONSES =============== */

type PaymentResponse struct {
	PaymentID        uuid.UUID `json:"payment_id"`
	PaymentHostelID  uuid.UUID `json:"payment_hostel_id"`
	PaymentStudentID uuid.UUID `json:"payment_student_id"`
	PaymentModeID    uuid.UUID `json:"payment_mode_id"`

	PaymentAmount float64   `json:"payment_amount"`
	PaymentDate   time.Time `json:"payment_date"`

	PaymentTransactionReference *string `json:"payment_transaction_reference,omitempty"`
	PaymentReceiptNumber        string  `json:"payment_receipt_number"`
	PaymentRemarks              *string `json:"payment_remarks,omitempty"`

	PaymentCreatedAt time.Time `json:"payment_created_at"`
}

func FromPaymentModel(x m.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:                   x.PaymentID,
		PaymentHostelID:             x.PaymentHostelID,
		PaymentStudentID:            x.PaymentStudentID,
		PaymentModeID:               x.PaymentModeID,
		PaymentAmount:               x.PaymentAmount,
		PaymentDate:                 x.PaymentDate,
		PaymentTransactionReference: x.PaymentTransactionReference,
		PaymentReceiptNumber:        x.PaymentReceiptNumber,
		PaymentRemarks:              x.PaymentRemarks,
		PaymentCreatedAt:            x.PaymentCreatedAt,
	}
}

func FromPaymentModels(list []m.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromPaymentModel(it))
	}
	return out
}

type PaymentModeResponse struct {
	PaymentModeID       uuid.UUID `json:"payment_mode_id"`
	PaymentModeName     string    `json:"payment_mode_name"`
	PaymentModeIsActive bool      `json:"payment_mode_is_active"`
}

func FromPaymentModeModels(list []m.PaymentModeModel) []PaymentModeResponse {
	out := make([]PaymentModeResponse, 0, len(list))
	for _, it := range list {
		out = append(out, PaymentModeResponse{
			PaymentModeID:       it.PaymentModeID,
			PaymentModeName:     it.PaymentModeName,
			PaymentModeIsActive: it.PaymentModeIsActive,
		})
	}
	return out
}

type SnapTokenResponse struct {
	OrderID     string  `json:"order_id"`
	GrossAmount float64 `json:"gross_amount"`
	SnapToken   string  `json:"snap_token"`
	RedirectURL string  `json:"redirect_url"`
}
