package service

import (
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	paymentModel "asramaku_backend/internals/features/finance/payments/model"
)

const (
	gatewayStatusPending    = "pending"
	gatewayStatusSettlement = "settlement"
	gatewayStatusCapture    = "capture"
	gatewayStatusExpire     = "expire"
	gatewayStatusCancel     = "cancel"
	gatewayStatusDeny       = "deny"
)

// orderContext disimpan di payload event "pending" saat snap token
// dibuat, supaya webhook tahu transaksi ini milik penghuni yang mana.
type orderContext struct {
	HostelID  uuid.UUID `json:"hostel_id"`
	StudentID uuid.UUID `json:"student_id"`
	Amount    float64   `json:"amount"`
}

// RegisterPendingOrder mencatat konteks order sebelum snap token
// diserahkan ke klien.
func RegisterPendingOrder(db *gorm.DB, orderID string, hostelID, studentID uuid.UUID, amount float64) error {
	payload, err := sonic.Marshal(orderContext{
		HostelID:  hostelID,
		StudentID: studentID,
		Amount:    amount,
	})
	if err != nil {
		return err
	}
	return db.Create(&paymentModel.GatewayEventModel{
		GatewayEventOrderID: orderID,
		GatewayEventStatus:  gatewayStatusPending,
		GatewayEventPayload: datatypes.JSON(payload),
	}).Error
}

// HandleGatewayNotification dipanggil saat menerima notifikasi dari
// Midtrans. Setiap notifikasi dicatat apa adanya; settlement/capture
// memicu pencatatan pembayaran lewat alokator biasa. Idempoten per
// order: settlement kedua untuk order yang sama diabaikan.
func HandleGatewayNotification(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return errors.New("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	rawPayload, err := sonic.Marshal(body)
	if err != nil {
		return err
	}

	event := paymentModel.GatewayEventModel{
		GatewayEventOrderID: orderID,
		GatewayEventStatus:  status,
		GatewayEventPayload: datatypes.JSON(rawPayload),
	}

	switch status {
	case gatewayStatusCapture, gatewayStatusSettlement:
		// sudah pernah dibukukan?
		var settled int64
		if err := db.Model(&paymentModel.GatewayEventModel{}).
			Where("gateway_event_order_id = ? AND gateway_event_payment_id IS NOT NULL", orderID).
			Count(&settled).Error; err != nil {
			return err
		}
		if settled > 0 {
			log.Println("[INFO] Order sudah dibukukan, notifikasi diabaikan:", orderID)
			return nil
		}

		var pending paymentModel.GatewayEventModel
		if err := db.
			Where("gateway_event_order_id = ? AND gateway_event_status = ?", orderID, gatewayStatusPending).
			First(&pending).Error; err != nil {
			log.Println("[ERROR] Order tidak dikenal:", orderID, err)
			return errors.New("unknown order " + orderID)
		}

		var ctx orderContext
		if err := sonic.Unmarshal(pending.GatewayEventPayload, &ctx); err != nil {
			return err
		}

		var mode paymentModel.PaymentModeModel
		if err := db.
			Where("payment_mode_name = ?", paymentModel.PaymentModeOnlineGateway).
			First(&mode).Error; err != nil {
			return err
		}

		ref := orderID
		result, err := RecordPayment(db, RecordPaymentInput{
			HostelID:             ctx.HostelID,
			StudentID:            ctx.StudentID,
			PaymentModeID:        mode.PaymentModeID,
			Amount:               ctx.Amount,
			PaymentDate:          time.Now(),
			TransactionReference: &ref,
		})
		if err != nil {
			log.Println("[ERROR] Gagal membukukan pembayaran online:", err)
			return err
		}
		event.GatewayEventPaymentID = &result.Payment.PaymentID

	case gatewayStatusExpire, gatewayStatusCancel, gatewayStatusDeny:
		// cukup dicatat, tidak ada mutasi tagihan

	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	return db.Create(&event).Error
}
