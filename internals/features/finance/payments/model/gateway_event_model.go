package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GatewayEventModel: log mentah notifikasi gateway (webhook Midtrans).
// Disimpan apa adanya supaya status transaksi bisa diaudit ulang.
type GatewayEventModel struct {
	GatewayEventID        uuid.UUID      `gorm:"column:gateway_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gateway_event_id"`
	GatewayEventOrderID   string         `gorm:"column:gateway_event_order_id;not null" json:"gateway_event_order_id"`
	GatewayEventPaymentID *uuid.UUID     `gorm:"column:gateway_event_payment_id;type:uuid" json:"gateway_event_payment_id,omitempty"`
	GatewayEventStatus    string         `gorm:"column:gateway_event_status;not null" json:"gateway_event_status"`
	GatewayEventPayload   datatypes.JSON `gorm:"column:gateway_event_payload;type:jsonb" json:"gateway_event_payload"`
	GatewayEventCreatedAt time.Time      `gorm:"column:gateway_event_created_at;autoCreateTime" json:"gateway_event_created_at"`
}

func (GatewayEventModel) TableName() string { return "payment_gateway_events" }
