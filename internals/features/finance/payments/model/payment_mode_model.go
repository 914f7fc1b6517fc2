package model

import "github.com/google/uuid"

type PaymentModeModel struct {
	PaymentModeID       uuid.UUID `gorm:"column:payment_mode_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_mode_id"`
	PaymentModeName     string    `gorm:"column:payment_mode_name;not null;unique" json:"payment_mode_name"`
	PaymentModeIsActive bool      `gorm:"column:payment_mode_is_active;not null;default:true" json:"payment_mode_is_active"`
}

func (PaymentModeModel) TableName() string { return "payment_modes" }

// Nama mode yang dipakai alur pembayaran online (seeded di migration).
const PaymentModeOnlineGateway = "Online Gateway"
