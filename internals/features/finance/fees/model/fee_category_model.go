package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FeeFrequencyMonthly = "Monthly"
	FeeFrequencyOneTime = "One-Time"

	// nama kategori khusus: nominalnya diambil dari sewa kamar penghuni,
	// bukan dari fee_category_amount
	FeeCategoryMonthlyRent = "Monthly Rent"
)

// FeeCategoryModel merepresentasikan tabel fee_structure
type FeeCategoryModel struct {
	FeeCategoryID       uuid.UUID `gorm:"column:fee_category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_category_id"`
	FeeCategoryHostelID uuid.UUID `gorm:"column:fee_category_hostel_id;type:uuid;not null" json:"fee_category_hostel_id"`

	FeeCategoryName      string  `gorm:"column:fee_category_name;type:text;not null" json:"fee_category_name"`
	FeeCategoryAmount    float64 `gorm:"column:fee_category_amount;type:numeric(12,2);not null;default:0" json:"fee_category_amount"`
	FeeCategoryFrequency string  `gorm:"column:fee_category_frequency;type:text;not null;default:'Monthly'" json:"fee_category_frequency"`
	FeeCategoryIsActive  bool    `gorm:"column:fee_category_is_active;not null;default:true" json:"fee_category_is_active"`

	FeeCategoryCreatedAt time.Time      `gorm:"column:fee_category_created_at;autoCreateTime" json:"fee_category_created_at"`
	FeeCategoryUpdatedAt *time.Time     `gorm:"column:fee_category_updated_at;autoUpdateTime" json:"fee_category_updated_at,omitempty"`
	FeeCategoryDeletedAt gorm.DeletedAt `gorm:"column:fee_category_deleted_at;index" json:"fee_category_deleted_at,omitempty"`
}

func (FeeCategoryModel) TableName() string { return "fee_structure" }
