package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HostelModel struct {
	HostelID uuid.UUID `gorm:"column:hostel_id;type:uuid;default:gen_random_uuid();primaryKey" json:"hostel_id"`

	HostelName    string  `gorm:"column:hostel_name;type:text;not null" json:"hostel_name"`
	HostelCode    *string `gorm:"column:hostel_code;type:text" json:"hostel_code,omitempty"`
	HostelAddress *string `gorm:"column:hostel_address;type:text" json:"hostel_address,omitempty"`

	HostelIsActive bool `gorm:"column:hostel_is_active;not null;default:true" json:"hostel_is_active"`

	HostelCreatedAt time.Time      `gorm:"column:hostel_created_at;autoCreateTime" json:"hostel_created_at"`
	HostelUpdatedAt *time.Time     `gorm:"column:hostel_updated_at;autoUpdateTime" json:"hostel_updated_at,omitempty"`
	HostelDeletedAt gorm.DeletedAt `gorm:"column:hostel_deleted_at;index" json:"hostel_deleted_at,omitempty"`
}

func (HostelModel) TableName() string { return "hostels" }
