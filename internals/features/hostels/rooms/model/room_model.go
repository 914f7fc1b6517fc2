package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomModel merepresentasikan tabel rooms
type RoomModel struct {
	RoomID       uuid.UUID `gorm:"column:room_id;type:uuid;default:gen_random_uuid();primaryKey" json:"room_id"`
	RoomHostelID uuid.UUID `gorm:"column:room_hostel_id;type:uuid;not null" json:"room_hostel_id"`

	RoomNumber      string  `gorm:"column:room_number;type:text;not null" json:"room_number"`
	RoomFloor       *int16  `gorm:"column:room_floor;type:smallint" json:"room_floor,omitempty"`
	RoomCapacity    int16   `gorm:"column:room_capacity;type:smallint;not null;default:1" json:"room_capacity"`
	RoomRentMonthly float64 `gorm:"column:room_rent_monthly;type:numeric(12,2);not null;default:0" json:"room_rent_monthly"`

	RoomFacilities pq.StringArray `gorm:"column:room_facilities;type:text[];not null;default:'{}'" json:"room_facilities"`
	RoomMeta       datatypes.JSON `gorm:"column:room_meta;type:jsonb;not null;default:'{}'" json:"room_meta"`

	RoomIsActive bool `gorm:"column:room_is_active;not null;default:true" json:"room_is_active"`

	RoomCreatedAt time.Time      `gorm:"column:room_created_at;autoCreateTime" json:"room_created_at"`
	RoomUpdatedAt *time.Time     `gorm:"column:room_updated_at;autoUpdateTime" json:"room_updated_at,omitempty"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;index" json:"room_deleted_at,omitempty"`
}

func (RoomModel) TableName() string { return "rooms" }
