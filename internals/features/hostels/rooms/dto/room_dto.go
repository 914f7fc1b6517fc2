package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	m "asramaku_backend/internals/features/hostels/rooms/model"
)

/* =============== REQUESTS =============== */

type CreateRoomRequest struct {
	RoomNumber      string   `json:"room_number" validate:"required,min=1"`
	RoomFloor       *int16   `json:"room_floor" validate:"omitempty"`
	RoomCapacity    int16    `json:"room_capacity" validate:"required,gte=1,lte=20"`
	RoomRentMonthly float64  `json:"room_rent_monthly" validate:"gte=0"`
	RoomFacilities  []string `json:"room_facilities" validate:"omitempty,dive,min=1"`

	RoomMeta datatypes.JSON `json:"room_meta" validate:"omitempty"`
}

func (r CreateRoomRequest) ToModel(hostelID uuid.UUID) *m.RoomModel {
	facilities := pq.StringArray(r.RoomFacilities)
	if facilities == nil {
		facilities = pq.StringArray{}
	}
	meta := r.RoomMeta
	if meta == nil {
		meta = datatypes.JSON([]byte(`{}`))
	}
	return &m.RoomModel{
		RoomHostelID:    hostelID,
		RoomNumber:      r.RoomNumber,
		RoomFloor:       r.RoomFloor,
		RoomCapacity:    r.RoomCapacity,
		RoomRentMonthly: r.RoomRentMonthly,
		RoomFacilities:  facilities,
		RoomMeta:        meta,
		RoomIsActive:    true,
	}
}

// Update (partial)
type UpdateRoomRequest struct {
	RoomNumber      *string   `json:"room_number" validate:"omitempty,min=1"`
	RoomFloor       *int16    `json:"room_floor" validate:"omitempty"`
	RoomCapacity    *int16    `json:"room_capacity" validate:"omitempty,gte=1,lte=20"`
	RoomRentMonthly *float64  `json:"room_rent_monthly" validate:"omitempty,gte=0"`
	RoomFacilities  *[]string `json:"room_facilities" validate:"omitempty"`
	RoomIsActive    *bool     `json:"room_is_active" validate:"omitempty"`

	RoomMeta datatypes.JSON `json:"room_meta" validate:"omitempty"`
}

func (r UpdateRoomRequest) ToPatch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.RoomNumber != nil {
		patch["room_number"] = *r.RoomNumber
	}
	if r.RoomFloor != nil {
		patch["room_floor"] = *r.RoomFloor
	}
	if r.RoomCapacity != nil {
		patch["room_capacity"] = *r.RoomCapacity
	}
	if r.RoomRentMonthly != nil {
		patch["room_rent_monthly"] = *r.RoomRentMonthly
	}
	if r.RoomFacilities != nil {
		patch["room_facilities"] = pq.StringArray(*r.RoomFacilities)
	}
	if r.RoomIsActive != nil {
		patch["room_is_active"] = *r.RoomIsActive
	}
	if r.RoomMeta != nil {
		patch["room_meta"] = r.RoomMeta
	}
	return patch
}

/* =============== RESPONSES =============== */

type RoomResponse struct {
	RoomID       uuid.UUID `json:"room_id"`
	RoomHostelID uuid.UUID `json:"room_hostel_id"`

	RoomNumber      string   `json:"room_number"`
	RoomFloor       *int16   `json:"room_floor,omitempty"`
	RoomCapacity    int16    `json:"room_capacity"`
	RoomRentMonthly float64  `json:"room_rent_monthly"`
	RoomFacilities  []string `json:"room_facilities"`

	RoomMeta     datatypes.JSON `json:"room_meta"`
	RoomIsActive bool           `json:"room_is_active"`

	// diisi query list (jumlah penghuni aktif)
	RoomOccupancy int64 `json:"room_occupancy"`

	RoomCreatedAt time.Time `json:"room_created_at"`
}

func FromModel(x m.RoomModel, occupancy int64) RoomResponse {
	return RoomResponse{
		RoomID:          x.RoomID,
		RoomHostelID:    x.RoomHostelID,
		RoomNumber:      x.RoomNumber,
		RoomFloor:       x.RoomFloor,
		RoomCapacity:    x.RoomCapacity,
		RoomRentMonthly: x.RoomRentMonthly,
		RoomFacilities:  []string(x.RoomFacilities),
		RoomMeta:        x.RoomMeta,
		RoomIsActive:    x.RoomIsActive,
		RoomOccupancy:   occupancy,
		RoomCreatedAt:   x.RoomCreatedAt,
	}
}
