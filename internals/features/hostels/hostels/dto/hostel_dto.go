package dto

import (
	"time"

	"github.com/google/uuid"

	m "asramaku_backend/internals/features/hostels/hostels/model"
)

/* =============== REQUESTS =============== */

type CreateHostelRequest struct {
	HostelName    string  `json:"hostel_name" validate:"required,min=3"`
	HostelCode    *string `json:"hostel_code" validate:"omitempty,min=2"`
	HostelAddress *string `json:"hostel_address" validate:"omitempty"`
}

func (r CreateHostelRequest) ToModel() *m.HostelModel {
	return &m.HostelModel{
		HostelName:     r.HostelName,
		HostelCode:     r.HostelCode,
		HostelAddress:  r.HostelAddress,
		HostelIsActive: true,
	}
}

// Update (partial)
type UpdateHostelRequest struct {
	HostelName     *string `json:"hostel_name" validate:"omitempty,min=3"`
	HostelCode     *string `json:"hostel_code" validate:"omitempty,min=2"`
	HostelAddress  *string `json:"hostel_address" validate:"omitempty"`
	HostelIsActive *bool   `json:"hostel_is_active" validate:"omitempty"`
}

func (r UpdateHostelRequest) ToPatch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.HostelName != nil {
		patch["hostel_name"] = *r.HostelName
	}
	if r.HostelCode != nil {
		patch["hostel_code"] = *r.HostelCode
	}
	if r.HostelAddress != nil {
		patch["hostel_address"] = *r.HostelAddress
	}
	if r.HostelIsActive != nil {
		patch["hostel_is_active"] = *r.HostelIsActive
	}
	return patch
}

/* =============== RESPONSES =============== */

type HostelResponse struct {
	HostelID       uuid.UUID  `json:"hostel_id"`
	HostelName     string     `json:"hostel_name"`
	HostelCode     *string    `json:"hostel_code,omitempty"`
	HostelAddress  *string    `json:"hostel_address,omitempty"`
	HostelIsActive bool       `json:"hostel_is_active"`
	HostelCreatedAt time.Time `json:"hostel_created_at"`
}

func FromModel(x m.HostelModel) HostelResponse {
	return HostelResponse{
		HostelID:        x.HostelID,
		HostelName:      x.HostelName,
		HostelCode:      x.HostelCode,
		HostelAddress:   x.HostelAddress,
		HostelIsActive:  x.HostelIsActive,
		HostelCreatedAt: x.HostelCreatedAt,
	}
}

func FromModels(list []m.HostelModel) []HostelResponse {
	out := make([]HostelResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
