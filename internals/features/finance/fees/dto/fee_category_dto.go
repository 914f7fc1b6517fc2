package dto

import (
	"time"

	"github.com/google/uuid"

	m "asramaku_backend/internals/features/finance/fees/model"
)

/* =============== REQUESTS =============== */

type CreateFeeCategoryRequest struct {
	FeeCategoryName      string  `json:"fee_category_name" validate:"required,min=3"`
	FeeCategoryAmount    float64 `json:"fee_category_amount" validate:"gte=0"`
	FeeCategoryFrequency string  `json:"fee_category_frequency" validate:"omitempty,oneof=Monthly One-Time"`
}

func (r CreateFeeCategoryRequest) ToModel(hostelID uuid.UUID) *m.FeeCategoryModel {
	freq := r.FeeCategoryFrequency
	if freq == "" {
		freq = m.FeeFrequencyMonthly
	}
	return &m.FeeCategoryModel{
		FeeCategoryHostelID:  hostelID,
		FeeCategoryName:      r.FeeCategoryName,
		FeeCategoryAmount:    r.FeeCategoryAmount,
		FeeCategoryFrequency: freq,
		FeeCategoryIsActive:  true,
	}
}

// Update (partial)
type UpdateFeeCategoryRequest struct {
	FeeCategoryName      *string  `json:"fee_category_name" validate:"omitempty,min=3"`
	FeeCategoryAmount    *float64 `json:"fee_category_amount" validate:"omitempty,gte=0"`
	FeeCategoryFrequency *string  `json:"fee_category_frequency" validate:"omitempty,oneof=Monthly One-Time"`
	FeeCategoryIsActive  *bool    `json:"fee_category_is_active" validate:"omitempty"`
}

func (r UpdateFeeCategoryRequest) ToPatch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.FeeCategoryName != nil {
		patch["fee_category_name"] = *r.FeeCategoryName
	}
	if r.FeeCategoryAmount != nil {
		patch["fee_category_amount"] = *r.FeeCategoryAmount
	}
	if r.FeeCategoryFrequency != nil {
		patch["fee_category_frequency"] = *r.FeeCategoryFrequency
	}
	if r.FeeCategoryIsActive != nil {
		patch["fee_category_is_active"] = *r.FeeCategoryIsActive
	}
	return patch
}

/* =============== RESPONSES =============== */

type FeeCategoryResponse struct {
	FeeCategoryID        uuid.UUID `json:"fee_category_id"`
	FeeCategoryHostelID  uuid.UUID `json:"fee_category_hostel_id"`
	FeeCategoryName      string    `json:"fee_category_name"`
	FeeCategoryAmount    float64   `json:"fee_category_amount"`
	FeeCategoryFrequency string    `json:"fee_category_frequency"`
	FeeCategoryIsActive  bool      `json:"fee_category_is_active"`
	FeeCategoryCreatedAt time.Time `json:"fee_category_created_at"`
}

func FromFeeCategoryModel(x m.FeeCategoryModel) FeeCategoryResponse {
	return FeeCategoryResponse{
		FeeCategoryID:        x.FeeCategoryID,
		FeeCategoryHostelID:  x.FeeCategoryHostelID,
		FeeCategoryName:      x.FeeCategoryName,
		FeeCategoryAmount:    x.FeeCategoryAmount,
		FeeCategoryFrequency: x.FeeCategoryFrequency,
		FeeCategoryIsActive:  x.FeeCategoryIsActive,
		FeeCategoryCreatedAt: x.FeeCategoryCreatedAt,
	}
}

func FromFeeCategoryModels(list []m.FeeCategoryModel) []FeeCategoryResponse {
	out := make([]FeeCategoryResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromFeeCategoryModel(it))
	}
	return out
}
