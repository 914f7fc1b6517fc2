package dto

import (
	"time"

	"github.com/google/uuid"

	m "asramaku_backend/internals/features/hostels/students/model"
)

/* =============== REQUESTS =============== */

// Create (pendaftaran penghuni baru)
type CreateStudentRequest struct {
	StudentRoomID *uuid.UUID `json:"student_room_id" validate:"omitempty"`

	StudentName          string  `json:"student_name" validate:"required,min=2"`
	StudentPhone         *string `json:"student_phone" validate:"omitempty,min=6"`
	StudentEmail         *string `json:"student_email" validate:"omitempty,email"`
	StudentGuardianName  *string `json:"student_guardian_name" validate:"omitempty,min=2"`
	StudentGuardianPhone *string `json:"student_guardian_phone" validate:"omitempty,min=6"`

	StudentAdmissionDate *time.Time `json:"student_admission_date" validate:"omitempty"`
	StudentMonthlyDueDay int16      `json:"student_monthly_due_day" validate:"omitempty,gte=1,lte=28"`
}

func (r CreateStudentRequest) ToModel(hostelID uuid.UUID) *m.StudentModel {
	admission := time.Now()
	if r.StudentAdmissionDate != nil {
		admission = *r.StudentAdmissionDate
	}
	dueDay := r.StudentMonthlyDueDay
	if dueDay == 0 {
		dueDay = 5
	}
	return &m.StudentModel{
		StudentHostelID:      hostelID,
		StudentRoomID:        r.StudentRoomID,
		StudentName:          r.StudentName,
		StudentPhone:         r.StudentPhone,
		StudentEmail:         r.StudentEmail,
		StudentGuardianName:  r.StudentGuardianName,
		StudentGuardianPhone: r.StudentGuardianPhone,
		StudentStatus:        m.StudentStatusActive,
		StudentAdmissionDate: admission,
		StudentMonthlyDueDay: dueDay,
	}
}

// Update (partial): status, pindah kamar, kontak, tanggal jatuh tempo
type UpdateStudentRequest struct {
	StudentRoomID *uuid.UUID `json:"student_room_id" validate:"omitempty"`

	StudentName          *string `json:"student_name" validate:"omitempty,min=2"`
	StudentPhone         *string `json:"student_phone" validate:"omitempty,min=6"`
	StudentEmail         *string `json:"student_email" validate:"omitempty,email"`
	StudentGuardianName  *string `json:"student_guardian_name" validate:"omitempty,min=2"`
	StudentGuardianPhone *string `json:"student_guardian_phone" validate:"omitempty,min=6"`

	StudentStatus        *string `json:"student_status" validate:"omitempty,oneof=Active Inactive"`
	StudentMonthlyDueDay *int16  `json:"student_monthly_due_day" validate:"omitempty,gte=1,lte=28"`

	// true → lepaskan kamar (student_room_id jadi NULL)
	ClearRoom bool `json:"clear_room"`
}

func (r UpdateStudentRequest) ToPatch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.StudentRoomID != nil {
		patch["student_room_id"] = *r.StudentRoomID
	}
	if r.ClearRoom {
		patch["student_room_id"] = nil
	}
	if r.StudentName != nil {
		patch["student_name"] = *r.StudentName
	}
	if r.StudentPhone != nil {
		patch["student_phone"] = *r.StudentPhone
	}
	if r.StudentEmail != nil {
		patch["student_email"] = *r.StudentEmail
	}
	if r.StudentGuardianName != nil {
		patch["student_guardian_name"] = *r.StudentGuardianName
	}
	if r.StudentGuardianPhone != nil {
		patch["student_guardian_phone"] = *r.StudentGuardianPhone
	}
	if r.StudentStatus != nil {
		patch["student_status"] = *r.StudentStatus
	}
	if r.StudentMonthlyDueDay != nil {
		patch["student_monthly_due_day"] = *r.StudentMonthlyDueDay
	}
	return patch
}

/* =============== RESPONSES =============== */

type StudentResponse struct {
	StudentID       uuid.UUID  `json:"student_id"`
	StudentHostelID uuid.UUID  `json:"student_hostel_id"`
	StudentRoomID   *uuid.UUID `json:"student_room_id,omitempty"`

	StudentName          string  `json:"student_name"`
	StudentPhone         *string `json:"student_phone,omitempty"`
	StudentEmail         *string `json:"student_email,omitempty"`
	StudentGuardianName  *string `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `json:"student_guardian_phone,omitempty"`

	StudentStatus        string    `json:"student_status"`
	StudentAdmissionDate time.Time `json:"student_admission_date"`
	StudentMonthlyDueDay int16     `json:"student_monthly_due_day"`

	StudentCreatedAt time.Time `json:"student_created_at"`
}

func FromModel(x m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:            x.StudentID,
		StudentHostelID:      x.StudentHostelID,
		StudentRoomID:        x.StudentRoomID,
		StudentName:          x.StudentName,
		StudentPhone:         x.StudentPhone,
		StudentEmail:         x.StudentEmail,
		StudentGuardianName:  x.StudentGuardianName,
		StudentGuardianPhone: x.StudentGuardianPhone,
		StudentStatus:        x.StudentStatus,
		StudentAdmissionDate: x.StudentAdmissionDate,
		StudentMonthlyDueDay: x.StudentMonthlyDueDay,
		StudentCreatedAt:     x.StudentCreatedAt,
	}
}

func FromModels(list []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
