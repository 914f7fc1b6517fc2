package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StudentStatusActive   = "Active"
	StudentStatusInactive = "Inactive"
)

type StudentModel struct {
	StudentID       uuid.UUID  `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentHostelID uuid.UUID  `gorm:"column:student_hostel_id;type:uuid;not null" json:"student_hostel_id"`
	StudentRoomID   *uuid.UUID `gorm:"column:student_room_id;type:uuid" json:"student_room_id,omitempty"`

	StudentName          string  `gorm:"column:student_name;type:text;not null" json:"student_name"`
	StudentPhone         *string `gorm:"column:student_phone;type:text" json:"student_phone,omitempty"`
	StudentEmail         *string `gorm:"column:student_email;type:text" json:"student_email,omitempty"`
	StudentGuardianName  *string `gorm:"column:student_guardian_name;type:text" json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `gorm:"column:student_guardian_phone;type:text" json:"student_guardian_phone,omitempty"`

	// Active | Inactive
	StudentStatus string `gorm:"column:student_status;type:text;not null;default:'Active'" json:"student_status"`

	StudentAdmissionDate time.Time `gorm:"column:student_admission_date;type:date;not null" json:"student_admission_date"`
	StudentMonthlyDueDay int16     `gorm:"column:student_monthly_due_day;type:smallint;not null;default:5" json:"student_monthly_due_day"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
