package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pemasukan di luar tagihan penghuni (sumbangan, sewa aula, dsb).
// Pembayaran tagihan TIDAK dicatat di sini; totalnya digabung di
// laporan kas lewat query.
type IncomeEntryModel struct {
	IncomeID       uuid.UUID `gorm:"column:income_id;type:uuid;default:gen_random_uuid();primaryKey" json:"income_id"`
	IncomeHostelID uuid.UUID `gorm:"column:income_hostel_id;type:uuid;not null" json:"income_hostel_id"`

	IncomeTitle     string  `gorm:"column:income_title;not null" json:"income_title"`
	IncomeCategory  *string `gorm:"column:income_category" json:"income_category,omitempty"`
	IncomeAmount    float64 `gorm:"column:income_amount;type:numeric(12,2);not null" json:"income_amount"`
	IncomeEntryDate time.Time `gorm:"column:income_entry_date;type:date;not null" json:"income_entry_date"`
	IncomeNote      *string `gorm:"column:income_note" json:"income_note,omitempty"`

	IncomeCreatedBy *uuid.UUID     `gorm:"column:income_created_by;type:uuid" json:"income_created_by,omitempty"`
	IncomeCreatedAt time.Time      `gorm:"column:income_created_at;autoCreateTime" json:"income_created_at"`
	IncomeUpdatedAt *time.Time     `gorm:"column:income_updated_at;autoUpdateTime" json:"income_updated_at,omitempty"`
	IncomeDeletedAt gorm.DeletedAt `gorm:"column:income_deleted_at" json:"-"`
}

func (IncomeEntryModel) TableName() string { return "income_entries" }

type ExpenseEntryModel struct {
	ExpenseID       uuid.UUID `gorm:"column:expense_id;type:uuid;default:gen_random_uuid();primaryKey" json:"expense_id"`
	ExpenseHostelID uuid.UUID `gorm:"column:expense_hostel_id;type:uuid;not null" json:"expense_hostel_id"`

	ExpenseTitle     string    `gorm:"column:expense_title;not null" json:"expense_title"`
	ExpenseCategory  *string   `gorm:"column:expense_category" json:"expense_category,omitempty"`
	ExpenseAmount    float64   `gorm:"column:expense_amount;type:numeric(12,2);not null" json:"expense_amount"`
	ExpenseEntryDate time.Time `gorm:"column:expense_entry_date;type:date;not null" json:"expense_entry_date"`
	ExpenseNote      *string   `gorm:"column:expense_note" json:"expense_note,omitempty"`

	ExpenseCreatedBy *uuid.UUID     `gorm:"column:expense_created_by;type:uuid" json:"expense_created_by,omitempty"`
	ExpenseCreatedAt time.Time      `gorm:"column:expense_created_at;autoCreateTime" json:"expense_created_at"`
	ExpenseUpdatedAt *time.Time     `gorm:"column:expense_updated_at;autoUpdateTime" json:"expense_updated_at,omitempty"`
	ExpenseDeletedAt gorm.DeletedAt `gorm:"column:expense_deleted_at" json:"-"`
}

func (ExpenseEntryModel) TableName() string { return "expense_entries" }
