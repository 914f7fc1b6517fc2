package dto

import (
	"time"

	"github.com/google/uuid"

	m "asramaku_backend/internals/features/finance/cashbook/model"
)

/* =============== REQUESTS =============== */

type CreateIncomeRequest struct {
	IncomeTitle     string  `json:"income_title" validate:"required,min=3"`
	IncomeCategory  *string `json:"income_category"`
	IncomeAmount    float64 `json:"income_amount" validate:"required,gt=0"`
	IncomeEntryDate *string `json:"income_entry_date" validate:"omitempty,datetime=2006-01-02"`
	IncomeNote      *string `json:"income_note"`
}

func (r CreateIncomeRequest) ToModel(hostelID uuid.UUID, createdBy *uuid.UUID) *m.IncomeEntryModel {
	entryDate := time.Now()
	if r.IncomeEntryDate != nil {
		if t, err := time.Parse("2006-01-02", *r.IncomeEntryDate); err == nil {
			entryDate = t
		}
	}
	return &m.IncomeEntryModel{
		IncomeHostelID:  hostelID,
		IncomeTitle:     r.IncomeTitle,
		IncomeCategory:  r.IncomeCategory,
		IncomeAmount:    r.IncomeAmount,
		IncomeEntryDate: entryDate,
		IncomeNote:      r.IncomeNote,
		IncomeCreatedBy: createdBy,
	}
}

type CreateExpenseRequest struct {
	ExpenseTitle     string  `json:"expense_title" validate:"required,min=3"`
	ExpenseCategory  *string `json:"expense_category"`
	ExpenseAmount    float64 `json:"expense_amount" validate:"required,gt=0"`
	ExpenseEntryDate *string `json:"expense_entry_date" validate:"omitempty,datetime=2006-01-02"`
	ExpenseNote      *string `json:"expense_note"`
}

func (r CreateExpenseRequest) ToModel(hostelID uuid.UUID, createdBy *uuid.UUID) *m.ExpenseEntryModel {
	entryDate := time.Now()
	if r.ExpenseEntryDate != nil {
		if t, err := time.Parse("2006-01-02", *r.ExpenseEntryDate); err == nil {
			entryDate = t
		}
	}
	return &m.ExpenseEntryModel{
		ExpenseHostelID:  hostelID,
		ExpenseTitle:     r.ExpenseTitle,
		ExpenseCategory:  r.ExpenseCategory,
		ExpenseAmount:    r.ExpenseAmount,
		ExpenseEntryDate: entryDate,
		ExpenseNote:      r.ExpenseNote,
		ExpenseCreatedBy: createdBy,
	}
}

/* =============== RESPONSES =============== */

// Ringkasan kas satu bulan. Pemasukan tagihan dihitung dari
// student_fee_payments, bukan dari income_entries.
type MonthlySummaryResponse struct {
	Month            string  `json:"month"`
	DuesCollected    float64 `json:"dues_collected"`
	OtherIncome      float64 `json:"other_income"`
	TotalIncome      float64 `json:"total_income"`
	TotalExpense     float64 `json:"total_expense"`
	NetBalance       float64 `json:"net_balance"`
	OutstandingDues  float64 `json:"outstanding_dues"`
}
