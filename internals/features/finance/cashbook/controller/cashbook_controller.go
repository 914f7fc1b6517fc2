package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	dto "asramaku_backend/internals/features/finance/cashbook/dto"
	model "asramaku_backend/internals/features/finance/cashbook/model"
	helper "asramaku_backend/internals/helpers"
)

type CashbookController struct {
	DB *gorm.DB
}

func NewCashbookController(db *gorm.DB) *CashbookController {
	return &CashbookController{DB: db}
}

func (h *CashbookController) createdBy(c *fiber.Ctx) *uuid.UUID {
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		return &userID
	}
	return nil
}

/* ======================= INCOME ======================= */
// POST /api/a/cashbook/income
func (h *CashbookController) CreateIncome(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(hostelID, h.createdBy(c))
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonCreated(c, "Pemasukan berhasil dicatat", m)
}

// GET /api/a/cashbook/income?month=
func (h *CashbookController) ListIncome(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)
	base := h.DB.Model(&model.IncomeEntryModel{}).
		Where("income_hostel_id = ?", hostelID)
	if month := strings.TrimSpace(c.Query("month")); month != "" {
		base = base.Where("to_char(income_entry_date, 'YYYY-MM') = ?", month)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	var list []model.IncomeEntryModel
	if err := base.
		Order("income_entry_date DESC, income_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", list, &pagination)
}

// DELETE /api/a/cashbook/income/:id (soft)
func (h *CashbookController) DeleteIncome(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}
	id := strings.TrimSpace(c.Params("id"))

	res := h.DB.
		Where("income_id = ? AND income_hostel_id = ?", id, hostelID).
		Delete(&model.IncomeEntryModel{})
	if res.Error != nil {
		return helper.JsonStoreError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Pemasukan berhasil dihapus", fiber.Map{"id": id})
}

/* ======================= EXPENSE ======================= */
// POST /api/a/cashbook/expenses
func (h *CashbookController) CreateExpense(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(hostelID, h.createdBy(c))
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonCreated(c, "Pengeluaran berhasil dicatat", m)
}

// GET /api/a/cashbook/expenses?month=
func (h *CashbookController) ListExpenses(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)
	base := h.DB.Model(&model.ExpenseEntryModel{}).
		Where("expense_hostel_id = ?", hostelID)
	if month := strings.TrimSpace(c.Query("month")); month != "" {
		base = base.Where("to_char(expense_entry_date, 'YYYY-MM') = ?", month)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	var list []model.ExpenseEntryModel
	if err := base.
		Order("expense_entry_date DESC, expense_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", list, &pagination)
}

// DELETE /api/a/cashbook/expenses/:id (soft)
func (h *CashbookController) DeleteExpense(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}
	id := strings.TrimSpace(c.Params("id"))

	res := h.DB.
		Where("expense_id = ? AND expense_hostel_id = ?", id, hostelID).
		Delete(&model.ExpenseEntryModel{})
	if res.Error != nil {
		return helper.JsonStoreError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Pengeluaran berhasil dihapus", fiber.Map{"id": id})
}

/* ======================= MONTHLY SUMMARY ======================= */
// GET /api/a/cashbook/summary?month=
// Kas bulanan: setoran tagihan + pemasukan lain - pengeluaran.
func (h *CashbookController) MonthlySummary(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}

	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "month wajib berformat YYYY-MM")
	}

	var (
		duesCollected   float64
		otherIncome     float64
		totalExpense    float64
		outstandingDues float64
	)

	var g errgroup.Group

	g.Go(func() error {
		return h.DB.Table("student_fee_payments").
			Select("COALESCE(SUM(payment_amount), 0)").
			Where("payment_hostel_id = ? AND to_char(payment_date, 'YYYY-MM') = ?", hostelID, month).
			Scan(&duesCollected).Error
	})
	g.Go(func() error {
		return h.DB.Table("income_entries").
			Select("COALESCE(SUM(income_amount), 0)").
			Where("income_hostel_id = ? AND to_char(income_entry_date, 'YYYY-MM') = ? AND income_deleted_at IS NULL",
				hostelID, month).
			Scan(&otherIncome).Error
	})
	g.Go(func() error {
		return h.DB.Table("expense_entries").
			Select("COALESCE(SUM(expense_amount), 0)").
			Where("expense_hostel_id = ? AND to_char(expense_entry_date, 'YYYY-MM') = ? AND expense_deleted_at IS NULL",
				hostelID, month).
			Scan(&totalExpense).Error
	})
	g.Go(func() error {
		return h.DB.Table("student_dues").
			Select("COALESCE(SUM(student_due_balance_amount), 0)").
			Where("student_due_hostel_id = ? AND student_due_month = ? AND student_due_is_paid = FALSE",
				hostelID, month).
			Scan(&outstandingDues).Error
	})

	if err := g.Wait(); err != nil {
		return helper.JsonStoreError(c, err)
	}

	return helper.JsonOK(c, "OK", dto.MonthlySummaryResponse{
		Month:           month,
		DuesCollected:   duesCollected,
		OtherIncome:     otherIncome,
		TotalIncome:     duesCollected + otherIncome,
		TotalExpense:    totalExpense,
		NetBalance:      duesCollected + otherIncome - totalExpense,
		OutstandingDues: outstandingDues,
	})
}
