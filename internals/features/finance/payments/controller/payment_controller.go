package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "asramaku_backend/internals/features/finance/payments/dto"
	model "asramaku_backend/internals/features/finance/payments/model"
	service "asramaku_backend/internals/features/finance/payments/service"
	helper "asramaku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/payments
// Mencatat pembayaran lalu mengalokasikan ke tagihan tertua dulu.
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hostelID, err := helper.ResolveHostelScope(c, req.HostelID)
	if err != nil {
		return err
	}
	if hostelID == uuid.Nil {
		return fiber.NewError(fiber.StatusBadRequest, "hostel_id wajib diisi")
	}

	paymentDate := time.Now()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	var createdBy *uuid.UUID
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		createdBy = &userID
	}

	result, err := service.RecordPayment(h.DB, service.RecordPaymentInput{
		HostelID:             hostelID,
		StudentID:            *req.StudentID,
		PaymentModeID:        *req.PaymentModeID,
		Amount:               req.AmountPaid,
		PaymentDate:          paymentDate,
		TransactionReference: req.TransactionReference,
		Remarks:              req.Remarks,
		CreatedBy:            createdBy,
	})
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "Pembayaran berhasil dicatat", fiber.Map{
		"payment":            dto.FromPaymentModel(result.Payment),
		"allocations":        result.Allocations,
		"unallocated_amount": result.UnallocatedAmount,
	})
}

/* ======================== LIST ======================== */
// GET /api/a/payments?student_id=&date_from=&date_to=&page=&limit=
func (h *PaymentController) List(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListPaymentsQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validator.New().Struct(q); err != nil {
		return helper.JsonValidationError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.PaymentModel{}).
		Where("payment_hostel_id = ?", hostelID)
	if q.StudentID != nil {
		base = base.Where("payment_student_id = ?", *q.StudentID)
	}
	if q.DateFrom != nil && strings.TrimSpace(*q.DateFrom) != "" {
		base = base.Where("payment_date >= ?::date", *q.DateFrom)
	}
	if q.DateTo != nil && strings.TrimSpace(*q.DateTo) != "" {
		base = base.Where("payment_date < (?::date + INTERVAL '1 day')", *q.DateTo)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	var list []model.PaymentModel
	if err := base.
		Order("payment_date DESC, payment_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", dto.FromPaymentModels(list), &pagination)
}

/* ======================== GET BY ID ======================== */
// GET /api/a/payments/:id
func (h *PaymentController) GetByID(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.PaymentModel
	if err := h.DB.
		Where("payment_id = ? AND payment_hostel_id = ?", id, hostelID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonStoreError(c, err)
	}

	return helper.JsonOK(c, "OK", dto.FromPaymentModel(row))
}

/* ======================== PAYMENT MODES ======================== */
// GET /api/a/payments/modes
func (h *PaymentController) ListModes(c *fiber.Ctx) error {
	var list []model.PaymentModeModel
	if err := h.DB.
		Where("payment_mode_is_active = TRUE").
		Order("payment_mode_name ASC").
		Find(&list).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.FromPaymentModeModels(list))
}
