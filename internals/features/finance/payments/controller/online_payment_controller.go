package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "asramaku_backend/internals/features/finance/payments/dto"
	service "asramaku_backend/internals/features/finance/payments/service"
	helper "asramaku_backend/internals/helpers"
)

type OnlinePaymentController struct {
	DB *gorm.DB
}

func NewOnlinePaymentController(db *gorm.DB) *OnlinePaymentController {
	return &OnlinePaymentController{DB: db}
}

/* ======================= SNAP TOKEN ======================= */
// POST /api/a/payments/online
// Membuat transaksi Snap untuk seluruh tunggakan seorang penghuni.
func (h *OnlinePaymentController) CreateSnapTransaction(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateOnlinePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// data penghuni + total tunggakan
	var st struct {
		StudentName  string
		StudentPhone *string
		StudentEmail *string
	}
	if err := h.DB.Table("students").
		Select("student_name, student_phone, student_email").
		Where("student_id = ? AND student_hostel_id = ? AND student_deleted_at IS NULL",
			*req.StudentID, hostelID).
		Take(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Penghuni tidak ditemukan di hostel ini")
		}
		return helper.JsonStoreError(c, err)
	}

	var outstanding float64
	if err := h.DB.Table("student_dues").
		Select("COALESCE(SUM(student_due_balance_amount), 0)").
		Where("student_due_student_id = ? AND student_due_is_paid = FALSE", *req.StudentID).
		Scan(&outstanding).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}
	if outstanding <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Penghuni tidak punya tunggakan")
	}

	orderID := helper.NewOrderID("DUES")
	if err := service.RegisterPendingOrder(h.DB, orderID, hostelID, *req.StudentID, outstanding); err != nil {
		return helper.JsonStoreError(c, err)
	}

	cust := service.SnapCustomer{FirstName: st.StudentName}
	if st.StudentEmail != nil {
		cust.Email = *st.StudentEmail
	}
	if st.StudentPhone != nil {
		cust.Phone = *st.StudentPhone
	}

	token, redirectURL, err := service.GenerateDuesSnapToken(orderID, outstanding, cust)
	if err != nil {
		log.Println("[ERROR] Gagal membuat transaksi Snap:", err)
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran online")
	}

	return helper.JsonCreated(c, "Transaksi pembayaran online berhasil dibuat", dto.SnapTokenResponse{
		OrderID:     orderID,
		GrossAmount: outstanding,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

/* ======================= WEBHOOK ======================= */
// POST /api/public/payments/notification
// Endpoint notifikasi Midtrans; tidak pakai auth middleware.
func (h *OnlinePaymentController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := service.HandleGatewayNotification(h.DB, body); err != nil {
		// gateway akan retry selama respons bukan 2xx
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", nil)
}
