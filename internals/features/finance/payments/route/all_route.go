package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentCtl "asramaku_backend/internals/features/finance/payments/controller"
)

// PaymentsPublicRoutes: endpoint notifikasi Midtrans. Tanpa JWT;
// path-nya juga di-skip oleh auth middleware.
func PaymentsPublicRoutes(public fiber.Router, db *gorm.DB) {
	onlineCtl := paymentCtl.NewOnlinePaymentController(db)
	public.Post("/payments/notification", onlineCtl.HandleNotification)
}
