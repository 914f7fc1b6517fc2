package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asramaku_backend/internals/constants"
	paymentCtl "asramaku_backend/internals/features/finance/payments/controller"
	authMiddleware "asramaku_backend/internals/middlewares/auth"
)

func PaymentsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := paymentCtl.NewPaymentController(db)
	onlineCtl := paymentCtl.NewOnlinePaymentController(db)

	g := admin.Group("/payments",
		authMiddleware.OnlyRoles(constants.RoleErrorFinance("pembayaran"), constants.FinanceRoles...),
	)

	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/modes", ctl.ListModes)
	g.Post("/online", onlineCtl.CreateSnapTransaction)
	g.Get("/:id", ctl.GetByID)
}
