// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	CashbookRoute "asramaku_backend/internals/features/finance/cashbook/route"
	FeesRoute "asramaku_backend/internals/features/finance/fees/route"
	PaymentRoute "asramaku_backend/internals/features/finance/payments/route"
)

func FinancePublicRoutes(r fiber.Router, db *gorm.DB) {
	PaymentRoute.PaymentsPublicRoutes(r, db)
}

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	FeesRoute.FeesAdminRoutes(r, db)
	PaymentRoute.PaymentsAdminRoutes(r, db)
	CashbookRoute.CashbookAdminRoutes(r, db)
}

func FinanceOwnerRoutes(r fiber.Router, db *gorm.DB) {
	// owner memakai endpoint admin yang sama; ringkasan lintas hostel
	// diambil lewat GET /api/a/students/dues tanpa hostel_id
}
