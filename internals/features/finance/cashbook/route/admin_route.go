package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asramaku_backend/internals/constants"
	cashbookCtl "asramaku_backend/internals/features/finance/cashbook/controller"
	authMiddleware "asramaku_backend/internals/middlewares/auth"
)

func CashbookAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := cashbookCtl.NewCashbookController(db)

	g := admin.Group("/cashbook",
		authMiddleware.OnlyRoles(constants.RoleErrorFinance("kas"), constants.FinanceRoles...),
	)

	g.Get("/summary", ctl.MonthlySummary)

	g.Post("/income", ctl.CreateIncome)
	g.Get("/income", ctl.ListIncome)
	g.Delete("/income/:id", ctl.DeleteIncome)

	g.Post("/expenses", ctl.CreateExpense)
	g.Get("/expenses", ctl.ListExpenses)
	g.Delete("/expenses/:id", ctl.DeleteExpense)
}
