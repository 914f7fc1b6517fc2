package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asramaku_backend/internals/constants"
	feeCtl "asramaku_backend/internals/features/finance/fees/controller"
	"asramaku_backend/internals/middlewares"
	authMiddleware "asramaku_backend/internals/middlewares/auth"
)

func FeesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	catCtl := feeCtl.NewFeeCategoryController(db)
	duesCtl := feeCtl.NewStudentDuesController(db)

	g := admin.Group("/fees",
		authMiddleware.OnlyRoles(constants.RoleErrorFinance("tagihan"), constants.FinanceRoles...),
	)

	// kategori biaya
	cat := g.Group("/categories")
	cat.Post("/", catCtl.Create)
	cat.Get("/", catCtl.List)
	cat.Get("/:id", catCtl.GetByID)
	cat.Put("/:id", catCtl.Update)
	cat.Delete("/:id", catCtl.Delete)

	// tagihan bulanan
	g.Post("/dues/generate", middlewares.GenerateDuesRateLimiter(), duesCtl.Generate)
	g.Get("/dues", duesCtl.ListByStudent)
}
