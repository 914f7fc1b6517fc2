package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asramaku_backend/internals/constants"
	duesCtl "asramaku_backend/internals/features/finance/fees/controller"
	studentCtl "asramaku_backend/internals/features/hostels/students/controller"
	authMiddleware "asramaku_backend/internals/middlewares/auth"
)

func StudentsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)
	dues := duesCtl.NewStudentDuesController(db)
	g := admin.Group("/students",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("penghuni"), constants.AdminAndAbove...),
	)

	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	// daftar sebelum "/:id" supaya tidak ketangkep sebagai id
	g.Get("/dues", dues.StudentsWithDues)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
