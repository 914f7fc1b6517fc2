package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asramaku_backend/internals/constants"
	hostelCtl "asramaku_backend/internals/features/hostels/hostels/controller"
	authMiddleware "asramaku_backend/internals/middlewares/auth"
)

// HostelsAdminRoutes: admin hanya boleh baca profil hostelnya sendiri.
func HostelsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := hostelCtl.NewHostelController(db)
	g := admin.Group("/hostels",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("hostel"), constants.AdminAndAbove...),
	)

	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
}

// HostelsOwnerRoutes: owner mengelola daftar hostel lintas cabang.
func HostelsOwnerRoutes(owner fiber.Router, db *gorm.DB) {
	ctl := hostelCtl.NewHostelController(db)
	g := owner.Group("/hostels",
		authMiddleware.OnlyRoles(constants.RoleErrorOwner("hostel"), constants.OwnerOnly...),
	)

	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
}
