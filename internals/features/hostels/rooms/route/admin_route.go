package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asramaku_backend/internals/constants"
	roomCtl "asramaku_backend/internals/features/hostels/rooms/controller"
	authMiddleware "asramaku_backend/internals/middlewares/auth"
)

func RoomsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := roomCtl.NewRoomController(db)
	g := admin.Group("/rooms",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("kamar"), constants.AdminAndAbove...),
	)

	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
