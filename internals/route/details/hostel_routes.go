// file: internals/route/details/hostel_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	HostelRoute "asramaku_backend/internals/features/hostels/hostels/route"
	RoomRoute "asramaku_backend/internals/features/hostels/rooms/route"
	StudentRoute "asramaku_backend/internals/features/hostels/students/route"
)

func HostelAdminRoutes(r fiber.Router, db *gorm.DB) {
	HostelRoute.HostelsAdminRoutes(r, db)
	RoomRoute.RoomsAdminRoutes(r, db)
	StudentRoute.StudentsAdminRoutes(r, db)
}

func HostelOwnerRoutes(r fiber.Router, db *gorm.DB) {
	HostelRoute.HostelsOwnerRoutes(r, db)
}
