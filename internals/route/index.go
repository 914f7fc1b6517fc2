// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "asramaku_backend/internals/middlewares/auth"
	routeDetails "asramaku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT (webhook gateway, health check ada di main)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// ADMIN (per hostel) → JWT + role check per-route di details
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())

	// OWNER (GLOBAL)
	log.Println("[INFO] Setting up OWNER group...")
	owner := app.Group("/api/o", authMiddleware.AuthMiddleware())

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Hostel routes...")
	routeDetails.HostelAdminRoutes(admin, db)
	routeDetails.HostelOwnerRoutes(owner, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinancePublicRoutes(public, db)
	routeDetails.FinanceAdminRoutes(admin, db)
	routeDetails.FinanceOwnerRoutes(owner, db)
}
