package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"relawanku_backend/internals/constants"
	authMiddleware "relawanku_backend/internals/middlewares/auth"
	routeDetails "relawanku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// PUBLIC → kiosk scan endpoints, badge token is the credential
	log.Println("[INFO] Setting up SCAN group...")
	scan := app.Group("/api/scan")
	routeDetails.ScanRoutes(scan, db)

	// ADMIN/STAFF → JWT + role guard
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Only staff or admin may access attendance administration.",
			constants.RoleAdmin, constants.RoleStaff),
	)
	routeDetails.AttendanceRoutes(admin, db)
	routeDetails.ReviewRoutes(admin, db)
	routeDetails.EventRoutes(admin, db)
	routeDetails.ParticipantRoutes(admin, db)
}
