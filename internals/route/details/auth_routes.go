package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "relawanku_backend/internals/features/users/auth/controller"
	"relawanku_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
