package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"relawanku_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain. Auth is attached per
// route group, not globally, because the scan endpoints are public.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
