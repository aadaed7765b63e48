package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "relawanku_backend/internals/features/attendance/records/controller"
)

func ScanRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewScanController(db)

	r.Post("/check-in", ctrl.CheckIn)
	r.Post("/check-out", ctrl.CheckOut)
}
