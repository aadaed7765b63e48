package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "relawanku_backend/internals/features/attendance/records/controller"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	att := r.Group("/attendance")
	att.Post("/check-in", ctrl.CheckIn)
	att.Post("/check-out", ctrl.CheckOut)
	att.Post("/manual", ctrl.CreateManualEntry)
	att.Post("/force-checkout-all", ctrl.ForceAllCheckOut)
	att.Patch("/:id", ctrl.EditEntry)
	att.Post("/:id/force-checkout", ctrl.ForceCheckOut)
	att.Post("/:id/void", ctrl.Void)
	att.Post("/:id/restore", ctrl.Restore)
}
