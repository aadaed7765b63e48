package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reviewController "relawanku_backend/internals/features/attendance/review/controller"
)

func ReviewRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reviewController.NewReviewController(db)

	review := r.Group("/review")
	review.Get("/summary", ctrl.DailySummary)
	review.Get("/records", ctrl.Records)
}
