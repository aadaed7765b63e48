package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "relawanku_backend/internals/features/events/controller"
)

func EventRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	events := r.Group("/events")
	events.Post("/", ctrl.CreateEvent)
	events.Get("/", ctrl.ListEvents)
	events.Get("/:id", ctrl.GetEvent)
	events.Post("/:id/activities", ctrl.CreateActivity)
}
