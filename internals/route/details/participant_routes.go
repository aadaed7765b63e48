package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	participantController "relawanku_backend/internals/features/participants/controller"
)

func ParticipantRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := participantController.NewParticipantController(db)

	participants := r.Group("/participants")
	participants.Post("/", ctrl.Create)
	participants.Get("/", ctrl.List)
	participants.Get("/:id", ctrl.Get)
	participants.Get("/:id/badge", ctrl.Badge)
}
