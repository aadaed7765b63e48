package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"relawanku_backend/internals/features/events/dto"
	"relawanku_backend/internals/features/events/model"
	helper "relawanku_backend/internals/helpers"
	"relawanku_backend/internals/helpers/clock"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/a/events
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	startDate, err := clock.ParseDate(req.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
	}
	endDate, err := clock.ParseDate(req.EndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
	}
	if endDate.Before(startDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "End date must not be before start date")
	}
	defStart, err := clock.Parse(req.DefaultStartTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid default start time, expected HH:MM")
	}
	defEnd, err := clock.Parse(req.DefaultEndTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid default end time, expected HH:MM")
	}

	ev := model.EventModel{
		Name:             req.Name,
		Location:         req.Location,
		StartDate:        startDate,
		EndDate:          endDate,
		DefaultStartTime: defStart,
		DefaultEndTime:   defEnd,
	}
	if err := ctrl.DB.Create(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event created", ev)
}

// POST /api/a/events/:id/activities
func (ctrl *EventController) CreateActivity(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, err := clock.Parse(req.StartTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid start time, expected HH:MM")
	}
	end, err := clock.Parse(req.EndTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid end time, expected HH:MM")
	}

	var ev model.EventModel
	if err := ctrl.DB.First(&ev, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	act := model.ActivityModel{
		EventID:   eventID,
		Name:      req.Name,
		StartTime: start,
		EndTime:   end,
	}
	if err := ctrl.DB.Create(&act).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create activity")
	}
	return helper.JsonCreated(c, "Activity created", act)
}

/* ===================== READ ===================== */
// GET /api/a/events
func (ctrl *EventController) ListEvents(c *fiber.Ctx) error {
	var events []model.EventModel
	if err := ctrl.DB.Order("start_date DESC").Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "Events", events)
}

// GET /api/a/events/:id
func (ctrl *EventController) GetEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var ev model.EventModel
	if err := ctrl.DB.Preload("Activities").First(&ev, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Event", ev)
}
