package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"relawanku_backend/internals/features/attendance/review/service"
	helper "relawanku_backend/internals/helpers"
	"relawanku_backend/internals/helpers/clock"
)

type ReviewController struct {
	DB      *gorm.DB
	Service *service.ReviewService
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db, Service: service.New(db)}
}

// GET /api/a/review/summary?event_id=...&date=YYYY-MM-DD
func (ctrl *ReviewController) DailySummary(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Query("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}
	date, err := clock.ParseDate(c.Query("date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	summary, err := ctrl.Service.DailySummary(eventID, date)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Daily review summary", summary)
}

// GET /api/a/review/records?event_id=...&date=...&search=...&category=...
func (ctrl *ReviewController) Records(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Query("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}
	date, err := clock.ParseDate(c.Query("date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	rows, err := ctrl.Service.Records(eventID, date, c.Query("search"), c.Query("category", "all"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Daily review records", rows)
}
