package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"relawanku_backend/internals/features/attendance/records/dto"
	"relawanku_backend/internals/features/attendance/records/service"
	helper "relawanku_backend/internals/helpers"
)

// AttendanceController serves the staff/admin attendance operations.
type AttendanceController struct {
	DB      *gorm.DB
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Service: service.New(db)}
}

var validate = validator.New()

/* ===================== CHECK-IN / CHECK-OUT ===================== */
// POST /api/a/attendance/check-in
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctrl.Service.CheckIn(actorID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if result.Duplicate {
		return helper.JsonOK(c, "Already checked in", result)
	}
	return helper.JsonCreated(c, "Checked in", result)
}

// POST /api/a/attendance/check-out
func (ctrl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctrl.Service.CheckOut(actorID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Checked out", result)
}

/* ===================== MANUAL ENTRY ===================== */
// POST /api/a/attendance/manual
func (ctrl *AttendanceController) CreateManualEntry(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ManualEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctrl.Service.CreateManualEntry(actorID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Manual entry created", result)
}

/* ===================== CORRECTION ===================== */
// PATCH /api/a/attendance/:id
func (ctrl *AttendanceController) EditEntry(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid record ID")
	}

	var req dto.EditEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctrl.Service.EditEntry(actorID, recordID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Entry corrected", result)
}

/* ===================== FORCED CHECK-OUT ===================== */
// POST /api/a/attendance/:id/force-checkout
func (ctrl *AttendanceController) ForceCheckOut(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid record ID")
	}

	var req dto.ForceCheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctrl.Service.ForceCheckOut(actorID, recordID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Forced check-out complete", result)
}

// POST /api/a/attendance/force-checkout-all
func (ctrl *AttendanceController) ForceAllCheckOut(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ForceAllCheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctrl.Service.ForceAllCheckOut(actorID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Bulk forced check-out complete", result)
}

/* ===================== VOID / RESTORE ===================== */
// POST /api/a/attendance/:id/void
func (ctrl *AttendanceController) Void(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid record ID")
	}

	var req dto.VoidRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctrl.Service.Void(actorID, recordID, req.VoidReason)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Entry voided", result)
}

// POST /api/a/attendance/:id/restore
func (ctrl *AttendanceController) Restore(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid record ID")
	}

	result, err := ctrl.Service.Restore(actorID, recordID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Entry restored", result)
}
