package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"relawanku_backend/internals/configs"
	"relawanku_backend/internals/features/attendance/records/dto"
	"relawanku_backend/internals/features/attendance/records/model"
	"relawanku_backend/internals/features/attendance/records/service"
	"relawanku_backend/internals/features/badges/qrtoken"
	helper "relawanku_backend/internals/helpers"
)

// ScanController serves the public kiosk endpoints. The badge token is the
// only credential: a valid checksum proves the badge was issued by us, and
// the participant acts as their own actor on self-scans.
type ScanController struct {
	DB      *gorm.DB
	Service *service.AttendanceService
	Codec   qrtoken.Codec
}

func NewScanController(db *gorm.DB) *ScanController {
	return &ScanController{
		DB:      db,
		Service: service.New(db),
		Codec:   qrtoken.New(configs.BadgeTokenSecret),
	}
}

// POST /api/scan/check-in
func (ctrl *ScanController) CheckIn(c *fiber.Ctx) error {
	participantID, eventID, activityID, err := ctrl.parseScan(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	result, svcErr := ctrl.Service.CheckIn(participantID, dto.CheckInRequest{
		ParticipantID: participantID,
		EventID:       eventID,
		ActivityID:    activityID,
		Method:        model.MethodSelfScan,
	})
	if svcErr != nil {
		return helper.FromFiberError(c, svcErr)
	}
	if result.Duplicate {
		return helper.JsonOK(c, "Already checked in", result)
	}
	return helper.JsonCreated(c, "Checked in", result)
}

// POST /api/scan/check-out
func (ctrl *ScanController) CheckOut(c *fiber.Ctx) error {
	participantID, eventID, activityID, err := ctrl.parseScan(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	result, svcErr := ctrl.Service.CheckOut(participantID, dto.CheckOutRequest{
		ParticipantID: participantID,
		EventID:       eventID,
		ActivityID:    activityID,
		Method:        model.MethodSelfScan,
	})
	if svcErr != nil {
		return helper.FromFiberError(c, svcErr)
	}
	return helper.JsonOK(c, "Checked out", result)
}

// parseScan reads the kiosk payload and authenticates the badge token.
func (ctrl *ScanController) parseScan(c *fiber.Ctx) (participantID, eventID, activityID uuid.UUID, err error) {
	var req dto.ScanRequest
	if perr := c.BodyParser(&req); perr != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if verr := validate.Struct(req); verr != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	pStr, eStr, checksum, perr := ctrl.Codec.Parse(req.Token)
	if perr != nil {
		if errors.Is(perr, qrtoken.ErrFormat) {
			return uuid.Nil, uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Malformed badge token")
		}
		return uuid.Nil, uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid badge token")
	}
	if !ctrl.Codec.Validate(pStr, eStr, checksum) {
		return uuid.Nil, uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid badge token")
	}

	participantID, perr = uuid.Parse(pStr)
	if perr != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid badge token")
	}
	eventID, perr = uuid.Parse(eStr)
	if perr != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid badge token")
	}
	return participantID, eventID, req.ActivityID, nil
}
