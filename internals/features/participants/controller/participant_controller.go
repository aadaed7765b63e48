package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"relawanku_backend/internals/configs"
	"relawanku_backend/internals/features/badges/qrtoken"
	"relawanku_backend/internals/features/participants/dto"
	"relawanku_backend/internals/features/participants/model"
	helper "relawanku_backend/internals/helpers"
)

type ParticipantController struct {
	DB *gorm.DB
}

func NewParticipantController(db *gorm.DB) *ParticipantController {
	return &ParticipantController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/a/participants
func (ctrl *ParticipantController) Create(c *fiber.Ctx) error {
	var req dto.CreateParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	p := model.ParticipantModel{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := ctrl.DB.Create(&p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create participant")
	}
	return helper.JsonCreated(c, "Participant created", p)
}

/* ===================== READ ===================== */
// GET /api/a/participants?q=...
func (ctrl *ParticipantController) List(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))

	tx := ctrl.DB.Order("last_name ASC, first_name ASC")
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like)
	}

	var participants []model.ParticipantModel
	if err := tx.Find(&participants).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "Participants", participants)
}

// GET /api/a/participants/:id
func (ctrl *ParticipantController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid participant ID")
	}

	var p model.ParticipantModel
	if err := ctrl.DB.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Participant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Participant", p)
}

/* ===================== BADGE ===================== */
// GET /api/a/participants/:id/badge?event_id=...
// Returns the token the badge printer encodes into the QR image.
func (ctrl *ParticipantController) Badge(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid participant ID")
	}
	eventID, err := uuid.Parse(c.Query("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var p model.ParticipantModel
	if err := ctrl.DB.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Participant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	codec := qrtoken.New(configs.BadgeTokenSecret)
	return helper.JsonOK(c, "Badge token", dto.BadgeResponse{
		ParticipantID:   id.String(),
		EventID:         eventID.String(),
		ParticipantName: p.DisplayName(),
		Token:           codec.Encode(id.String(), eventID.String()),
	})
}
