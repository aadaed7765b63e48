package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"relawanku_backend/internals/features/attendance/records/dto"
	"relawanku_backend/internals/features/attendance/records/model"
	eventModel "relawanku_backend/internals/features/events/model"
	"relawanku_backend/internals/helpers/clock"
)

/* ===================== FORCED CHECK-OUT (single) ===================== */

// ForceCheckOut closes a record the participant failed to close themselves.
func (s *AttendanceService) ForceCheckOut(actorID, recordID uuid.UUID, req dto.ForceCheckOutRequest) (*dto.ForceCheckOutResult, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "A reason is required for forced check-out")
	}

	rec, err := s.findRecord(s.DB, recordID)
	if err != nil {
		return nil, err
	}
	if rec.CheckOutTime != nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Record is already checked out")
	}
	out := req.CheckOutTime
	if !out.After(rec.CheckInTime) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Check-out time must be after check-in")
	}
	p, err := s.findParticipant(rec.ParticipantID)
	if err != nil {
		return nil, err
	}

	rawMinutes, hours := RoundHours(rec.CheckInTime, out)
	desc := fmt.Sprintf("Forced Check-Out at %s (Checked in: %s). Reason: %s",
		out.Format(editTimeLayout), rec.CheckInTime.Format(editTimeLayout), reason)

	if err := applyForcedCheckout(rec, actorID, out, rawMinutes, hours, desc, model.ChangeForceCheckout, reason, s.now()); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to append change log")
	}
	if err := s.DB.Save(rec).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to force check-out")
	}

	return &dto.ForceCheckOutResult{
		ParticipantName: p.DisplayName(),
		HoursWorked:     hours,
		RawMinutes:      rawMinutes,
	}, nil
}

/* ===================== FORCED CHECK-OUT (bulk) ===================== */

// ForceAllCheckOut closes every open record for an event/date in one atomic
// batch. Per record the checkout clock resolves in priority order: explicit
// per-activity time from the caller, the activity's configured end time,
// then the event's default end time. Zero matching records is a success.
func (s *AttendanceService) ForceAllCheckOut(actorID uuid.UUID, req dto.ForceAllCheckOutRequest) (*dto.ForceAllCheckOutResult, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "A reason is required for bulk forced check-out")
	}
	date, err := clock.ParseDate(req.Date)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	var ev eventModel.EventModel
	if err := s.DB.First(&ev, "id = ?", req.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Parse all explicit clocks up front so a malformed one fails before any
	// mutation is attempted.
	explicit := make(map[string]clock.HHMM, len(req.PerActivityCheckOutTimes))
	for activityID, raw := range req.PerActivityCheckOutTimes {
		h, err := clock.Parse(raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Invalid check-out time %q for activity %s", raw, activityID))
		}
		explicit[activityID] = h
	}

	var activities []eventModel.ActivityModel
	if err := s.DB.Find(&activities, "event_id = ?", req.EventID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	activityByID := make(map[uuid.UUID]eventModel.ActivityModel, len(activities))
	for _, a := range activities {
		activityByID[a.ID] = a
	}

	var records []model.AttendanceRecordModel
	if err := s.DB.
		Where("event_id = ? AND date = ?", req.EventID, clock.DateOnly(date)).
		Where("check_out_time IS NULL").
		Find(&records).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if len(records) == 0 {
		return &dto.ForceAllCheckOutResult{CheckedOutCount: 0}, nil
	}

	count := 0
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		for i := range records {
			rec := &records[i]

			var out time.Time
			if h, ok := explicit[rec.ActivityID.String()]; ok {
				out = h.On(date)
			} else if act, ok := activityByID[rec.ActivityID]; ok && !act.EndTime.IsZero() {
				out = act.EndTime.On(date)
			} else {
				out = ev.DefaultEndTime.On(date)
			}
			if !out.After(rec.CheckInTime) {
				// checked in after the resolved shift end; close with zero hours
				out = rec.CheckInTime.Add(time.Minute)
			}

			rawMinutes, hours := RoundHours(rec.CheckInTime, out)
			desc := fmt.Sprintf("Bulk Forced Check-Out at %s (Checked in: %s). Reason: %s",
				out.Format(editTimeLayout), rec.CheckInTime.Format(editTimeLayout), reason)

			if err := applyForcedCheckout(rec, actorID, out, rawMinutes, hours, desc, model.ChangeForceCheckoutBulk, reason, s.now()); err != nil {
				return err
			}
			if err := tx.Save(rec).Error; err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if txErr != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Bulk forced check-out failed, no records were changed")
	}

	return &dto.ForceAllCheckOutResult{CheckedOutCount: count}, nil
}

// applyForcedCheckout gives a record the forced-checkout treatment: closing
// fields, idempotent forced_checkout flag, description, and ledger entry.
func applyForcedCheckout(rec *model.AttendanceRecordModel, actorID uuid.UUID, out time.Time, rawMinutes int, hours float64, desc string, typ model.ChangeType, reason string, at time.Time) error {
	method := model.MethodForced
	rec.CheckOutTime = &out
	rec.CheckOutMethod = &method
	rec.RawMinutes = &rawMinutes
	rec.HoursWorked = &hours
	rec.AddFlag(model.FlagForcedCheckout)
	rec.ModificationReason = &desc
	rec.ReviewStatus = model.ReviewFlagged
	return rec.AppendChange(model.ChangeLogEntry{
		Timestamp:     at,
		ActorID:       actorID,
		Type:          typ,
		Reason:        reason,
		Description:   desc,
		AfterCheckOut: &out,
	})
}
