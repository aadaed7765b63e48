package service

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"relawanku_backend/internals/features/attendance/records/dto"
	"relawanku_backend/internals/features/attendance/records/model"
)

const editTimeLayout = "2006-01-02 15:04"

/* ===================== CORRECTION ===================== */

// EditEntry rewrites a record's times with a required reason. Only the fields
// that actually changed appear in the rendered description; identical
// before/after times are a valid no-op.
func (s *AttendanceService) EditEntry(actorID, recordID uuid.UUID, req dto.EditEntryRequest) (*dto.EditEntryResult, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "A reason is required for corrections")
	}

	rec, err := s.findRecord(s.DB, recordID)
	if err != nil {
		return nil, err
	}

	inChanged := req.NewCheckInTime != nil && !req.NewCheckInTime.Equal(rec.CheckInTime)
	outChanged := req.NewCheckOutTime != nil &&
		(rec.CheckOutTime == nil || !req.NewCheckOutTime.Equal(*rec.CheckOutTime))

	if !inChanged && !outChanged {
		// nothing to do, still a valid call
		return &dto.EditEntryResult{Success: true, Description: ""}, nil
	}

	var parts []string
	entry := model.ChangeLogEntry{
		Timestamp: s.now(),
		ActorID:   actorID,
		Type:      model.ChangeEdit,
		Reason:    reason,
	}

	if inChanged {
		parts = append(parts, fmt.Sprintf("Check-In changed from %s to %s",
			rec.CheckInTime.Format(editTimeLayout), req.NewCheckInTime.Format(editTimeLayout)))
		before := rec.CheckInTime
		entry.BeforeCheckIn = &before
		entry.AfterCheckIn = req.NewCheckInTime
		rec.CheckInTime = *req.NewCheckInTime
	}
	if outChanged {
		old := "not set"
		if rec.CheckOutTime != nil {
			old = rec.CheckOutTime.Format(editTimeLayout)
			before := *rec.CheckOutTime
			entry.BeforeCheckOut = &before
		}
		parts = append(parts, fmt.Sprintf("Check-Out changed from %s to %s",
			old, req.NewCheckOutTime.Format(editTimeLayout)))
		entry.AfterCheckOut = req.NewCheckOutTime
		rec.CheckOutTime = req.NewCheckOutTime
	}

	if rec.CheckOutTime != nil {
		if !rec.CheckOutTime.After(rec.CheckInTime) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Check-out must be after check-in")
		}
		rawMinutes, hours := RoundHours(rec.CheckInTime, *rec.CheckOutTime)
		rec.RawMinutes = &rawMinutes
		rec.HoursWorked = &hours
	}

	desc := strings.Join(parts, " and ") + ". Reason: " + reason
	entry.Description = desc
	rec.ModificationReason = &desc

	if err := rec.AppendChange(entry); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to append change log")
	}
	if err := s.DB.Save(rec).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to save correction")
	}

	return &dto.EditEntryResult{Success: true, Description: desc}, nil
}

/* ===================== VOID / RESTORE ===================== */

// Void soft-deletes a record: it drops out of hour totals and review counts
// but stays queryable and keeps its ledger.
func (s *AttendanceService) Void(actorID, recordID uuid.UUID, voidReason string) (*dto.VoidResult, error) {
	reason := strings.TrimSpace(voidReason)
	if len(reason) < 5 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Void reason must be at least 5 characters")
	}

	rec, err := s.findRecord(s.DB, recordID)
	if err != nil {
		return nil, err
	}
	if rec.IsVoided {
		return nil, fiber.NewError(fiber.StatusConflict, "Record is already voided")
	}
	p, err := s.findParticipant(rec.ParticipantID)
	if err != nil {
		return nil, err
	}

	rec.IsVoided = true
	rec.VoidReason = &reason
	if err := rec.AppendChange(model.ChangeLogEntry{
		Timestamp:   s.now(),
		ActorID:     actorID,
		Type:        model.ChangeVoid,
		Reason:      reason,
		Description: "Voided. Reason: " + reason,
	}); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to append change log")
	}
	if err := s.DB.Save(rec).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to void record")
	}

	return &dto.VoidResult{ParticipantName: p.DisplayName()}, nil
}

// Restore undoes a void; the ledger entry references the original void
// reason so the audit trail stays self-contained.
func (s *AttendanceService) Restore(actorID, recordID uuid.UUID) (*dto.VoidResult, error) {
	rec, err := s.findRecord(s.DB, recordID)
	if err != nil {
		return nil, err
	}
	if !rec.IsVoided {
		return nil, fiber.NewError(fiber.StatusPreconditionFailed, "Record is not voided")
	}
	p, err := s.findParticipant(rec.ParticipantID)
	if err != nil {
		return nil, err
	}

	oldReason := ""
	if rec.VoidReason != nil {
		oldReason = *rec.VoidReason
	}
	restoreReason := fmt.Sprintf("Restored (previously voided: %s)", oldReason)

	rec.IsVoided = false
	rec.VoidReason = nil
	if err := rec.AppendChange(model.ChangeLogEntry{
		Timestamp:   s.now(),
		ActorID:     actorID,
		Type:        model.ChangeRestore,
		Reason:      restoreReason,
		Description: restoreReason,
	}); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to append change log")
	}
	if err := s.DB.Save(rec).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to restore record")
	}

	return &dto.VoidResult{ParticipantName: p.DisplayName()}, nil
}
