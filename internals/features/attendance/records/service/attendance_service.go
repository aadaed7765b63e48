package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"relawanku_backend/internals/features/attendance/records/dto"
	"relawanku_backend/internals/features/attendance/records/model"
	eventModel "relawanku_backend/internals/features/events/model"
	participantModel "relawanku_backend/internals/features/participants/model"
	"relawanku_backend/internals/helpers/clock"
)

// AttendanceService owns the attendance record lifecycle: every create or
// mutation goes through here, runs the hour/flag computation, and appends to
// the record's change log. Controllers stay thin.
type AttendanceService struct {
	DB *gorm.DB

	// Now is swappable so the boundary tests can pin the clock.
	Now func() time.Time
}

func New(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db, Now: time.Now}
}

func (s *AttendanceService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

/* ===================== CHECK-IN ===================== */

// CheckIn opens a new record for (participant, event, activity, today).
// A still-open record for the same key yields the non-fatal duplicate result
// carrying the existing check-in time; the partial unique index backstops the
// race between the pre-read and the insert.
func (s *AttendanceService) CheckIn(actorID uuid.UUID, req dto.CheckInRequest) (*dto.CheckInResult, error) {
	p, err := s.findParticipant(req.ParticipantID)
	if err != nil {
		return nil, err
	}
	ev, act, err := s.findSchedule(req.EventID, req.ActivityID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	date := clock.DateOnly(now)

	if existing, err := s.findOpenRecord(s.DB, req.ParticipantID, req.EventID, req.ActivityID, date); err != nil {
		return nil, err
	} else if existing != nil {
		t := existing.CheckInTime
		return &dto.CheckInResult{Duplicate: true, ExistingCheckInTime: &t}, nil
	}

	rec := model.AttendanceRecordModel{
		ParticipantID: req.ParticipantID,
		EventID:       req.EventID,
		ActivityID:    req.ActivityID,
		Date:          date,
		CheckInTime:   now,
		CheckInMethod: req.Method,
		ReviewStatus:  model.ReviewPending,
	}
	for _, f := range CheckInFlags(now, typicalStart(ev, act, date)) {
		rec.AddFlag(f)
	}
	if len(rec.Flags) > 0 {
		rec.ReviewStatus = model.ReviewFlagged
	}

	if err := s.DB.Create(&rec).Error; err != nil {
		if isDuplicateKeyErr(err) {
			// lost the race; someone else opened the record first
			if existing, rerr := s.findOpenRecord(s.DB, req.ParticipantID, req.EventID, req.ActivityID, date); rerr == nil && existing != nil {
				t := existing.CheckInTime
				return &dto.CheckInResult{Duplicate: true, ExistingCheckInTime: &t}, nil
			}
			return &dto.CheckInResult{Duplicate: true}, nil
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create attendance record")
	}

	return &dto.CheckInResult{
		RecordID:        rec.ID,
		ParticipantName: p.DisplayName(),
		CheckInTime:     rec.CheckInTime,
		Flags:           rec.Flags,
	}, nil
}

/* ===================== CHECK-OUT ===================== */

// CheckOut closes the open record for the key, computes hours and flags, and
// reports the participant's week-to-date total. The just-closed record is
// added to the sum explicitly since it is written in the same step.
func (s *AttendanceService) CheckOut(actorID uuid.UUID, req dto.CheckOutRequest) (*dto.CheckOutResult, error) {
	p, err := s.findParticipant(req.ParticipantID)
	if err != nil {
		return nil, err
	}
	ev, act, err := s.findSchedule(req.EventID, req.ActivityID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	date := clock.DateOnly(now)

	rec, err := s.findOpenRecord(s.DB, req.ParticipantID, req.EventID, req.ActivityID, date)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "No open check-in found for this activity today")
	}
	if !now.After(rec.CheckInTime) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Check-out must be after check-in")
	}

	rawMinutes, hours := RoundHours(rec.CheckInTime, now)
	for _, f := range CheckOutFlags(now, typicalEnd(ev, act, date)) {
		rec.AddFlag(f)
	}

	method := req.Method
	rec.CheckOutTime = &now
	rec.CheckOutMethod = &method
	rec.HoursWorked = &hours
	rec.RawMinutes = &rawMinutes
	if len(rec.Flags) > 0 {
		rec.ReviewStatus = model.ReviewFlagged
	}

	weekTotal, err := s.weekToDateTotal(req.ParticipantID, req.EventID, now)
	if err != nil {
		return nil, err
	}
	weekTotal += hours

	if err := s.DB.Save(rec).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to close attendance record")
	}

	return &dto.CheckOutResult{
		ParticipantName: p.DisplayName(),
		HoursToday:      hours,
		WeekTotal:       weekTotal,
		CheckOutTime:    now,
		Flags:           rec.Flags,
	}, nil
}

/* ===================== MANUAL ENTRY ===================== */

// CreateManualEntry creates a fully-closed record from an explicit time
// range. Manual entries bypass the pending/flagged pipeline.
func (s *AttendanceService) CreateManualEntry(actorID uuid.UUID, req dto.ManualEntryRequest) (*dto.ManualEntryResult, error) {
	date, err := clock.ParseDate(req.Date)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}
	startClock, err := clock.Parse(req.StartTime)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid start time, expected HH:MM")
	}
	endClock, err := clock.Parse(req.EndTime)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid end time, expected HH:MM")
	}

	start := startClock.On(date)
	end := endClock.On(date)
	if !end.After(start) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "End time must be after start time")
	}

	if _, err := s.findParticipant(req.ParticipantID); err != nil {
		return nil, err
	}
	if _, _, err := s.findSchedule(req.EventID, req.ActivityID); err != nil {
		return nil, err
	}

	rawMinutes, hours := RoundHours(start, end)
	method := model.MethodManual

	rec := model.AttendanceRecordModel{
		ParticipantID:  req.ParticipantID,
		EventID:        req.EventID,
		ActivityID:     req.ActivityID,
		Date:           clock.DateOnly(date),
		CheckInTime:    start,
		CheckInMethod:  model.MethodManual,
		CheckOutTime:   &end,
		CheckOutMethod: &method,
		HoursWorked:    &hours,
		RawMinutes:     &rawMinutes,
		ReviewStatus:   model.ReviewApproved,
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create manual entry")
	}

	return &dto.ManualEntryResult{RecordID: rec.ID, HoursWorked: hours}, nil
}

/* ===================== SHARED LOOKUPS ===================== */

func (s *AttendanceService) findParticipant(id uuid.UUID) (*participantModel.ParticipantModel, error) {
	var p participantModel.ParticipantModel
	if err := s.DB.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Participant not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &p, nil
}

func (s *AttendanceService) findRecord(db *gorm.DB, id uuid.UUID) (*model.AttendanceRecordModel, error) {
	var rec model.AttendanceRecordModel
	if err := db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &rec, nil
}

// findSchedule loads the event (required) and the activity (optional; the
// event defaults cover activities without a schedule row).
func (s *AttendanceService) findSchedule(eventID, activityID uuid.UUID) (*eventModel.EventModel, *eventModel.ActivityModel, error) {
	var ev eventModel.EventModel
	if err := s.DB.First(&ev, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	var act eventModel.ActivityModel
	err := s.DB.First(&act, "id = ? AND event_id = ?", activityID, eventID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ev, nil, nil
		}
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &ev, &act, nil
}

func (s *AttendanceService) findOpenRecord(db *gorm.DB, participantID, eventID, activityID uuid.UUID, date time.Time) (*model.AttendanceRecordModel, error) {
	var rec model.AttendanceRecordModel
	err := db.
		Where("participant_id = ? AND event_id = ? AND activity_id = ? AND date = ?", participantID, eventID, activityID, date).
		Where("check_out_time IS NULL").
		Order("check_in_time DESC").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &rec, nil
}

// weekToDateTotal sums hours of closed, non-voided records for the
// participant/event from the most recent Monday through today inclusive.
func (s *AttendanceService) weekToDateTotal(participantID, eventID uuid.UUID, now time.Time) (float64, error) {
	var total float64
	err := s.DB.Model(&model.AttendanceRecordModel{}).
		Where("participant_id = ? AND event_id = ?", participantID, eventID).
		Where("check_out_time IS NOT NULL AND is_voided = ?", false).
		Where("date >= ?", clock.MondayOf(now)).
		Select("COALESCE(SUM(hours_worked), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return total, nil
}

func typicalStart(ev *eventModel.EventModel, act *eventModel.ActivityModel, date time.Time) time.Time {
	if act != nil && !act.StartTime.IsZero() {
		return act.StartTime.On(date)
	}
	return ev.DefaultStartTime.On(date)
}

func typicalEnd(ev *eventModel.EventModel, act *eventModel.ActivityModel, date time.Time) time.Time {
	if act != nil && !act.EndTime.IsZero() {
		return act.EndTime.On(date)
	}
	return ev.DefaultEndTime.On(date)
}

// isDuplicateKeyErr covers both the translated gorm error and the raw driver
// messages (postgres "duplicate key", sqlite "UNIQUE constraint").
func isDuplicateKeyErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
