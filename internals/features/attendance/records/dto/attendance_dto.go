package dto

import (
	"time"

	"github.com/google/uuid"

	"relawanku_backend/internals/features/attendance/records/model"
)

/* ===================== REQUESTS ===================== */

type CheckInRequest struct {
	ParticipantID uuid.UUID         `json:"participant_id" validate:"required"`
	EventID       uuid.UUID         `json:"event_id" validate:"required"`
	ActivityID    uuid.UUID         `json:"activity_id" validate:"required"`
	Method        model.CheckMethod `json:"method" validate:"required,oneof=self_scan staff_scan"`
}

type CheckOutRequest struct {
	ParticipantID uuid.UUID         `json:"participant_id" validate:"required"`
	EventID       uuid.UUID         `json:"event_id" validate:"required"`
	ActivityID    uuid.UUID         `json:"activity_id" validate:"required"`
	Method        model.CheckMethod `json:"method" validate:"required,oneof=self_scan staff_scan"`
}

// ScanRequest is the public kiosk payload: the badge token stands in for the
// participant/event ids.
type ScanRequest struct {
	Token      string    `json:"token" validate:"required"`
	ActivityID uuid.UUID `json:"activity_id" validate:"required"`
}

type ManualEntryRequest struct {
	ParticipantID uuid.UUID `json:"participant_id" validate:"required"`
	EventID       uuid.UUID `json:"event_id" validate:"required"`
	ActivityID    uuid.UUID `json:"activity_id" validate:"required"`
	Date          string    `json:"date" validate:"required"`       // "YYYY-MM-DD"
	StartTime     string    `json:"start_time" validate:"required"` // "HH:MM"
	EndTime       string    `json:"end_time" validate:"required"`   // "HH:MM"
}

type EditEntryRequest struct {
	NewCheckInTime  *time.Time `json:"new_check_in_time"`
	NewCheckOutTime *time.Time `json:"new_check_out_time"`
	Reason          string     `json:"reason" validate:"required"`
}

type ForceCheckOutRequest struct {
	CheckOutTime time.Time `json:"check_out_time" validate:"required"`
	Reason       string    `json:"reason" validate:"required"`
}

type ForceAllCheckOutRequest struct {
	EventID uuid.UUID `json:"event_id" validate:"required"`
	Date    string    `json:"date" validate:"required"` // "YYYY-MM-DD"
	Reason  string    `json:"reason" validate:"required"`
	// Optional explicit checkout clock per activity id, "HH:MM".
	PerActivityCheckOutTimes map[string]string `json:"per_activity_check_out_times"`
}

type VoidRequest struct {
	VoidReason string `json:"void_reason" validate:"required"`
}

/* ===================== RESULTS ===================== */

type CheckInResult struct {
	Duplicate           bool       `json:"duplicate,omitempty"`
	ExistingCheckInTime *time.Time `json:"existing_check_in_time,omitempty"`

	RecordID        uuid.UUID `json:"record_id,omitempty"`
	ParticipantName string    `json:"participant_name,omitempty"`
	CheckInTime     time.Time `json:"check_in_time,omitempty"`
	Flags           []string  `json:"flags,omitempty"`
}

type CheckOutResult struct {
	ParticipantName string    `json:"participant_name"`
	HoursToday      float64   `json:"hours_today"`
	WeekTotal       float64   `json:"week_total"`
	CheckOutTime    time.Time `json:"check_out_time"`
	Flags           []string  `json:"flags,omitempty"`
}

type ManualEntryResult struct {
	RecordID    uuid.UUID `json:"record_id"`
	HoursWorked float64   `json:"hours_worked"`
}

type EditEntryResult struct {
	Success     bool   `json:"success"`
	Description string `json:"description"`
}

type ForceCheckOutResult struct {
	ParticipantName string  `json:"participant_name"`
	HoursWorked     float64 `json:"hours_worked"`
	RawMinutes      int     `json:"raw_minutes"`
}

type ForceAllCheckOutResult struct {
	CheckedOutCount int `json:"checked_out_count"`
}

type VoidResult struct {
	ParticipantName string `json:"participant_name"`
}
