package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CheckMethod says how a check-in/out was produced.
type CheckMethod string

const (
	MethodSelfScan  CheckMethod = "self_scan"
	MethodStaffScan CheckMethod = "staff_scan"
	MethodManual    CheckMethod = "manual"
	MethodForced    CheckMethod = "forced"
)

// Flag is an anomaly tag attached to a record for review.
type Flag string

const (
	FlagEarlyArrival   Flag = "early_arrival"
	FlagLateStay       Flag = "late_stay"
	FlagForcedCheckout Flag = "forced_checkout"
)

// ReviewStatus is an advisory classification for the review screen.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewFlagged  ReviewStatus = "flagged"
	ReviewApproved ReviewStatus = "approved"
)

// AttendanceRecordModel is one check-in/out session for a participant,
// activity, and date. The identity key (participant, event, activity, date)
// is non-unique; a partial unique index (see databases.Migrate) enforces that
// at most one record per key is still open. Records are never physically
// deleted: void is the only deletion semantic.
type AttendanceRecordModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`

	ParticipantID uuid.UUID `gorm:"type:uuid;not null;index:idx_attendance_identity;column:participant_id" json:"participant_id"`
	EventID       uuid.UUID `gorm:"type:uuid;not null;index:idx_attendance_identity;index:idx_attendance_event_date;column:event_id" json:"event_id"`
	ActivityID    uuid.UUID `gorm:"type:uuid;not null;index:idx_attendance_identity;column:activity_id" json:"activity_id"`
	Date          time.Time `gorm:"type:date;not null;index:idx_attendance_identity;index:idx_attendance_event_date;column:date" json:"date"`

	CheckInTime    time.Time    `gorm:"not null;column:check_in_time" json:"check_in_time"`
	CheckInMethod  CheckMethod  `gorm:"type:varchar(20);not null;column:check_in_method" json:"check_in_method"`
	CheckOutTime   *time.Time   `gorm:"column:check_out_time" json:"check_out_time,omitempty"`
	CheckOutMethod *CheckMethod `gorm:"type:varchar(20);column:check_out_method" json:"check_out_method,omitempty"`

	HoursWorked *float64 `gorm:"column:hours_worked" json:"hours_worked,omitempty"`
	RawMinutes  *int     `gorm:"column:raw_minutes" json:"raw_minutes,omitempty"`

	Flags pq.StringArray `gorm:"type:text[];column:flags" json:"flags"`

	IsVoided   bool    `gorm:"not null;default:false;column:is_voided" json:"is_voided"`
	VoidReason *string `gorm:"column:void_reason" json:"void_reason,omitempty"`

	// Latest human-readable description of the most recent correction.
	ModificationReason *string `gorm:"column:modification_reason" json:"modification_reason,omitempty"`

	ChangeLog datatypes.JSON `gorm:"column:change_log" json:"change_log,omitempty"`

	ReviewStatus ReviewStatus `gorm:"type:varchar(20);not null;default:pending;column:review_status" json:"review_status"`

	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func (m *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *AttendanceRecordModel) IsOpen() bool { return m.CheckOutTime == nil }

func (m *AttendanceRecordModel) HasFlag(f Flag) bool {
	for _, s := range m.Flags {
		if s == string(f) {
			return true
		}
	}
	return false
}

// AddFlag is idempotent; a flag never appears twice.
func (m *AttendanceRecordModel) AddFlag(f Flag) {
	if !m.HasFlag(f) {
		m.Flags = append(m.Flags, string(f))
	}
}
