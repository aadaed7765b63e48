package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ChangeType is the closed set of ledger entry kinds.
type ChangeType string

const (
	ChangeEdit              ChangeType = "edit"
	ChangeForceCheckout     ChangeType = "force_checkout"
	ChangeForceCheckoutBulk ChangeType = "force_checkout_bulk"
	ChangeVoid              ChangeType = "void"
	ChangeRestore           ChangeType = "restore"
	ChangeManualCreate      ChangeType = "manual_create"
)

// ChangeLogEntry is one immutable correction record. Entries are appended to
// the record's ledger and never edited or removed.
type ChangeLogEntry struct {
	Timestamp   time.Time  `json:"timestamp"`
	ActorID     uuid.UUID  `json:"actor_id"`
	Type        ChangeType `json:"type"`
	Reason      string     `json:"reason,omitempty"`
	Description string     `json:"description"`

	BeforeCheckIn  *time.Time `json:"before_check_in,omitempty"`
	AfterCheckIn   *time.Time `json:"after_check_in,omitempty"`
	BeforeCheckOut *time.Time `json:"before_check_out,omitempty"`
	AfterCheckOut  *time.Time `json:"after_check_out,omitempty"`
}

// Entries decodes the stored ledger. An empty/null column is an empty ledger.
func (m *AttendanceRecordModel) Entries() ([]ChangeLogEntry, error) {
	if len(m.ChangeLog) == 0 {
		return nil, nil
	}
	var entries []ChangeLogEntry
	if err := json.Unmarshal(m.ChangeLog, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AppendChange appends one entry to the ledger, preserving order.
func (m *AttendanceRecordModel) AppendChange(e ChangeLogEntry) error {
	entries, err := m.Entries()
	if err != nil {
		return err
	}
	entries = append(entries, e)
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	m.ChangeLog = raw
	return nil
}
