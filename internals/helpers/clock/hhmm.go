// Package clock holds the local-clock value types used by activity schedules
// and manual attendance entry. All timestamp conversions happen here, at the
// store-adapter edge, never inside handler logic.
package clock

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// HHMM is a wall-clock time of day without a date or zone, e.g. "17:30".
// It maps to a Postgres TIME column and marshals as "HH:MM".
type HHMM struct{ time.Time }

// From builds an HHMM from a time.Time (keeps HH:mm:ss, drops date & zone).
func From(t time.Time) HHMM {
	return HHMM{Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

// Parse builds an HHMM from "HH:mm" or "HH:mm:ss".
func Parse(s string) (HHMM, error) {
	var h HHMM
	return h, h.parse(s)
}

// On anchors the clock time onto the given date (date's location is kept).
func (h HHMM) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		h.Hour(), h.Minute(), h.Second(), 0, date.Location())
}

func (h HHMM) IsZero() bool { return h.Time.IsZero() }

func (h *HHMM) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return err
	}
	h.Time = t
	return nil
}

// Scan accepts time.Time or string ("HH:MM[:SS]").
func (h *HHMM) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		h.Time = x
		return nil
	case []byte:
		return h.parse(string(x))
	case string:
		return h.parse(x)
	case nil:
		h.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("clock: unsupported Scan type %T", v)
	}
}

// Value emits "HH:MM:SS" so a Postgres TIME column understands it.
func (h HHMM) Value() (driver.Value, error) {
	if h.Time.IsZero() {
		return "00:00:00", nil
	}
	return h.Format("15:04:05"), nil
}

func (h HHMM) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Format("15:04"))
}

func (h *HHMM) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return h.parse(s)
}
