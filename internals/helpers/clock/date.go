package clock

import "time"

const DateLayout = "2006-01-02"

// DateOnly truncates t to midnight, keeping its location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate parses a "YYYY-MM-DD" string into a midnight instant (UTC).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// MondayOf returns midnight of the most recent Monday at or before t.
// Week totals run Monday through today inclusive.
func MondayOf(t time.Time) time.Time {
	d := DateOnly(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return d.AddDate(0, 0, -offset)
}
