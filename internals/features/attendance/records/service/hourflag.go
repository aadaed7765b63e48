package service

import (
	"math"
	"time"

	"relawanku_backend/internals/features/attendance/records/model"
)

// Grace window around the typical shift times before a check-in/out is
// flagged for review. Exactly 15 minutes is still clean; 15m01s is not.
const flagGrace = 15 * time.Minute

// RoundHours converts a worked interval into whole raw minutes and hours
// rounded to the nearest half hour (half-away-from-zero). Callers guarantee
// out > in; this never sees an empty or negative interval.
func RoundHours(in, out time.Time) (rawMinutes int, hours float64) {
	rawMinutes = int(out.Sub(in) / time.Minute)
	hours = math.Floor(float64(rawMinutes)/60*2+0.5) / 2
	return rawMinutes, hours
}

// CheckInFlags flags arrivals more than the grace window before the typical
// shift start.
func CheckInFlags(at, typicalStart time.Time) []model.Flag {
	if at.Before(typicalStart.Add(-flagGrace)) {
		return []model.Flag{model.FlagEarlyArrival}
	}
	return nil
}

// CheckOutFlags flags departures strictly later than the grace window after
// the typical shift end.
func CheckOutFlags(at, typicalEnd time.Time) []model.Flag {
	if at.After(typicalEnd.Add(flagGrace)) {
		return []model.Flag{model.FlagLateStay}
	}
	return nil
}
