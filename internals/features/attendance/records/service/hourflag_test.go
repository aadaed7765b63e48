package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"relawanku_backend/internals/features/attendance/records/model"
)

func TestRoundHours(t *testing.T) {
	base := time.Date(2025, 6, 11, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		minutes   int
		wantRaw   int
		wantHours float64
	}{
		{"just under quarter past", 373, 373, 6.0},
		{"just over quarter past", 376, 376, 6.5},
		{"rounds up to whole hour", 407, 407, 7.0},
		{"exact half-hour boundary", 390, 390, 6.5},
		{"single minute", 1, 1, 0.0},
		{"fifteen minutes", 15, 15, 0.5},
		{"eight hours", 480, 480, 8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, hours := RoundHours(base, base.Add(time.Duration(tt.minutes)*time.Minute))
			assert.Equal(t, tt.wantRaw, raw)
			assert.Equal(t, tt.wantHours, hours)
		})
	}
}

func TestRoundHoursAlwaysHalfSteps(t *testing.T) {
	base := time.Date(2025, 6, 11, 8, 0, 0, 0, time.UTC)
	for m := 1; m <= 600; m++ {
		_, hours := RoundHours(base, base.Add(time.Duration(m)*time.Minute))
		doubled := hours * 2
		assert.Equal(t, float64(int(doubled)), doubled, "minutes=%d hours=%v", m, hours)
	}
}

func TestRoundHoursDropsSeconds(t *testing.T) {
	base := time.Date(2025, 6, 11, 8, 0, 0, 0, time.UTC)
	// 59s short of 374 minutes still floors to 373 raw minutes
	raw, hours := RoundHours(base, base.Add(373*time.Minute+59*time.Second))
	assert.Equal(t, 373, raw)
	assert.Equal(t, 6.0, hours)
}

func TestCheckInFlags(t *testing.T) {
	start := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want []model.Flag
	}{
		{"on time", start, nil},
		{"exactly fifteen early", start.Add(-15 * time.Minute), nil},
		{"one second past grace", start.Add(-15*time.Minute - time.Second), []model.Flag{model.FlagEarlyArrival}},
		{"an hour early", start.Add(-time.Hour), []model.Flag{model.FlagEarlyArrival}},
		{"late arrival never flags", start.Add(2 * time.Hour), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckInFlags(tt.at, start))
		})
	}
}

func TestCheckOutFlags(t *testing.T) {
	end := time.Date(2025, 6, 11, 17, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want []model.Flag
	}{
		{"on time", end, nil},
		{"exactly fifteen late is clean", end.Add(15 * time.Minute), nil},
		{"one second past grace", end.Add(15*time.Minute + time.Second), []model.Flag{model.FlagLateStay}},
		{"hours late", end.Add(3 * time.Hour), []model.Flag{model.FlagLateStay}},
		{"early departure never flags", end.Add(-2 * time.Hour), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckOutFlags(tt.at, end))
		})
	}
}
