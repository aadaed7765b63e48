package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHHMM(t *testing.T) {
	h, err := Parse("17:30")
	require.NoError(t, err)
	assert.Equal(t, 17, h.Hour())
	assert.Equal(t, 30, h.Minute())

	h, err = Parse("08:05:30")
	require.NoError(t, err)
	assert.Equal(t, 8, h.Hour())
	assert.Equal(t, 5, h.Minute())
	assert.Equal(t, 30, h.Second())

	_, err = Parse("not a time")
	assert.Error(t, err)
	_, err = Parse("25:00")
	assert.Error(t, err)
}

func TestHHMMOnDate(t *testing.T) {
	h, err := Parse("09:15")
	require.NoError(t, err)

	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	at := h.On(date)
	assert.Equal(t, time.Date(2025, 6, 11, 9, 15, 0, 0, time.UTC), at)
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want time.Time
	}{
		{"wednesday", time.Date(2025, 6, 11, 14, 30, 0, 0, time.UTC), time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
		{"monday itself", time.Date(2025, 6, 9, 0, 0, 1, 0, time.UTC), time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC), time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MondayOf(tt.day))
		})
	}
}

func TestDateOnly(t *testing.T) {
	at := time.Date(2025, 6, 11, 14, 30, 45, 12, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), DateOnly(at))
}
