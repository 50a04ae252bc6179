package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHMS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{1, "00:00:01"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{28800, "08:00:00"}, // 480 minutes, the maximum session
		{-5, "00:00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHMS(tt.seconds))
	}
}

func TestProgressPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total     int
		remaining int
		want      int
	}{
		{0, 0, 0},
		{100, 100, 0},
		{100, 50, 50},
		{100, 0, 100},
		{3600, 3599, 0}, // truncates, never rounds up
		{3600, 900, 75},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ProgressPercent(tt.total, tt.remaining))
	}
}

func TestDimControllerOpacity(t *testing.T) {
	t.Parallel()

	d := NewDimController(nil)
	assert.Zero(t, d.Opacity(0))
	assert.InDelta(t, 0.45, d.Opacity(0.5), 1e-9)
	assert.InDelta(t, MaxDimOpacity, d.Opacity(1), 1e-9)
	assert.Zero(t, d.Opacity(-1))
	assert.InDelta(t, MaxDimOpacity, d.Opacity(2), 1e-9)
}
