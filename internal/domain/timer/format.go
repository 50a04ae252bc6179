package timer

import "fmt"

// FormatHMS renders a second count as zero-padded HH:MM:SS.
func FormatHMS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ProgressPercent returns the elapsed fraction as a truncated percentage.
// Returns 0 when total is 0.
func ProgressPercent(total, remaining int) int {
	if total <= 0 {
		return 0
	}
	return int(float64(total-remaining) / float64(total) * 100)
}
