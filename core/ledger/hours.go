package ledger

import (
	"fmt"
	"math"
	"time"
)

const clockLayout = "15:04"

// DefaultStart and DefaultEnd prefill a new timesheet draft.
const (
	DefaultStart = "08:00"
	DefaultEnd   = "17:00"
)

// HoursBetween returns end - start in hours rounded to two decimals.
// An end at or before the start counts as zero.
func HoursBetween(start, end string) (float64, error) {
	s, err := time.Parse(clockLayout, start)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q: %w", start, err)
	}
	e, err := time.Parse(clockLayout, end)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q: %w", end, err)
	}

	d := e.Sub(s)
	if d <= 0 {
		return 0, nil
	}
	return math.Round(d.Hours()*100) / 100, nil
}
