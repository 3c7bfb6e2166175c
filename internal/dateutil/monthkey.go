package dateutil

import (
	"fmt"
	"time"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/constants"
)

// MonthKey identifies one calendar month inside the supported range. It is
// the structured form of the "<month0>-<year>" strings that key habit
// completions in storage; the zero-based month in the wire format is a
// storage contract and only appears in String/ParseMonthKey.
type MonthKey struct {
	Year  int
	Month time.Month
}

// NewMonthKey builds the key for the month containing t.
func NewMonthKey(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// String renders the storage form, e.g. January 2025 -> "0-2025".
func (k MonthKey) String() string {
	return fmt.Sprintf("%d-%d", int(k.Month)-1, k.Year)
}

// ParseMonthKey parses the storage form back into a MonthKey.
func ParseMonthKey(s string) (MonthKey, error) {
	var month0, year int
	if _, err := fmt.Sscanf(s, "%d-%d", &month0, &year); err != nil {
		return MonthKey{}, fmt.Errorf("invalid month key %q: %w", s, err)
	}
	if month0 < 0 || month0 > 11 {
		return MonthKey{}, fmt.Errorf("invalid month key %q: month out of range", s)
	}
	return MonthKey{Year: year, Month: time.Month(month0 + 1)}, nil
}

// Days returns the number of days in the keyed month.
func (k MonthKey) Days() int {
	return DaysInMonth(k.Year, k.Month)
}

// Add navigates delta months forward (or backward for negative delta). When
// the target month leaves the supported year range the receiver is returned
// unchanged and ok is false.
func (k MonthKey) Add(delta int) (next MonthKey, ok bool) {
	t := time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	if !InSupportedRange(t.Year()) {
		return k, false
	}
	return MonthKey{Year: t.Year(), Month: t.Month()}, true
}

// ClampToRange pins the key inside the supported window, used when the
// current real-world month falls outside it.
func (k MonthKey) ClampToRange() MonthKey {
	if k.Year < constants.StartYear {
		return MonthKey{Year: constants.StartYear, Month: time.January}
	}
	if k.Year > constants.EndYear {
		return MonthKey{Year: constants.EndYear, Month: time.December}
	}
	return k
}
