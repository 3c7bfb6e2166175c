package dateutil

import (
	"fmt"
	"time"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/constants"
)

// DaysInMonth returns the number of days in the given month (day zero of the
// following month is the last day of this one).
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOfMonth returns the weekday of the 1st of the month
// (0=Sunday .. 6=Saturday).
func FirstWeekdayOfMonth(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// IsWeekend reports whether the given date falls on a Saturday or Sunday.
func IsWeekend(year int, month time.Month, day int) bool {
	wd := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DateKey formats a date as the zero-padded YYYY-MM-DD key used to index
// calendar data and cycle logs.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ParseDateKey parses a YYYY-MM-DD key back into a UTC midnight time.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(constants.DateFormat, key)
}

// InSupportedRange reports whether the year falls inside the navigable
// calendar window.
func InSupportedRange(year int) bool {
	return year >= constants.StartYear && year <= constants.EndYear
}

// Today returns the current date truncated to UTC midnight.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
