package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/dateutil"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/mentor"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/sos"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/storage"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/tracker"
)

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker

	// Adviser and Locator are optional collaborators; commands degrade
	// gracefully when they are nil.
	Adviser mentor.Adviser
	Locator sos.Locator
}

// RequireProfile returns the active profile name or an error telling the
// user to onboard first.
func (c *Context) RequireProfile() (string, error) {
	p := c.Tracker.ActiveProfile()
	if p == nil {
		return "", fmt.Errorf("no active profile; run 'supertracker profile create' first")
	}
	return p.Name, nil
}

// ParseMonth parses "YYYY-MM" into a month key, defaulting to the current
// month when the input is empty. The result is clamped to the supported
// year range.
func ParseMonth(s string) (dateutil.MonthKey, error) {
	if s == "" {
		now := time.Now()
		return dateutil.MonthKey{Year: now.Year(), Month: now.Month()}.ClampToRange(), nil
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return dateutil.MonthKey{}, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return dateutil.MonthKey{}, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return dateutil.MonthKey{}, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	key := dateutil.MonthKey{Year: year, Month: time.Month(month)}
	if !dateutil.InSupportedRange(year) {
		return dateutil.MonthKey{}, fmt.Errorf("year %d is outside the supported range", year)
	}
	return key, nil
}

// ParseDate validates a YYYY-MM-DD key, defaulting to today when empty.
func ParseDate(s string) (string, error) {
	if s == "" {
		t := dateutil.Today()
		return dateutil.DateKey(t.Year(), t.Month(), t.Day()), nil
	}
	if _, err := dateutil.ParseDateKey(s); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return s, nil
}
