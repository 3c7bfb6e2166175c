package dateutil

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2028, time.February, 29}, // leap year
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestFirstWeekdayOfMonth(t *testing.T) {
	// January 2025 starts on a Wednesday.
	if got := FirstWeekdayOfMonth(2025, time.January); got != 3 {
		t.Errorf("expected Wednesday (3), got %d", got)
	}
	// June 2025 starts on a Sunday.
	if got := FirstWeekdayOfMonth(2025, time.June); got != 0 {
		t.Errorf("expected Sunday (0), got %d", got)
	}
}

func TestIsWeekend(t *testing.T) {
	if !IsWeekend(2025, time.January, 4) {
		t.Error("2025-01-04 is a Saturday")
	}
	if !IsWeekend(2025, time.January, 5) {
		t.Error("2025-01-05 is a Sunday")
	}
	if IsWeekend(2025, time.January, 6) {
		t.Error("2025-01-06 is a Monday")
	}
}

func TestDateKeyRoundTrip(t *testing.T) {
	key := DateKey(2025, time.March, 7)
	if key != "2025-03-07" {
		t.Errorf("expected zero-padded key, got %s", key)
	}
	parsed, err := ParseDateKey(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Year() != 2025 || parsed.Month() != time.March || parsed.Day() != 7 {
		t.Errorf("round trip mismatch: %v", parsed)
	}
}

func TestMonthKeyWireFormat(t *testing.T) {
	jan := MonthKey{Year: 2025, Month: time.January}
	if jan.String() != "0-2025" {
		t.Errorf("January 2025 should serialize as 0-2025, got %s", jan.String())
	}
	dec := MonthKey{Year: 2030, Month: time.December}
	if dec.String() != "11-2030" {
		t.Errorf("December 2030 should serialize as 11-2030, got %s", dec.String())
	}

	parsed, err := ParseMonthKey("11-2030")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != dec {
		t.Errorf("round trip mismatch: %+v", parsed)
	}

	if _, err := ParseMonthKey("12-2030"); err == nil {
		t.Error("month 12 is out of range in the zero-based wire format")
	}
	if _, err := ParseMonthKey("garbage"); err == nil {
		t.Error("expected error for malformed key")
	}
}

func TestMonthKeyAddClampsToRange(t *testing.T) {
	jan := MonthKey{Year: 2025, Month: time.January}
	if _, ok := jan.Add(-1); ok {
		t.Error("navigating before the start year should be rejected")
	}

	dec := MonthKey{Year: 2035, Month: time.December}
	if _, ok := dec.Add(1); ok {
		t.Error("navigating past the end year should be rejected")
	}

	next, ok := jan.Add(1)
	if !ok || next.Month != time.February || next.Year != 2025 {
		t.Errorf("expected February 2025, got %+v (ok=%v)", next, ok)
	}

	prev, ok := (MonthKey{Year: 2026, Month: time.January}).Add(-1)
	if !ok || prev.Month != time.December || prev.Year != 2025 {
		t.Errorf("expected December 2025, got %+v (ok=%v)", prev, ok)
	}
}

func TestMonthKeyClampToRange(t *testing.T) {
	early := MonthKey{Year: 2020, Month: time.June}.ClampToRange()
	if early.Year != 2025 || early.Month != time.January {
		t.Errorf("expected January 2025, got %+v", early)
	}

	late := MonthKey{Year: 2040, Month: time.June}.ClampToRange()
	if late.Year != 2035 || late.Month != time.December {
		t.Errorf("expected December 2035, got %+v", late)
	}

	in := MonthKey{Year: 2026, Month: time.June}
	if in.ClampToRange() != in {
		t.Errorf("in-range key should be unchanged")
	}
}
