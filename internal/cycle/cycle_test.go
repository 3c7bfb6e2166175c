package cycle

import (
	"strings"
	"testing"
	"time"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

func log(id, start string, duration int) models.CycleLog {
	return models.CycleLog{ID: id, StartDate: start, Duration: duration}
}

func TestValidateNewLogNoHistory(t *testing.T) {
	v, err := ValidateNewLog(nil, "2025-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsValid {
		t.Error("expected any date to be valid with no prior log")
	}
}

func TestValidateNewLogWindowBoundaries(t *testing.T) {
	last := log("l1", "2025-01-01", 5)

	tests := []struct {
		date  string
		valid bool
	}{
		{"2025-01-20", false}, // one day before the window opens
		{"2025-01-21", true},  // exactly +20 days
		{"2025-02-10", true},  // exactly +40 days
		{"2025-02-11", false}, // one day past the window
	}
	for _, tt := range tests {
		v, err := ValidateNewLog(&last, tt.date)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.date, err)
		}
		if v.IsValid != tt.valid {
			t.Errorf("%s: expected valid=%v, got %v (%s)", tt.date, tt.valid, v.IsValid, v.Message)
		}
	}
}

func TestValidateNewLogWindowBounds(t *testing.T) {
	last := log("l1", "2025-01-01", 5)
	v, _ := ValidateNewLog(&last, "2025-01-25")
	if v.MinDate != "2025-01-21" || v.MaxDate != "2025-02-10" {
		t.Errorf("unexpected window: %s - %s", v.MinDate, v.MaxDate)
	}
}

func TestInsertLogKeepsDescendingOrder(t *testing.T) {
	logs := []models.CycleLog{
		log("b", "2025-02-15", 5),
		log("a", "2025-01-18", 5),
	}

	logs = InsertLog(logs, log("c", "2025-02-01", 4))

	want := []string{"2025-02-15", "2025-02-01", "2025-01-18"}
	for i, w := range want {
		if logs[i].StartDate != w {
			t.Errorf("position %d: expected %s, got %s", i, w, logs[i].StartDate)
		}
	}
}

func TestIsPeriodDayHalfOpen(t *testing.T) {
	logs := []models.CycleLog{log("a", "2025-01-10", 5)}

	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad test date %s", s)
		}
		return d
	}

	if IsPeriodDay(logs, day("2025-01-09")) {
		t.Error("day before start should not be a period day")
	}
	if !IsPeriodDay(logs, day("2025-01-10")) {
		t.Error("start day should be a period day")
	}
	if !IsPeriodDay(logs, day("2025-01-14")) {
		t.Error("start+4 should be a period day for a 5-day period")
	}
	if IsPeriodDay(logs, day("2025-01-15")) {
		t.Error("start+duration should be past the period")
	}
}

func TestComputeReportEmpty(t *testing.T) {
	report := ComputeReport(nil)
	if report.AvgGap != 28 {
		t.Errorf("expected default gap 28 with no logs, got %d", report.AvgGap)
	}
}

func TestComputeReportSingleLogDefaultsGap(t *testing.T) {
	report := ComputeReport([]models.CycleLog{log("a", "2025-01-10", 5)})
	if report.AvgGap != 28 {
		t.Errorf("expected default gap 28 with one log, got %d", report.AvgGap)
	}
	if report.AvgDuration != 5 {
		t.Errorf("expected avg duration 5, got %.1f", report.AvgDuration)
	}
	if !report.IsNormal {
		t.Errorf("expected normal classification, got %+v", report)
	}
}

func TestComputeReportNormal(t *testing.T) {
	logs := []models.CycleLog{
		log("a", "2025-01-01", 5),
		log("b", "2025-01-29", 4), // 28-day gap
		log("c", "2025-02-26", 5), // 28-day gap
	}

	report := ComputeReport(logs)
	if report.AvgGap != 28 {
		t.Errorf("expected avg gap 28, got %d", report.AvgGap)
	}
	if !report.IsNormal {
		t.Errorf("expected normal classification: %+v", report)
	}
}

func TestComputeReportIrregularDuration(t *testing.T) {
	logs := []models.CycleLog{
		log("a", "2025-01-01", 10),
		log("b", "2025-01-29", 12),
	}

	report := ComputeReport(logs)
	if report.IsNormal {
		t.Errorf("expected irregular classification for 11-day avg duration: %+v", report)
	}
	if report.Reason == "" {
		t.Error("expected a reason for the irregular classification")
	}
}

// A single outlier duration is irregular even when the mean stays inside
// the healthy range.
func TestComputeReportOutlierDurationIrregular(t *testing.T) {
	logs := []models.CycleLog{
		log("a", "2025-01-01", 5),
		log("b", "2025-01-29", 9), // 28-day gap
		log("c", "2025-02-26", 5), // 28-day gap
	}

	report := ComputeReport(logs)
	if report.IsNormal {
		t.Errorf("expected irregular classification for a 9-day period: %+v", report)
	}
	if !strings.Contains(report.Reason, "duration") {
		t.Errorf("expected a duration-range reason, got %q", report.Reason)
	}
	if report.AvgGap != 28 {
		t.Errorf("expected avg gap 28, got %d", report.AvgGap)
	}
}

func TestComputeReportIrregularGap(t *testing.T) {
	logs := []models.CycleLog{
		log("a", "2025-01-01", 5),
		log("b", "2025-02-15", 5), // 45-day gap
	}

	report := ComputeReport(logs)
	if report.IsNormal {
		t.Errorf("expected irregular classification for 45-day gap: %+v", report)
	}
}

// Report order independence: the classification must not depend on the
// stored sort order.
func TestComputeReportOrderIndependent(t *testing.T) {
	asc := []models.CycleLog{
		log("a", "2025-01-01", 5),
		log("b", "2025-01-29", 4),
	}
	desc := []models.CycleLog{asc[1], asc[0]}

	if ComputeReport(asc) != ComputeReport(desc) {
		t.Error("report should be independent of input order")
	}
}

func TestNextPredictedDate(t *testing.T) {
	last := log("a", "2025-01-10", 5)
	next, err := NextPredictedDate(&last, 28)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := next.Format("2006-01-02"); got != "2025-02-07" {
		t.Errorf("expected 2025-02-07, got %s", got)
	}

	if _, err := NextPredictedDate(nil, 28); err == nil {
		t.Error("expected error with no history")
	}
}

func TestDaysUntilFloorsAtZero(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	past := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	if d := DaysUntil(past, now); d != 0 {
		t.Errorf("expected 0 for a passed prediction, got %d", d)
	}

	future := time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC)
	if d := DaysUntil(future, now); d != 7 {
		t.Errorf("expected 7 days, got %d", d)
	}
}
