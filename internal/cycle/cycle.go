// Package cycle validates menstrual-cycle log entries and derives aggregate
// health statistics from the raw history.
package cycle

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/constants"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/dateutil"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

// Validation is the outcome of checking a candidate start date against the
// plausible window after the previous log.
type Validation struct {
	IsValid bool
	MinDate string
	MaxDate string
	Message string
}

// ValidateNewLog checks that the candidate start date falls within
// [lastLog.StartDate+20d, lastLog.StartDate+40d] inclusive. With no prior
// log every date is valid. A failed validation must block the insert.
func ValidateNewLog(lastLog *models.CycleLog, candidateStartDate string) (Validation, error) {
	if lastLog == nil {
		return Validation{IsValid: true}, nil
	}

	last, err := dateutil.ParseDateKey(lastLog.StartDate)
	if err != nil {
		return Validation{}, fmt.Errorf("invalid last log start date: %w", err)
	}
	candidate, err := dateutil.ParseDateKey(candidateStartDate)
	if err != nil {
		return Validation{}, fmt.Errorf("invalid start date: %w", err)
	}

	minDate := last.AddDate(0, 0, constants.MinCycleGapDays)
	maxDate := last.AddDate(0, 0, constants.MaxCycleGapDays)
	valid := !candidate.Before(minDate) && !candidate.After(maxDate)

	v := Validation{
		IsValid: valid,
		MinDate: minDate.Format(constants.DateFormat),
		MaxDate: maxDate.Format(constants.DateFormat),
	}
	if valid {
		v.Message = fmt.Sprintf("Valid cycle window: %s - %s", v.MinDate, v.MaxDate)
	} else {
		v.Message = fmt.Sprintf("Next cycle must be between %d-%d days from your last log (%s - %s).",
			constants.MinCycleGapDays, constants.MaxCycleGapDays, v.MinDate, v.MaxDate)
	}
	return v, nil
}

// InsertLog adds the new log and re-sorts the collection by start date
// descending. Sort order is re-established on every insert or edit; it is
// never assumed from append order.
func InsertLog(logs []models.CycleLog, newLog models.CycleLog) []models.CycleLog {
	out := make([]models.CycleLog, 0, len(logs)+1)
	out = append(out, newLog)
	out = append(out, logs...)
	SortLogs(out)
	return out
}

// SortLogs orders logs by start date descending (latest first).
func SortLogs(logs []models.CycleLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].StartDate > logs[j].StartDate
	})
}

// IsPeriodDay reports whether the date falls within any log's half-open
// interval [start, start+duration).
func IsPeriodDay(logs []models.CycleLog, date time.Time) bool {
	for _, log := range logs {
		start, err := dateutil.ParseDateKey(log.StartDate)
		if err != nil {
			continue
		}
		diff := int(date.Sub(start).Hours() / 24)
		if diff >= 0 && diff < log.Duration {
			return true
		}
	}
	return false
}

// Report is the derived cycle-health summary.
type Report struct {
	AvgDuration float64
	AvgGap      int
	IsNormal    bool
	Reason      string
}

// ComputeReport derives average period duration, average cycle gap and a
// normal/irregular classification from the logs. With fewer than two logs
// the gap defaults to 28 days since no real average is computable.
func ComputeReport(logs []models.CycleLog) Report {
	if len(logs) == 0 {
		return Report{AvgGap: constants.DefaultAvgCycleLength}
	}

	sorted := make([]models.CycleLog, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDate < sorted[j].StartDate
	})

	totalDuration := 0
	for _, l := range sorted {
		totalDuration += l.Duration
	}
	avgDuration := float64(totalDuration) / float64(len(sorted))

	totalGap, gapCount := 0, 0
	for i := 1; i < len(sorted); i++ {
		prev, errA := dateutil.ParseDateKey(sorted[i-1].StartDate)
		next, errB := dateutil.ParseDateKey(sorted[i].StartDate)
		if errA != nil || errB != nil {
			continue
		}
		totalGap += int(next.Sub(prev).Hours() / 24)
		gapCount++
	}

	avgGap := float64(constants.DefaultAvgCycleLength)
	if gapCount > 0 {
		avgGap = float64(totalGap) / float64(gapCount)
	}

	// A single outlier period marks the duration irregular even when the
	// mean still lands in range; the average is kept for display only.
	durationNormal := true
	for _, l := range sorted {
		if l.Duration < constants.NormalDurationMinDays || l.Duration > constants.NormalDurationMaxDays {
			durationNormal = false
			break
		}
	}
	gapNormal := avgGap >= constants.NormalGapMinDays && avgGap <= constants.NormalGapMaxDays

	report := Report{
		AvgDuration: avgDuration,
		AvgGap:      int(math.Round(avgGap)),
		IsNormal:    durationNormal && gapNormal,
	}

	if report.IsNormal {
		report.Reason = "Your cycle metrics are within the healthy biological average range."
	} else {
		var reasons []string
		if !durationNormal {
			reasons = append(reasons, fmt.Sprintf("Period duration varies from average range (%d-%d days).",
				constants.NormalDurationMinDays, constants.NormalDurationMaxDays))
		}
		if !gapNormal {
			reasons = append(reasons, fmt.Sprintf("Cycle length varies from average range (%d-%d days).",
				constants.NormalGapMinDays, constants.NormalGapMaxDays))
		}
		report.Reason = strings.Join(reasons, " ")
	}
	return report
}

// NextPredictedDate projects the next cycle start from the most recent log
// and the average cycle length.
func NextPredictedDate(lastLog *models.CycleLog, avgLength int) (time.Time, error) {
	if lastLog == nil {
		return time.Time{}, fmt.Errorf("no cycle history")
	}
	start, err := dateutil.ParseDateKey(lastLog.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid last log start date: %w", err)
	}
	return start.AddDate(0, 0, avgLength), nil
}

// DaysUntil returns the whole days remaining until the predicted date,
// floored at zero once the prediction has passed.
func DaysUntil(predicted, now time.Time) int {
	remaining := int(math.Ceil(predicted.Sub(now).Hours() / 24))
	if remaining < 0 {
		return 0
	}
	return remaining
}
