package tracker

import (
	"time"

	"github.com/google/uuid"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/apperr"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/constants"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cycle"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/dateutil"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

// CycleLogs returns the logs sorted most recent first.
func (t *Tracker) CycleLogs() []models.CycleLog {
	return t.data.CycleData.Logs
}

// AddCycleLog records a new period start. The start must fall inside the
// plausible window relative to the most recent log; the window is only
// enforced here, not on later edits.
func (t *Tracker) AddCycleLog(startDate string, duration int) (models.CycleLog, error) {
	if t.activeID == "" {
		return models.CycleLog{}, ErrNoActiveProfile
	}
	if _, err := dateutil.ParseDateKey(startDate); err != nil {
		return models.CycleLog{}, apperr.Validation("invalid start date %q (expected YYYY-MM-DD)", startDate)
	}
	if duration < constants.MinCycleDurationDays || duration > constants.MaxCycleDurationDays {
		return models.CycleLog{}, apperr.Validation("duration must be between %d and %d days",
			constants.MinCycleDurationDays, constants.MaxCycleDurationDays)
	}
	v, err := cycle.ValidateNewLog(t.data.CycleData.LastLog(), startDate)
	if err != nil {
		return models.CycleLog{}, apperr.Validation("%s", err.Error())
	}
	if !v.IsValid {
		return models.CycleLog{}, apperr.Validation("%s", v.Message)
	}

	log := models.CycleLog{
		ID:        uuid.New().String(),
		StartDate: startDate,
		Duration:  duration,
	}
	t.data.CycleData.Logs = cycle.InsertLog(t.data.CycleData.Logs, log)
	t.persistData()
	return log, nil
}

// UpdateCycleLog changes an existing log's start date or duration and
// re-sorts the history. Edits bypass the spacing window.
func (t *Tracker) UpdateCycleLog(id, startDate string, duration int) error {
	if _, err := dateutil.ParseDateKey(startDate); err != nil {
		return apperr.Validation("invalid start date %q (expected YYYY-MM-DD)", startDate)
	}
	if duration < constants.MinCycleDurationDays || duration > constants.MaxCycleDurationDays {
		return apperr.Validation("duration must be between %d and %d days",
			constants.MinCycleDurationDays, constants.MaxCycleDurationDays)
	}
	for i := range t.data.CycleData.Logs {
		if t.data.CycleData.Logs[i].ID == id {
			t.data.CycleData.Logs[i].StartDate = startDate
			t.data.CycleData.Logs[i].Duration = duration
			cycle.SortLogs(t.data.CycleData.Logs)
			t.persistData()
			return nil
		}
	}
	return apperr.NotFound("cycle log", id)
}

// DeleteCycleLog removes a single log from the history.
func (t *Tracker) DeleteCycleLog(id string) error {
	for i := range t.data.CycleData.Logs {
		if t.data.CycleData.Logs[i].ID == id {
			t.data.CycleData.Logs = append(t.data.CycleData.Logs[:i], t.data.CycleData.Logs[i+1:]...)
			t.persistData()
			return nil
		}
	}
	return apperr.NotFound("cycle log", id)
}

// NextCyclePrediction projects the next period start from the most recent
// log and the stored average cycle length, along with the whole days
// remaining until it.
func (t *Tracker) NextCyclePrediction() (time.Time, int, error) {
	next, err := cycle.NextPredictedDate(t.data.CycleData.LastLog(), t.data.CycleData.AvgLength)
	if err != nil {
		return time.Time{}, 0, err
	}
	return next, cycle.DaysUntil(next, dateutil.Today()), nil
}

// ClearCycleHistory wipes all logs and restores the default average length.
func (t *Tracker) ClearCycleHistory() {
	t.data.CycleData = models.CycleData{
		Logs:      []models.CycleLog{},
		AvgLength: constants.DefaultAvgCycleLength,
	}
	t.persistData()
}
