package models

// CycleLog is a single recorded menstrual cycle: its start date and how many
// days it lasted.
type CycleLog struct {
	ID        string `json:"id"`
	StartDate string `json:"startDate"` // YYYY-MM-DD
	Duration  int    `json:"duration"`  // days
}

// CycleData holds a profile's full cycle history. Logs is kept sorted by
// StartDate descending (latest first) after every insert or edit.
type CycleData struct {
	Logs      []CycleLog `json:"logs"`
	AvgLength int        `json:"avgLength"`
}

// LastLog returns the most recent log, or nil when the history is empty.
func (d CycleData) LastLog() *CycleLog {
	if len(d.Logs) == 0 {
		return nil
	}
	return &d.Logs[0]
}
