package models

import "github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/constants"

// UserData wraps all data owned by a single profile.
type UserData struct {
	Habits       []Habit      `json:"habits"`
	CalendarData CalendarData `json:"calendarData"`
	CycleData    CycleData    `json:"cycleData"`
}

// DefaultUserData returns the seed data a profile starts with: two starter
// habits, an empty planner and an empty cycle history. The result is not
// persisted until the first mutation.
func DefaultUserData() UserData {
	return UserData{
		Habits: []Habit{
			{ID: "1", Name: "Morning Meditation", Completions: map[string][]int{}, Color: "#A855F7"},
			{ID: "2", Name: "Read 20 Pages", Completions: map[string][]int{}, Color: "#8B5CF6"},
		},
		CalendarData: CalendarData{},
		CycleData:    CycleData{Logs: []CycleLog{}, AvgLength: constants.DefaultAvgCycleLength},
	}
}

// Normalize repairs nil maps and slices after deserialization so callers can
// mutate without nil checks.
func (d *UserData) Normalize() {
	if d.CalendarData == nil {
		d.CalendarData = CalendarData{}
	}
	for i := range d.Habits {
		if d.Habits[i].Completions == nil {
			d.Habits[i].Completions = map[string][]int{}
		}
	}
	if d.CycleData.Logs == nil {
		d.CycleData.Logs = []CycleLog{}
	}
	if d.CycleData.AvgLength <= 0 {
		d.CycleData.AvgLength = constants.DefaultAvgCycleLength
	}
}
