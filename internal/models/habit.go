package models

// Habit represents a recurring practice to track. Completions is keyed by
// the month-key wire string ("<month0>-<year>", e.g. "0-2025" for January
// 2025) and holds the completed day numbers for that month in ascending
// order. The map only ever grows; months are never pruned.
type Habit struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Completions map[string][]int `json:"completions"`
	Color       string           `json:"color"`
	WeekendsOff bool             `json:"weekendsOff"`
}

// TotalCompletions counts every marked day across all months.
func (h Habit) TotalCompletions() int {
	total := 0
	for _, days := range h.Completions {
		total += len(days)
	}
	return total
}

// HabitUpdate carries partial habit fields for a merge-style update.
type HabitUpdate struct {
	Name        *string
	Color       *string
	WeekendsOff *bool
}

// Apply merges the set fields of u into h.
func (u HabitUpdate) Apply(h *Habit) {
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.Color != nil {
		h.Color = *u.Color
	}
	if u.WeekendsOff != nil {
		h.WeekendsOff = *u.WeekendsOff
	}
}
