package tracker

import (
	"sort"

	"github.com/google/uuid"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/apperr"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/dateutil"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

// AddHabit creates a habit for the active profile. An empty color inherits
// the profile's theme color.
func (t *Tracker) AddHabit(name, color string) (models.Habit, error) {
	if t.activeID == "" {
		return models.Habit{}, ErrNoActiveProfile
	}
	if name == "" {
		return models.Habit{}, apperr.Validation("habit name cannot be empty")
	}
	if color == "" {
		color = t.ThemeColor()
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Completions: map[string][]int{},
		Color:       color,
	}
	t.data.Habits = append(t.data.Habits, habit)
	t.persistData()
	return habit, nil
}

// FindHabit returns the habit with the given id, or nil.
func (t *Tracker) FindHabit(id string) *models.Habit {
	for i := range t.data.Habits {
		if t.data.Habits[i].ID == id {
			return &t.data.Habits[i]
		}
	}
	return nil
}

// FindHabitByName returns the first habit with the given name, or nil.
func (t *Tracker) FindHabitByName(name string) *models.Habit {
	for i := range t.data.Habits {
		if t.data.Habits[i].Name == name {
			return &t.data.Habits[i]
		}
	}
	return nil
}

// UpdateHabit merges partial fields into the matching habit.
func (t *Tracker) UpdateHabit(id string, update models.HabitUpdate) error {
	h := t.FindHabit(id)
	if h == nil {
		return apperr.NotFound("habit", id)
	}
	update.Apply(h)
	t.persistData()
	return nil
}

// DeleteHabit removes the habit and its full completion history.
func (t *Tracker) DeleteHabit(id string) error {
	for i := range t.data.Habits {
		if t.data.Habits[i].ID == id {
			t.data.Habits = append(t.data.Habits[:i], t.data.Habits[i+1:]...)
			t.persistData()
			return nil
		}
	}
	return apperr.NotFound("habit", id)
}

// ToggleDayCompletion flips membership of day in the habit's completion set
// for the keyed month. Inserts keep the set in ascending order; toggling the
// same day twice restores the prior state. Day bounds are the caller's
// contract; no check against the month's length happens here.
func (t *Tracker) ToggleDayCompletion(habitID string, day int, key dateutil.MonthKey) error {
	h := t.FindHabit(habitID)
	if h == nil {
		return apperr.NotFound("habit", habitID)
	}

	k := key.String()
	current := h.Completions[k]
	for i, d := range current {
		if d == day {
			h.Completions[k] = append(current[:i], current[i+1:]...)
			t.persistData()
			return nil
		}
	}

	next := append(append([]int{}, current...), day)
	sort.Ints(next)
	h.Completions[k] = next
	t.persistData()
	return nil
}
