package tracker

import (
	"github.com/google/uuid"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/apperr"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/dateutil"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

// CalendarEntry returns the planner entry for the date key, or an empty
// entry when none exists yet. Entries materialize on first mutation.
func (t *Tracker) CalendarEntry(dateKey string) models.CalendarEntry {
	return t.data.CalendarData[dateKey]
}

// AddTodo appends a to-do to the date's entry, creating the entry lazily.
func (t *Tracker) AddTodo(dateKey, text string) (models.Todo, error) {
	if t.activeID == "" {
		return models.Todo{}, ErrNoActiveProfile
	}
	if _, err := dateutil.ParseDateKey(dateKey); err != nil {
		return models.Todo{}, apperr.Validation("invalid date %q (expected YYYY-MM-DD)", dateKey)
	}
	if text == "" {
		return models.Todo{}, apperr.Validation("to-do text cannot be empty")
	}

	todo := models.Todo{ID: uuid.New().String(), Text: text}
	entry := t.data.CalendarData[dateKey]
	entry.Todos = append(entry.Todos, todo)
	t.data.CalendarData[dateKey] = entry
	t.persistData()
	return todo, nil
}

// ToggleTodo flips the completed flag of the identified to-do.
func (t *Tracker) ToggleTodo(dateKey, todoID string) error {
	entry, ok := t.data.CalendarData[dateKey]
	if !ok {
		return apperr.NotFound("calendar entry", dateKey)
	}
	for i := range entry.Todos {
		if entry.Todos[i].ID == todoID {
			entry.Todos[i].Completed = !entry.Todos[i].Completed
			t.data.CalendarData[dateKey] = entry
			t.persistData()
			return nil
		}
	}
	return apperr.NotFound("to-do", todoID)
}

// DeleteTodo removes the identified to-do. The entry itself persists even
// when emptied.
func (t *Tracker) DeleteTodo(dateKey, todoID string) error {
	entry, ok := t.data.CalendarData[dateKey]
	if !ok {
		return apperr.NotFound("calendar entry", dateKey)
	}
	for i := range entry.Todos {
		if entry.Todos[i].ID == todoID {
			entry.Todos = append(entry.Todos[:i], entry.Todos[i+1:]...)
			t.data.CalendarData[dateKey] = entry
			t.persistData()
			return nil
		}
	}
	return apperr.NotFound("to-do", todoID)
}

// SetNote attaches a free-form note to the date, creating the entry
// lazily. An empty note clears it.
func (t *Tracker) SetNote(dateKey, note string) error {
	if t.activeID == "" {
		return ErrNoActiveProfile
	}
	if _, err := dateutil.ParseDateKey(dateKey); err != nil {
		return apperr.Validation("invalid date %q (expected YYYY-MM-DD)", dateKey)
	}
	entry := t.data.CalendarData[dateKey]
	entry.Note = note
	t.data.CalendarData[dateKey] = entry
	t.persistData()
	return nil
}

// ToggleImportant flips the date's important flag, creating the entry
// lazily.
func (t *Tracker) ToggleImportant(dateKey string) error {
	if t.activeID == "" {
		return ErrNoActiveProfile
	}
	if _, err := dateutil.ParseDateKey(dateKey); err != nil {
		return apperr.Validation("invalid date %q (expected YYYY-MM-DD)", dateKey)
	}
	entry := t.data.CalendarData[dateKey]
	entry.IsImportant = !entry.IsImportant
	t.data.CalendarData[dateKey] = entry
	t.persistData()
	return nil
}
