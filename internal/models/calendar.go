package models

// Todo is a single to-do item attached to a calendar date.
type Todo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// CalendarEntry holds the planner state for one date. An entry with no todos
// and IsImportant false is equivalent to the entry being absent, but may
// still be persisted.
type CalendarEntry struct {
	Todos       []Todo `json:"todos"`
	IsImportant bool   `json:"isImportant"`
	Note        string `json:"note,omitempty"`
}

// Empty reports whether the entry carries no information.
func (e CalendarEntry) Empty() bool {
	return len(e.Todos) == 0 && !e.IsImportant && e.Note == ""
}

// CalendarData maps date keys (YYYY-MM-DD) to planner entries. Entries are
// created lazily on first interaction with a date and never auto-deleted.
type CalendarData map[string]CalendarEntry
