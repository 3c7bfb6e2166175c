package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/dateutil"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/tracker"
)

type viewState int

const (
	viewHabits viewState = iota
	viewBadges
)

type Model struct {
	tracker  *tracker.Tracker
	state    viewState
	keys     KeyMap
	help     help.Model
	month    dateutil.MonthKey
	habitIdx int
	day      int
	quitting bool
	width    int
	height   int
}

func NewModel(t *tracker.Tracker) Model {
	now := time.Now()
	return Model{
		tracker: t,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		month:   dateutil.MonthKey{Year: now.Year(), Month: now.Month()}.ClampToRange(),
		day:     now.Day(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
