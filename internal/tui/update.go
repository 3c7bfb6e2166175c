package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.SwitchView):
			if m.state == viewHabits {
				m.state = viewBadges
			} else {
				m.state = viewHabits
			}
			return m, nil
		}

		if m.state == viewHabits {
			return m.updateHabits(msg)
		}
	}
	return m, nil
}

func (m Model) updateHabits(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	habits := m.tracker.UserData().Habits

	switch {
	case key.Matches(msg, m.keys.PrevDay):
		if m.day > 1 {
			m.day--
		}

	case key.Matches(msg, m.keys.NextDay):
		if m.day < m.month.Days() {
			m.day++
		}

	case key.Matches(msg, m.keys.PrevHabit):
		if m.habitIdx > 0 {
			m.habitIdx--
		}

	case key.Matches(msg, m.keys.NextHabit):
		if m.habitIdx < len(habits)-1 {
			m.habitIdx++
		}

	case key.Matches(msg, m.keys.PrevMonth):
		if prev, ok := m.month.Add(-1); ok {
			m.month = prev
			m.clampDay()
		}

	case key.Matches(msg, m.keys.NextMonth):
		if next, ok := m.month.Add(1); ok {
			m.month = next
			m.clampDay()
		}

	case key.Matches(msg, m.keys.Toggle):
		if m.habitIdx < len(habits) {
			// Mutations persist immediately; a storage failure degrades
			// to in-memory state and is logged by the tracker.
			_ = m.tracker.ToggleDayCompletion(habits[m.habitIdx].ID, m.day, m.month)
		}
	}
	return m, nil
}

func (m *Model) clampDay() {
	if days := m.month.Days(); m.day > days {
		m.day = days
	}
}
