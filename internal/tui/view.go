package tui

import (
	"fmt"
	"strings"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/badges"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/dateutil"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/streak"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	name := "supertracker"
	if p := m.tracker.ActiveProfile(); p != nil {
		name = p.Name
	}

	habitsTab := inactiveTabStyle.Render("Habits")
	badgesTab := inactiveTabStyle.Render("Badges")
	if m.state == viewHabits {
		habitsTab = activeTabStyle.Render("Habits")
	} else {
		badgesTab = activeTabStyle.Render("Badges")
	}
	b.WriteString(fmt.Sprintf("%s  %s %s\n\n", name, habitsTab, badgesTab))

	switch m.state {
	case viewHabits:
		b.WriteString(m.habitsView())
	case viewBadges:
		b.WriteString(m.badgesView())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return docStyle.Render(b.String())
}

func (m Model) habitsView() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %d\n\n", m.month.Month, m.month.Year))

	habits := m.tracker.UserData().Habits
	if len(habits) == 0 {
		b.WriteString("No habits yet. Add one with 'supertracker habit add'.\n")
		return b.String()
	}

	for i, habit := range habits {
		label := habit.Name
		if habit.WeekendsOff {
			label += " (weekends off)"
		}
		if i == m.habitIdx {
			b.WriteString(selectedHabitStyle.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
		b.WriteString("  " + m.monthRow(habit.Completions[m.month.String()], i == m.habitIdx))
		b.WriteString("\n")
	}

	res := streak.Compute(habits[m.habitIdx])
	b.WriteString(fmt.Sprintf("\nbest streak: %d days  total: %d\n", res.MaxStreak, res.TotalCompletions))
	return b.String()
}

// monthRow renders one habit's month as a row of day cells.
func (m Model) monthRow(completions []int, selected bool) string {
	done := make(map[int]bool, len(completions))
	for _, d := range completions {
		done[d] = true
	}

	var cells []string
	for day := 1; day <= m.month.Days(); day++ {
		cell := "·"
		if done[day] {
			cell = completedDayStyle.Render("●")
		} else if dateutil.IsWeekend(m.month.Year, m.month.Month, day) {
			cell = weekendStyle.Render("·")
		}
		if selected && day == m.day {
			cell = cursorStyle.Render(cell)
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, " ")
}

func (m Model) badgesView() string {
	var b strings.Builder

	eval := badges.Evaluate(m.tracker.UserData().Habits)

	b.WriteString("Global badges\n")
	for _, badge := range eval.Global {
		b.WriteString("  " + renderBadge(badge) + "\n")
	}

	if len(eval.Specialists) > 0 {
		b.WriteString("\nSpecialist badges\n")
		for _, badge := range eval.Specialists {
			b.WriteString("  " + renderBadge(badge) + "\n")
		}
	}
	return b.String()
}

func renderBadge(b badges.Badge) string {
	line := fmt.Sprintf("%-22s %3.0f%% (%d/%d)", b.Name, b.Progress, b.Current, b.Requirement)
	if b.Unlocked {
		return unlockedBadgeStyle.Render("★ " + line)
	}
	return "  " + line
}
