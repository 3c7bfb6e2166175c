package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	PrevDay    key.Binding
	NextDay    key.Binding
	PrevHabit  key.Binding
	NextHabit  key.Binding
	PrevMonth  key.Binding
	NextMonth  key.Binding
	Toggle     key.Binding
	SwitchView key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		PrevHabit: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous habit"),
		),
		NextHabit: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next habit"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("p", "["),
			key.WithHelp("p", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("n", "]"),
			key.WithHelp("n", "next month"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle day"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.NextMonth, k.SwitchView, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.PrevHabit, k.NextHabit},
		{k.PrevMonth, k.NextMonth, k.Toggle, k.SwitchView},
		{k.Help, k.Quit},
	}
}
