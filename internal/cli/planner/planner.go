package planner

import (
	"fmt"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cli"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	dateKey, err := cli.ParseDate(c.Date)
	if err != nil {
		return err
	}

	entry := ctx.Tracker.CalendarEntry(dateKey)
	if entry.Empty() {
		fmt.Printf("Nothing planned for %s.\n", dateKey)
		return nil
	}

	header := dateKey
	if entry.IsImportant {
		header += " [important]"
	}
	fmt.Println(header)

	for _, todo := range entry.Todos {
		mark := "[ ]"
		if todo.Completed {
			mark = "[x]"
		}
		fmt.Printf("  %s %s (ID: %s)\n", mark, todo.Text, todo.ID)
	}
	if entry.Note != "" {
		fmt.Printf("  note: %s\n", entry.Note)
	}
	return nil
}

type TodoAddCmd struct {
	Text string `arg:"" help:"To-do text."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *TodoAddCmd) Run(ctx *cli.Context) error {
	dateKey, err := cli.ParseDate(c.Date)
	if err != nil {
		return err
	}

	todo, err := ctx.Tracker.AddTodo(dateKey, c.Text)
	if err != nil {
		return err
	}
	fmt.Printf("Added to-do for %s: %s (ID: %s)\n", dateKey, todo.Text, todo.ID)
	return nil
}

type TodoToggleCmd struct {
	ID   string `arg:"" help:"To-do ID."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *TodoToggleCmd) Run(ctx *cli.Context) error {
	dateKey, err := cli.ParseDate(c.Date)
	if err != nil {
		return err
	}
	if err := ctx.Tracker.ToggleTodo(dateKey, c.ID); err != nil {
		return err
	}
	fmt.Println("To-do toggled.")
	return nil
}

type TodoDeleteCmd struct {
	ID   string `arg:"" help:"To-do ID."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *TodoDeleteCmd) Run(ctx *cli.Context) error {
	dateKey, err := cli.ParseDate(c.Date)
	if err != nil {
		return err
	}
	if err := ctx.Tracker.DeleteTodo(dateKey, c.ID); err != nil {
		return err
	}
	fmt.Println("To-do deleted.")
	return nil
}

type NoteCmd struct {
	Text string `arg:"" help:"Note text. Pass an empty string to clear."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *NoteCmd) Run(ctx *cli.Context) error {
	dateKey, err := cli.ParseDate(c.Date)
	if err != nil {
		return err
	}
	if err := ctx.Tracker.SetNote(dateKey, c.Text); err != nil {
		return err
	}
	if c.Text == "" {
		fmt.Printf("Cleared note for %s.\n", dateKey)
	} else {
		fmt.Printf("Saved note for %s.\n", dateKey)
	}
	return nil
}

type ImportantCmd struct {
	Date string `arg:"" optional:"" help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *ImportantCmd) Run(ctx *cli.Context) error {
	dateKey, err := cli.ParseDate(c.Date)
	if err != nil {
		return err
	}
	if err := ctx.Tracker.ToggleImportant(dateKey); err != nil {
		return err
	}
	if ctx.Tracker.CalendarEntry(dateKey).IsImportant {
		fmt.Printf("%s marked important.\n", dateKey)
	} else {
		fmt.Printf("%s unmarked.\n", dateKey)
	}
	return nil
}
