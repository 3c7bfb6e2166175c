package cli

import (
	"fmt"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/badges"
)

type BadgesCmd struct{}

func (c *BadgesCmd) Run(ctx *Context) error {
	if _, err := ctx.RequireProfile(); err != nil {
		return err
	}

	eval := badges.Evaluate(ctx.Tracker.UserData().Habits)

	fmt.Println("Global badges:")
	for _, b := range eval.Global {
		printBadge(b)
	}

	if len(eval.Specialists) > 0 {
		fmt.Println("\nSpecialist badges:")
		for _, b := range eval.Specialists {
			printBadge(b)
		}
	}
	return nil
}

func printBadge(b badges.Badge) {
	mark := " "
	if b.Unlocked {
		mark = "✓"
	}
	fmt.Printf("  %s %-22s %3.0f%%  (%d/%d)  %s\n",
		mark, b.Name, b.Progress, b.Current, b.Requirement, b.Description)
}
