package cli

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

type ShareCmd struct {
	Print bool `help:"Print the report instead of copying it to the clipboard."`
}

func (c *ShareCmd) Run(ctx *Context) error {
	name, err := ctx.RequireProfile()
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "REPORT: %s\n\n", name)
	for _, habit := range ctx.Tracker.UserData().Habits {
		fmt.Fprintf(&b, "- %s: %d completions\n", habit.Name, habit.TotalCompletions())
	}
	report := b.String()

	if c.Print {
		fmt.Print(report)
		return nil
	}
	if err := clipboard.WriteAll(report); err != nil {
		// No clipboard available (headless session); fall back to stdout.
		fmt.Print(report)
		return nil
	}
	fmt.Println("Progress report copied to clipboard.")
	return nil
}
