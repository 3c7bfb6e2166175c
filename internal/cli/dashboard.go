package cli

import (
	"fmt"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cycle"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/streak"
)

type DashboardCmd struct {
	Month string `arg:"" optional:"" help:"Month in YYYY-MM format (default: current month)."`
}

func (c *DashboardCmd) Run(ctx *Context) error {
	name, err := ctx.RequireProfile()
	if err != nil {
		return err
	}

	key, err := ParseMonth(c.Month)
	if err != nil {
		return err
	}

	data := ctx.Tracker.UserData()
	fmt.Printf("Dashboard for %s: %s %d\n\n", name, key.Month, key.Year)

	if len(data.Habits) == 0 {
		fmt.Println("No habits yet.")
	}
	globalMax, _ := streak.MaxAcrossHabits(data.Habits)
	for _, habit := range data.Habits {
		count := len(habit.Completions[key.String()])
		fmt.Printf("  %-24s %2d/%d days this month\n", habit.Name, count, key.Days())
	}
	fmt.Printf("\n  best streak across habits: %d days\n", globalMax)

	profile := ctx.Tracker.ActiveProfile()
	if profile != nil && profile.Gender == models.GenderFemale {
		report := cycle.ComputeReport(data.CycleData.Logs)
		status := "Irregular"
		if report.IsNormal {
			status = "Normal"
		}
		fmt.Printf("\n  cycle health: %s (avg duration %.1f days, avg gap %d days)\n",
			status, report.AvgDuration, report.AvgGap)
	}
	return nil
}
