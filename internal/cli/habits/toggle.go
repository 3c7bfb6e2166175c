package habits

import (
	"fmt"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cli"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/constants"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/dateutil"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/streak"
)

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	habit := ctx.Tracker.FindHabitByName(c.Name)
	if habit == nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	dateKey, err := cli.ParseDate(c.Date)
	if err != nil {
		return err
	}
	t, _ := dateutil.ParseDateKey(dateKey)
	if !dateutil.InSupportedRange(t.Year()) {
		return fmt.Errorf("year %d is outside the supported range", t.Year())
	}

	key := dateutil.NewMonthKey(t)
	if err := ctx.Tracker.ToggleDayCompletion(habit.ID, t.Day(), key); err != nil {
		return err
	}

	if completed(ctx.Tracker.FindHabitByName(c.Name), key, t.Day()) {
		fmt.Printf("Marked %q done on %s\n", habit.Name, dateKey)
	} else {
		fmt.Printf("Unmarked %q on %s\n", habit.Name, dateKey)
	}
	return nil
}

func completed(habit *models.Habit, key dateutil.MonthKey, day int) bool {
	if habit == nil {
		return false
	}
	for _, d := range habit.Completions[key.String()] {
		if d == day {
			return true
		}
	}
	return false
}

type HabitStatsCmd struct {
	Name string `arg:"" optional:"" help:"Habit name (default: all habits)."`
}

func (c *HabitStatsCmd) Run(ctx *cli.Context) error {
	habits := ctx.Tracker.UserData().Habits
	if c.Name != "" {
		habit := ctx.Tracker.FindHabitByName(c.Name)
		if habit == nil {
			return fmt.Errorf("habit %q not found", c.Name)
		}
		habits = []models.Habit{*habit}
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		res := streak.Compute(habit)
		fmt.Printf("%s\n", habit.Name)
		fmt.Printf("  best streak:       %d days\n", res.MaxStreak)
		fmt.Printf("  total completions: %d\n", res.TotalCompletions)
		for year := constants.StartYear; year <= constants.EndYear; year++ {
			if count := res.CompletionsByYear[year]; count > 0 {
				fmt.Printf("  %d: %d completions\n", year, count)
			}
		}
	}
	return nil
}
