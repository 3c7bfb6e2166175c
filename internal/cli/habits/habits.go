package habits

import (
	"fmt"
	"strconv"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cli"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/streak"
)

type HabitAddCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Color string `short:"c" help:"Hex color (default: profile theme color)." default:""`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if existing := ctx.Tracker.FindHabitByName(c.Name); existing != nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit, err := ctx.Tracker.AddHabit(c.Name, c.Color)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits := ctx.Tracker.UserData().Habits
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		res := streak.Compute(habit)
		weekends := ""
		if habit.WeekendsOff {
			weekends = " [weekends off]"
		}
		fmt.Printf("%s%s\n", habit.Name, weekends)
		fmt.Printf("  streak: %d  total: %d  (ID: %s)\n", res.MaxStreak, res.TotalCompletions, habit.ID)
	}
	return nil
}

type HabitEditCmd struct {
	ID          string `arg:"" help:"Habit ID."`
	Name        string `help:"New name."`
	Color       string `help:"New hex color."`
	WeekendsOff string `help:"Treat weekends as rest days (true|false)."`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	var update models.HabitUpdate
	if c.Name != "" {
		update.Name = &c.Name
	}
	if c.Color != "" {
		update.Color = &c.Color
	}
	if c.WeekendsOff != "" {
		v, err := strconv.ParseBool(c.WeekendsOff)
		if err != nil {
			return fmt.Errorf("invalid --weekends-off value %q (expected true or false)", c.WeekendsOff)
		}
		update.WeekendsOff = &v
	}

	if err := ctx.Tracker.UpdateHabit(c.ID, update); err != nil {
		return err
	}
	fmt.Println("Habit updated.")
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Tracker.DeleteHabit(c.ID); err != nil {
		return err
	}
	fmt.Println("Habit deleted.")
	return nil
}
