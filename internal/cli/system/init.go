package system

import (
	"fmt"
	"os"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing storage before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized supertracker storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		return fmt.Errorf("this erases ALL profiles and their data; re-run with --yes to confirm")
	}
	if err := ctx.Tracker.ResetAll(); err != nil {
		return err
	}
	fmt.Println("All profiles and data erased.")
	return nil
}
