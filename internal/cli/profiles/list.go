package profiles

import (
	"fmt"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cli"
)

type ProfileListCmd struct{}

func (c *ProfileListCmd) Run(ctx *cli.Context) error {
	profiles := ctx.Tracker.Profiles()
	if len(profiles) == 0 {
		fmt.Println("No profiles found. Run 'supertracker profile create' to get started.")
		return nil
	}

	active := ""
	if p := ctx.Tracker.ActiveProfile(); p != nil {
		active = p.ID
	}

	for _, p := range profiles {
		marker := " "
		if p.ID == active {
			marker = "*"
		}
		fmt.Printf("%s %s (age %d, %s) [%s]\n", marker, p.Name, p.Age, p.Gender, p.ID)
	}
	return nil
}

type ProfileSwitchCmd struct {
	ID string `arg:"" help:"Profile ID to activate."`
}

func (c *ProfileSwitchCmd) Run(ctx *cli.Context) error {
	if err := ctx.Tracker.SetActiveProfile(c.ID); err != nil {
		return err
	}
	if p := ctx.Tracker.ActiveProfile(); p != nil && p.ID == c.ID {
		fmt.Printf("Switched to profile: %s\n", p.Name)
	} else {
		fmt.Printf("Profile %s not found; active profile unchanged.\n", c.ID)
	}
	return nil
}
