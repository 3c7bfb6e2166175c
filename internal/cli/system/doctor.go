package system

import (
	"errors"
	"fmt"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cli"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/secrets"
)

// DoctorCmd runs quick health checks against storage and the keyring.
type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Printf("Storage path: %s\n", ctx.Store.GetConfigPath())

	profiles := ctx.Tracker.Profiles()
	fmt.Printf("Profiles: %d\n", len(profiles))
	if p := ctx.Tracker.ActiveProfile(); p != nil {
		fmt.Printf("Active profile: %s\n", p.Name)
	} else {
		fmt.Println("Active profile: none")
	}

	_, err := secrets.GetMentorKey()
	switch {
	case err == nil:
		fmt.Println("Mentor API key: stored")
	case errors.Is(err, secrets.ErrNotFound):
		fmt.Println("Mentor API key: not set")
	default:
		fmt.Println("OS keyring: unavailable")
	}
	return nil
}
