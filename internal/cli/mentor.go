package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/mentor"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/secrets"
)

type MentorCmd struct {
	Ask MentorAskCmd `cmd:"" help:"Ask the habit coach a question."`
	Key struct {
		Set    MentorKeySetCmd    `cmd:"" help:"Store the mentor API key in the OS keyring."`
		Status MentorKeyStatusCmd `cmd:"" help:"Check whether a mentor API key is stored."`
		Clear  MentorKeyClearCmd  `cmd:"" help:"Remove the mentor API key from the OS keyring."`
	} `cmd:"" help:"Manage the mentor API key."`
}

type MentorAskCmd struct {
	Message string `arg:"" help:"Your question for the coach."`
}

func (c *MentorAskCmd) Run(ctx *Context) error {
	name, err := ctx.RequireProfile()
	if err != nil {
		return err
	}

	coach := mentor.NewCoach(ctx.Adviser)
	fmt.Println(mentor.Greeting(name))

	reply, err := coach.Send(context.Background(), name, ctx.Tracker.UserData().Habits, c.Message)
	if err != nil {
		return err
	}
	fmt.Println(reply)
	return nil
}

type MentorKeySetCmd struct {
	Key string `arg:"" help:"API key to store."`
}

func (c *MentorKeySetCmd) Run(ctx *Context) error {
	if err := secrets.SetMentorKey(c.Key); err != nil {
		return err
	}
	fmt.Println("Mentor API key stored in OS keyring.")
	return nil
}

type MentorKeyStatusCmd struct{}

func (c *MentorKeyStatusCmd) Run(ctx *Context) error {
	_, err := secrets.GetMentorKey()
	if err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			fmt.Println("No mentor API key stored. Use 'supertracker mentor key set' to add one.")
			return nil
		}
		return err
	}
	fmt.Println("Mentor API key is stored in the OS keyring.")
	return nil
}

type MentorKeyClearCmd struct{}

func (c *MentorKeyClearCmd) Run(ctx *Context) error {
	if err := secrets.DeleteMentorKey(); err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			fmt.Println("No mentor API key stored.")
			return nil
		}
		return err
	}
	fmt.Println("Mentor API key removed from OS keyring.")
	return nil
}
