package profiles

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cli"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

type ProfileCreateCmd struct {
	Name   string `arg:"" optional:"" help:"Profile name. Omit to run the interactive onboarding form."`
	Age    int    `short:"a" help:"Age in years." default:"0"`
	Gender string `short:"g" help:"Gender (male|female|other)." default:""`
}

func (c *ProfileCreateCmd) Run(ctx *cli.Context) error {
	name, age, gender := c.Name, c.Age, models.Gender(c.Gender)

	if name == "" {
		var err error
		name, age, gender, err = runOnboardingForm()
		if err != nil {
			return err
		}
	}
	if gender == "" {
		gender = models.GenderOther
	}

	profile, err := ctx.Tracker.CreateProfile(name, age, gender)
	if err != nil {
		return err
	}

	fmt.Printf("Created profile: %s (ID: %s)\n", profile.Name, profile.ID)
	fmt.Println("Profile is now active. Two starter habits have been set up for you.")
	return nil
}

func runOnboardingForm() (string, int, models.Gender, error) {
	var (
		name   string
		ageStr string
		gender string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What's your name?").
				Value(&name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("How old are you?").
				Value(&ageStr).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 {
						return fmt.Errorf("enter a valid age")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Gender").
				Options(
					huh.NewOption("Female", "female"),
					huh.NewOption("Male", "male"),
					huh.NewOption("Other", "other"),
				).
				Value(&gender),
		),
	)

	if err := form.Run(); err != nil {
		return "", 0, "", fmt.Errorf("onboarding form error: %w", err)
	}

	age := 0
	if ageStr != "" {
		age, _ = strconv.Atoi(ageStr)
	}
	return name, age, models.Gender(gender), nil
}
