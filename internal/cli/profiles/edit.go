package profiles

import (
	"fmt"
	"strings"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cli"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/constants"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

type ProfileEditCmd struct {
	ID     string `arg:"" optional:"" help:"Profile ID (default: active profile)."`
	Name   string `help:"New name."`
	Age    int    `help:"New age." default:"-1"`
	Gender string `help:"New gender (male|female|other)."`
}

func (c *ProfileEditCmd) Run(ctx *cli.Context) error {
	id := c.ID
	if id == "" {
		p := ctx.Tracker.ActiveProfile()
		if p == nil {
			return fmt.Errorf("no active profile to edit")
		}
		id = p.ID
	}

	var update models.ProfileUpdate
	if c.Name != "" {
		update.Name = &c.Name
	}
	if c.Age >= 0 {
		update.Age = &c.Age
	}
	if c.Gender != "" {
		g := models.Gender(c.Gender)
		if !g.Valid() {
			return fmt.Errorf("invalid gender %q (expected male, female or other)", c.Gender)
		}
		update.Gender = &g
	}

	if err := ctx.Tracker.UpdateProfile(id, update); err != nil {
		return err
	}
	fmt.Println("Profile updated.")
	return nil
}

type ProfileThemeCmd struct {
	Color string `arg:"" optional:"" help:"Theme color name or hex value. Omit to list the palette."`
}

func (c *ProfileThemeCmd) Run(ctx *cli.Context) error {
	p := ctx.Tracker.ActiveProfile()
	if p == nil {
		return fmt.Errorf("no active profile; run 'supertracker profile create' first")
	}

	if c.Color == "" {
		fmt.Println("Available theme colors:")
		for _, tc := range constants.ThemeColors {
			marker := " "
			if tc.Hex == ctx.Tracker.ThemeColor() {
				marker = "*"
			}
			fmt.Printf("%s %-14s %s\n", marker, tc.Name, tc.Hex)
		}
		return nil
	}

	hex := ""
	for _, tc := range constants.ThemeColors {
		if strings.EqualFold(tc.Name, c.Color) || strings.EqualFold(tc.Hex, c.Color) {
			hex = tc.Hex
			break
		}
	}
	if hex == "" {
		return fmt.Errorf("unknown theme color %q; run 'supertracker profile theme' to list the palette", c.Color)
	}

	if err := ctx.Tracker.UpdateProfile(p.ID, models.ProfileUpdate{ThemeColor: &hex}); err != nil {
		return err
	}
	fmt.Printf("Theme color set to %s\n", hex)
	return nil
}
