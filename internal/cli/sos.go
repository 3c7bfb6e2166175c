package cli

import (
	"context"
	"fmt"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/sos"
)

type SosCmd struct {
	Send     SosSendCmd     `cmd:"" help:"Build the SOS alert and copy it to the clipboard." default:"1"`
	Contacts SosContactsCmd `cmd:"" help:"List emergency contact numbers."`
}

type SosSendCmd struct {
	Print bool `help:"Print the alert instead of copying it to the clipboard."`
}

func (c *SosSendCmd) Run(ctx *Context) error {
	if c.Print {
		fmt.Println(sos.BuildMessage(context.Background(), ctx.Locator))
		return nil
	}

	msg, err := sos.Send(context.Background(), ctx.Locator, nil)
	if err != nil {
		// Clipboard failed (headless session); the alert still matters.
		fmt.Println(msg)
		return nil
	}
	fmt.Println("SOS message copied to clipboard. Paste it to your emergency contact.")
	return nil
}

type SosContactsCmd struct{}

func (c *SosContactsCmd) Run(ctx *Context) error {
	fmt.Println("Primary emergency services:")
	for _, contact := range sos.Contacts {
		fmt.Printf("  %-20s %s\n", contact.Name, contact.Number)
	}

	p := ctx.Tracker.ActiveProfile()
	if p != nil && p.Gender == models.GenderFemale {
		fmt.Println("\nSpecialized protection units:")
		for _, contact := range sos.WomenHelplines {
			fmt.Printf("  %-22s %s\n", contact.Name, contact.Number)
		}
	}
	return nil
}
