package sos

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/logger"
)

// baseMessage is the danger alert sent whether or not a location fix is
// available.
const baseMessage = "EMERGENCY SOS: I am in danger! Please help me immediately!"

// Contact is one entry in the emergency dial list.
type Contact struct {
	Name   string
	Number string
}

// Contacts is the primary emergency dial list.
var Contacts = []Contact{
	{Name: "Police / Emergency", Number: "112"},
	{Name: "Ambulance", Number: "108"},
	{Name: "Fire Station", Number: "101"},
}

// WomenHelplines are the specialized protection units shown to female
// profiles.
var WomenHelplines = []Contact{
	{Name: "SHE Team (Telangana)", Number: "9490616555"},
	{Name: "Shakthi Team (Andhra)", Number: "181"},
}

// Locator resolves the device's current coordinates. Implementations may
// fail; the SOS message degrades gracefully when they do.
type Locator interface {
	Locate(ctx context.Context) (lat, lon float64, err error)
}

// Sharer delivers an SOS message to the user's contacts.
type Sharer interface {
	Share(title, text string) error
}

// BuildMessage assembles the alert text. With a locator it appends a maps
// link; on locator failure it notes the missing location instead.
func BuildMessage(ctx context.Context, loc Locator) string {
	msg := baseMessage
	if loc == nil {
		return msg + "\n(Location could not be retrieved automatically)"
	}
	lat, lon, err := loc.Locate(ctx)
	if err != nil {
		logger.Warn("could not get location", "error", err)
		return msg + "\n(Location could not be retrieved automatically)"
	}
	return msg + fmt.Sprintf("\n\nMy Live Location: https://www.google.com/maps?q=%f,%f", lat, lon)
}

// ClipboardSharer is the fallback delivery channel: the message lands on
// the system clipboard for the user to paste to a contact.
type ClipboardSharer struct{}

func (ClipboardSharer) Share(_, text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("unable to copy SOS message to clipboard: %w", err)
	}
	return nil
}

// Send builds the alert and hands it to the sharer. A nil sharer falls
// back to the clipboard.
func Send(ctx context.Context, loc Locator, sharer Sharer) (string, error) {
	msg := BuildMessage(ctx, loc)
	if sharer == nil {
		sharer = ClipboardSharer{}
	}
	if err := sharer.Share("SOS DANGER ALERT", msg); err != nil {
		return msg, err
	}
	return msg, nil
}
