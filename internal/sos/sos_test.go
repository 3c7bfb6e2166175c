package sos

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fixedLocator struct {
	lat, lon float64
	err      error
}

func (f fixedLocator) Locate(context.Context) (float64, float64, error) {
	return f.lat, f.lon, f.err
}

type captureSharer struct {
	title string
	text  string
	err   error
}

func (c *captureSharer) Share(title, text string) error {
	c.title = title
	c.text = text
	return c.err
}

func TestBuildMessageWithLocation(t *testing.T) {
	msg := BuildMessage(context.Background(), fixedLocator{lat: 17.385, lon: 78.4867})

	if !strings.Contains(msg, "EMERGENCY SOS") {
		t.Error("expected alert prefix")
	}
	if !strings.Contains(msg, "https://www.google.com/maps?q=17.385000,78.486700") {
		t.Errorf("expected maps link, got %q", msg)
	}
}

func TestBuildMessageDegradesWithoutLocation(t *testing.T) {
	for _, loc := range []Locator{nil, fixedLocator{err: errors.New("no fix")}} {
		msg := BuildMessage(context.Background(), loc)
		if !strings.Contains(msg, "Location could not be retrieved automatically") {
			t.Errorf("expected degraded message, got %q", msg)
		}
		if strings.Contains(msg, "maps") {
			t.Errorf("degraded message must not carry a maps link: %q", msg)
		}
	}
}

func TestSendUsesSharer(t *testing.T) {
	sharer := &captureSharer{}
	msg, err := Send(context.Background(), nil, sharer)
	if err != nil {
		t.Fatal(err)
	}
	if sharer.title != "SOS DANGER ALERT" {
		t.Errorf("unexpected title: %q", sharer.title)
	}
	if sharer.text != msg {
		t.Error("shared text should match the returned message")
	}
}

func TestSendReturnsMessageOnShareFailure(t *testing.T) {
	sharer := &captureSharer{err: errors.New("no clipboard")}
	msg, err := Send(context.Background(), nil, sharer)
	if err == nil {
		t.Error("expected share error to surface")
	}
	if !strings.Contains(msg, "EMERGENCY SOS") {
		t.Error("message should still be returned so the caller can print it")
	}
}

func TestContactTables(t *testing.T) {
	if len(Contacts) != 3 {
		t.Errorf("expected 3 primary contacts, got %d", len(Contacts))
	}
	if len(WomenHelplines) != 2 {
		t.Errorf("expected 2 specialized helplines, got %d", len(WomenHelplines))
	}
}
