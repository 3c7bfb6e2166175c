// Package tracker owns the profile list, the active-profile pointer and the
// active profile's UserData. All mutations go through here: each one updates
// the in-memory state and writes through to storage synchronously. When
// storage becomes unavailable the session keeps running on the in-memory
// state instead of crashing.
package tracker

import (
	"errors"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/logger"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/storage"
)

// ErrNoActiveProfile is returned by mutations that need an active profile
// when none is selected; the caller should route the user to onboarding.
var ErrNoActiveProfile = errors.New("no active profile; create or switch to one first")

type Tracker struct {
	store storage.Provider

	profiles []models.Profile
	activeID string
	data     models.UserData
}

func New(store storage.Provider) *Tracker {
	return &Tracker{store: store}
}

// Load reads all persisted state. A stale active pointer (referencing no
// stored profile) falls back to the first profile, or to none at all when
// the profile list is empty.
func (t *Tracker) Load() error {
	profiles, err := t.store.GetProfiles()
	if err != nil {
		return err
	}
	t.profiles = profiles

	activeID, err := t.store.GetActiveProfileID()
	if err != nil {
		return err
	}

	if t.findProfile(activeID) == nil {
		activeID = ""
		if len(t.profiles) > 0 {
			activeID = t.profiles[0].ID
		}
	}
	t.activeID = activeID

	return t.loadUserData()
}

// loadUserData pulls the active profile's data, seeding defaults in memory
// when none was ever persisted. The defaults are not written back until the
// first mutation.
func (t *Tracker) loadUserData() error {
	if t.activeID == "" {
		t.data = models.UserData{}
		return nil
	}
	data, exists, err := t.store.GetUserData(t.activeID)
	if err != nil {
		return err
	}
	if !exists {
		data = models.DefaultUserData()
	}
	t.data = data
	return nil
}

// Profiles returns the stored profile list in creation order.
func (t *Tracker) Profiles() []models.Profile {
	return t.profiles
}

// ActiveProfile returns the active profile, or nil when none is selected.
func (t *Tracker) ActiveProfile() *models.Profile {
	return t.findProfile(t.activeID)
}

// UserData returns the active profile's data.
func (t *Tracker) UserData() models.UserData {
	return t.data
}

// ThemeColor returns the active profile's accent color, or the app default.
func (t *Tracker) ThemeColor() string {
	if p := t.ActiveProfile(); p != nil && p.ThemeColor != "" {
		return p.ThemeColor
	}
	return defaultThemeColor
}

func (t *Tracker) findProfile(id string) *models.Profile {
	if id == "" {
		return nil
	}
	for i := range t.profiles {
		if t.profiles[i].ID == id {
			return &t.profiles[i]
		}
	}
	return nil
}

// persistProfiles writes the profile list and active pointer through to
// storage. Failures are logged and swallowed so the session degrades to
// in-memory operation.
func (t *Tracker) persistProfiles() {
	if err := t.store.SaveProfiles(t.profiles); err != nil {
		logger.Warn("Failed to persist profiles; continuing in memory", "error", err)
		return
	}
	if t.activeID == "" {
		if err := t.store.ClearActiveProfileID(); err != nil {
			logger.Warn("Failed to persist active profile pointer", "error", err)
		}
		return
	}
	if err := t.store.SetActiveProfileID(t.activeID); err != nil {
		logger.Warn("Failed to persist active profile pointer", "error", err)
	}
}

// persistData writes the active profile's UserData blob through to storage.
func (t *Tracker) persistData() {
	if t.activeID == "" {
		return
	}
	if err := t.store.SaveUserData(t.activeID, t.data); err != nil {
		logger.Warn("Failed to persist user data; continuing in memory", "error", err)
	}
}
