package tracker

import (
	"github.com/google/uuid"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/apperr"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/constants"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/logger"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

const defaultThemeColor = constants.DefaultThemeColor

// CreateProfile onboards a new profile, makes it active and seeds its
// default UserData in memory. Female profiles default to the rose theme.
func (t *Tracker) CreateProfile(name string, age int, gender models.Gender) (models.Profile, error) {
	if name == "" {
		return models.Profile{}, apperr.Validation("profile name cannot be empty")
	}
	if !gender.Valid() {
		return models.Profile{}, apperr.Validation("invalid gender %q", gender)
	}

	theme := constants.DefaultThemeColor
	if gender == models.GenderFemale {
		theme = constants.FemaleThemeColor
	}

	profile := models.Profile{
		ID:         uuid.New().String(),
		Name:       name,
		Age:        age,
		Gender:     gender,
		Onboarded:  true,
		ThemeColor: theme,
	}

	t.profiles = append(t.profiles, profile)
	t.activeID = profile.ID
	t.data = models.DefaultUserData()
	t.persistProfiles()
	t.persistData()

	logger.Info("Created profile", "id", profile.ID, "name", profile.Name)
	return profile, nil
}

// SetActiveProfile switches the active pointer. An unknown id is a silent
// no-op so a stale reference never breaks the session.
func (t *Tracker) SetActiveProfile(id string) error {
	if t.findProfile(id) == nil {
		logger.Warn("Ignoring switch to unknown profile", "id", id)
		return nil
	}
	t.activeID = id
	if err := t.loadUserData(); err != nil {
		return err
	}
	t.persistProfiles()
	return nil
}

// ClearActiveProfile deselects the current profile without deleting it,
// used to present the switch/create flow.
func (t *Tracker) ClearActiveProfile() {
	t.activeID = ""
	t.data = models.UserData{}
	t.persistProfiles()
}

// UpdateProfile merges partial fields into the matching profile.
func (t *Tracker) UpdateProfile(id string, update models.ProfileUpdate) error {
	p := t.findProfile(id)
	if p == nil {
		return apperr.NotFound("profile", id)
	}
	update.Apply(p)
	t.persistProfiles()
	return nil
}

// ResetAll irreversibly wipes every profile, all per-profile data and the
// active pointer.
func (t *Tracker) ResetAll() error {
	if err := t.store.Reset(); err != nil {
		return err
	}
	t.profiles = nil
	t.activeID = ""
	t.data = models.UserData{}
	logger.Info("Performed master reset")
	return nil
}
