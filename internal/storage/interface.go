package storage

import "github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"

// Provider persists the three blobs the application owns: the profile list,
// the active profile id, and the per-profile UserData map. Every mutation is
// written through synchronously; a read after a write always observes that
// write. Missing state loads as empty rather than erroring, and corrupted
// state is treated as absent.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profiles
	GetProfiles() ([]models.Profile, error)
	SaveProfiles([]models.Profile) error

	// Active profile pointer. GetActiveProfileID returns "" when no profile
	// is active.
	GetActiveProfileID() (string, error)
	SetActiveProfileID(id string) error
	ClearActiveProfileID() error

	// Per-profile data. GetUserData reports exists=false when the profile
	// has never persisted data; callers seed defaults without saving them.
	GetUserData(profileID string) (data models.UserData, exists bool, err error)
	SaveUserData(profileID string, data models.UserData) error

	// Reset wipes every persisted profile, UserData blob and the active
	// pointer. Irreversible.
	Reset() error

	// Utils
	GetConfigPath() string
}
