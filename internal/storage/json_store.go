package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/apperr"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/logger"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

// Store is the on-disk JSON document: all three blobs serialized together so
// every save replaces the full state atomically from the caller's view.
type Store struct {
	Version         int                        `json:"version"`
	Profiles        []models.Profile           `json:"profiles"`
	ActiveProfileID string                     `json:"activeProfileId"`
	Data            map[string]models.UserData `json:"data"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = emptyStore()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run without init: start from empty in-memory state and
			// materialize the file on the first mutation.
			s.store = emptyStore()
			return nil
		}
		return fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// Corrupted state is treated as absent rather than aborting startup.
		logger.Warn("Discarding corrupted storage file", "path", s.path, "error", err)
		s.store = emptyStore()
		return nil
	}

	if s.store.Data == nil {
		s.store.Data = make(map[string]models.UserData)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func emptyStore() *Store {
	return &Store{
		Version: 1,
		Data:    make(map[string]models.UserData),
	}
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetProfiles() ([]models.Profile, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	profiles := make([]models.Profile, len(s.store.Profiles))
	copy(profiles, s.store.Profiles)
	return profiles, nil
}

func (s *JSONStore) SaveProfiles(profiles []models.Profile) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Profiles = profiles
	return s.save()
}

func (s *JSONStore) GetActiveProfileID() (string, error) {
	if err := s.loaded(); err != nil {
		return "", err
	}
	return s.store.ActiveProfileID, nil
}

func (s *JSONStore) SetActiveProfileID(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.ActiveProfileID = id
	return s.save()
}

func (s *JSONStore) ClearActiveProfileID() error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.ActiveProfileID = ""
	return s.save()
}

func (s *JSONStore) GetUserData(profileID string) (models.UserData, bool, error) {
	if err := s.loaded(); err != nil {
		return models.UserData{}, false, err
	}
	data, ok := s.store.Data[profileID]
	if !ok {
		return models.UserData{}, false, nil
	}
	data.Normalize()
	return data, true, nil
}

func (s *JSONStore) SaveUserData(profileID string, data models.UserData) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Data[profileID] = data
	return s.save()
}

func (s *JSONStore) Reset() error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store = emptyStore()
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
