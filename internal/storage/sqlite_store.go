package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/apperr"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/logger"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

// Profiles are stored relationally; each profile's UserData is a single JSON
// blob so a save replaces the whole blob in one statement.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS profiles (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	age INTEGER NOT NULL,
	gender TEXT NOT NULL,
	onboarded INTEGER NOT NULL DEFAULT 1,
	theme_color TEXT,
	position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS active_profile (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	profile_id TEXT
);

CREATE TABLE IF NOT EXISTS user_data (
	profile_id TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
	}
	s.db = db

	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	// Opening also creates the file, so Load doubles as first-run Init.
	return s.Init()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetProfiles() ([]models.Profile, error) {
	rows, err := s.db.Query(`
		SELECT id, name, age, gender, onboarded, theme_color
		FROM profiles ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		var gender string
		var onboarded bool
		var themeColor sql.NullString

		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &gender, &onboarded, &themeColor); err != nil {
			return nil, err
		}
		p.Gender = models.Gender(gender)
		p.Onboarded = onboarded
		if themeColor.Valid {
			p.ThemeColor = themeColor.String
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (s *SQLiteStore) SaveProfiles(profiles []models.Profile) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM profiles"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO profiles (id, name, age, gender, onboarded, theme_color, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range profiles {
		var themeColor sql.NullString
		if p.ThemeColor != "" {
			themeColor = sql.NullString{String: p.ThemeColor, Valid: true}
		}
		if _, err := stmt.Exec(p.ID, p.Name, p.Age, string(p.Gender), p.Onboarded, themeColor, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetActiveProfileID() (string, error) {
	var profileID sql.NullString
	err := s.db.QueryRow("SELECT profile_id FROM active_profile WHERE id = 1").Scan(&profileID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
	}
	if !profileID.Valid {
		return "", nil
	}
	return profileID.String, nil
}

func (s *SQLiteStore) SetActiveProfileID(id string) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO active_profile (id, profile_id) VALUES (1, ?)", id)
	return err
}

func (s *SQLiteStore) ClearActiveProfileID() error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO active_profile (id, profile_id) VALUES (1, NULL)")
	return err
}

func (s *SQLiteStore) GetUserData(profileID string) (models.UserData, bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT data FROM user_data WHERE profile_id = ?", profileID).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.UserData{}, false, nil
		}
		return models.UserData{}, false, fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
	}

	var data models.UserData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		// Corrupted blob is treated as absent rather than aborting.
		logger.Warn("Discarding corrupted user data blob", "profile", profileID, "error", err)
		return models.UserData{}, false, nil
	}
	data.Normalize()
	return data, true, nil
}

func (s *SQLiteStore) SaveUserData(profileID string, data models.UserData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize user data: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO user_data (profile_id, data) VALUES (?, ?)",
		profileID, string(raw))
	return err
}

func (s *SQLiteStore) Reset() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	for _, table := range []string{"user_data", "profiles", "active_profile"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
