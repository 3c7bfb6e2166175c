package storage

import (
	"path/filepath"
	"testing"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "supertracker.db"))
	if err := store.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteProfilesRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	profiles := []models.Profile{
		{ID: "p1", Name: "Asha", Age: 30, Gender: models.GenderFemale, Onboarded: true, ThemeColor: "#fb7185"},
		{ID: "p2", Name: "Sam", Age: 25, Gender: models.GenderMale, Onboarded: true},
	}
	if err := store.SaveProfiles(profiles); err != nil {
		t.Fatalf("save profiles: %v", err)
	}

	got, err := store.GetProfiles()
	if err != nil {
		t.Fatalf("get profiles: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(got))
	}
	// Creation order must survive the round trip.
	if got[0].ID != "p1" || got[1].ID != "p2" {
		t.Errorf("profile order lost: %v", got)
	}
	if got[0].ThemeColor != "#fb7185" {
		t.Errorf("theme color lost: %q", got[0].ThemeColor)
	}
	if got[1].ThemeColor != "" {
		t.Errorf("expected empty theme color, got %q", got[1].ThemeColor)
	}
}

func TestSQLiteActiveProfilePointer(t *testing.T) {
	store := newTestSQLiteStore(t)

	active, err := store.GetActiveProfileID()
	if err != nil {
		t.Fatal(err)
	}
	if active != "" {
		t.Errorf("expected no active profile initially, got %q", active)
	}

	if err := store.SetActiveProfileID("p1"); err != nil {
		t.Fatal(err)
	}
	active, _ = store.GetActiveProfileID()
	if active != "p1" {
		t.Errorf("expected p1, got %q", active)
	}

	if err := store.ClearActiveProfileID(); err != nil {
		t.Fatal(err)
	}
	active, _ = store.GetActiveProfileID()
	if active != "" {
		t.Errorf("expected cleared pointer, got %q", active)
	}
}

func TestSQLiteUserDataBlob(t *testing.T) {
	store := newTestSQLiteStore(t)

	data := models.DefaultUserData()
	data.Habits[0].Completions["0-2025"] = []int{1, 2, 3}
	if err := store.SaveUserData("p1", data); err != nil {
		t.Fatalf("save user data: %v", err)
	}

	got, exists, err := store.GetUserData("p1")
	if err != nil || !exists {
		t.Fatalf("expected data to exist: %v", err)
	}
	if len(got.Habits[0].Completions["0-2025"]) != 3 {
		t.Error("completions lost in the blob round trip")
	}

	// Saving again replaces the whole blob.
	data.Habits = data.Habits[:1]
	if err := store.SaveUserData("p1", data); err != nil {
		t.Fatal(err)
	}
	got, _, _ = store.GetUserData("p1")
	if len(got.Habits) != 1 {
		t.Errorf("expected blob replaced, got %d habits", len(got.Habits))
	}

	if _, exists, _ := store.GetUserData("ghost"); exists {
		t.Error("expected no data for unknown profile")
	}
}

func TestSQLiteCorruptBlobTreatedAsAbsent(t *testing.T) {
	store := newTestSQLiteStore(t)

	if _, err := store.GetDB().Exec(
		"INSERT INTO user_data (profile_id, data) VALUES (?, ?)", "p1", "{broken"); err != nil {
		t.Fatal(err)
	}

	_, exists, err := store.GetUserData("p1")
	if err != nil {
		t.Fatalf("corrupt blob should not error: %v", err)
	}
	if exists {
		t.Error("corrupt blob should be treated as absent")
	}
}

func TestSQLiteReset(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.SaveProfiles([]models.Profile{{ID: "p1", Name: "A", Gender: models.GenderOther}}); err != nil {
		t.Fatal(err)
	}
	if err := store.SetActiveProfileID("p1"); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveUserData("p1", models.DefaultUserData()); err != nil {
		t.Fatal(err)
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	profiles, _ := store.GetProfiles()
	active, _ := store.GetActiveProfileID()
	_, exists, _ := store.GetUserData("p1")
	if len(profiles) != 0 || active != "" || exists {
		t.Error("reset left state behind")
	}
}
