package badges

import (
	"testing"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

func habitWithRun(id string, days []int) models.Habit {
	return models.Habit{
		ID:          id,
		Name:        "Habit " + id,
		Completions: map[string][]int{"0-2025": days},
	}
}

func findBadge(badges []Badge, id string) *Badge {
	for i := range badges {
		if badges[i].ID == id {
			return &badges[i]
		}
	}
	return nil
}

func TestEvaluateStreakBadges(t *testing.T) {
	// A 10-day run: weekdays 6-10 and 13-17 plus the weekend 11-12.
	habits := []models.Habit{habitWithRun("a", []int{6, 7, 8, 9, 10, 11, 12, 13, 14, 15})}

	eval := Evaluate(habits)

	iron := findBadge(eval.Global, "streak-5")
	if iron == nil || !iron.Unlocked || iron.Progress != 100 {
		t.Errorf("expected streak-5 unlocked at 100%%, got %+v", iron)
	}

	silver := findBadge(eval.Global, "streak-10")
	if silver == nil || !silver.Unlocked {
		t.Errorf("expected streak-10 unlocked, got %+v", silver)
	}

	golden := findBadge(eval.Global, "streak-20")
	if golden == nil || golden.Unlocked {
		t.Errorf("expected streak-20 locked, got %+v", golden)
	}
	if golden.Progress != 50 {
		t.Errorf("expected streak-20 at 50%%, got %.1f", golden.Progress)
	}
	if golden.Current != 10 {
		t.Errorf("expected streak-20 current 10, got %d", golden.Current)
	}
}

func TestEvaluateProgressCapped(t *testing.T) {
	habits := []models.Habit{habitWithRun("a", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})}

	eval := Evaluate(habits)
	iron := findBadge(eval.Global, "streak-5")
	if iron.Progress != 100 {
		t.Errorf("expected progress capped at 100, got %.1f", iron.Progress)
	}
}

func TestEvaluateArchitect(t *testing.T) {
	var habits []models.Habit
	for _, id := range []string{"a", "b", "c", "d"} {
		habits = append(habits, habitWithRun(id, nil))
	}

	eval := Evaluate(habits)
	architect := findBadge(eval.Global, "architect")
	if architect.Unlocked {
		t.Errorf("expected architect locked at 4 habits, got %+v", architect)
	}
	if architect.Progress != 80 {
		t.Errorf("expected architect at 80%%, got %.1f", architect.Progress)
	}

	habits = append(habits, habitWithRun("e", nil))
	eval = Evaluate(habits)
	architect = findBadge(eval.Global, "architect")
	if !architect.Unlocked {
		t.Errorf("expected architect unlocked at 5 habits, got %+v", architect)
	}
}

func TestEvaluateSpecialists(t *testing.T) {
	habits := []models.Habit{
		habitWithRun("a", []int{6, 7, 8, 9, 10, 11, 12}),
		habitWithRun("b", []int{6, 7, 8}),
	}

	eval := Evaluate(habits)
	if len(eval.Specialists) != 2 {
		t.Fatalf("expected one specialist badge per habit, got %d", len(eval.Specialists))
	}

	a := findBadge(eval.Specialists, "habit-a")
	if a == nil || !a.Unlocked {
		t.Errorf("expected 7-day specialist unlocked, got %+v", a)
	}
	b := findBadge(eval.Specialists, "habit-b")
	if b == nil || b.Unlocked {
		t.Errorf("expected 3-day habit specialist locked, got %+v", b)
	}
}

// Evaluation is pure: running it twice over the same habits yields the same
// board, and adding completions never lowers progress.
func TestEvaluateIdempotentAndMonotonic(t *testing.T) {
	habits := []models.Habit{habitWithRun("a", []int{6, 7, 8, 9, 10})}

	first := Evaluate(habits)
	second := Evaluate(habits)
	for i := range first.Global {
		if first.Global[i] != second.Global[i] {
			t.Errorf("evaluation not idempotent: %+v vs %+v", first.Global[i], second.Global[i])
		}
	}

	habits[0].Completions["0-2025"] = append(habits[0].Completions["0-2025"], 13)
	grown := Evaluate(habits)
	for i := range first.Global {
		if grown.Global[i].Progress < first.Global[i].Progress {
			t.Errorf("progress regressed for %s: %.1f -> %.1f",
				first.Global[i].ID, first.Global[i].Progress, grown.Global[i].Progress)
		}
	}
}
