package streak

import (
	"testing"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

// January 2025 starts on a Wednesday; weekends fall on 4/5, 11/12, 18/19
// and 25/26.
func habitWith(completions map[string][]int, weekendsOff bool) models.Habit {
	return models.Habit{
		ID:          "h1",
		Name:        "Test Habit",
		Completions: completions,
		WeekendsOff: weekendsOff,
	}
}

func TestComputeContiguousRun(t *testing.T) {
	habit := habitWith(map[string][]int{
		"0-2025": {6, 7, 8, 9, 10},
	}, false)

	res := Compute(habit)
	if res.MaxStreak != 5 {
		t.Errorf("expected max streak 5, got %d", res.MaxStreak)
	}
	if res.TotalCompletions != 5 {
		t.Errorf("expected 5 total completions, got %d", res.TotalCompletions)
	}
	if res.CompletionsByYear[2025] != 5 {
		t.Errorf("expected 5 completions in 2025, got %d", res.CompletionsByYear[2025])
	}
}

func TestComputeWeekendsOffBridgesWeekend(t *testing.T) {
	completions := map[string][]int{
		"0-2025": {6, 7, 8, 9, 10, 13, 14, 15, 16, 17},
	}

	withRest := Compute(habitWith(completions, true))
	if withRest.MaxStreak != 10 {
		t.Errorf("expected weekends-off streak to bridge the weekend (10), got %d", withRest.MaxStreak)
	}

	withoutRest := Compute(habitWith(completions, false))
	if withoutRest.MaxStreak != 5 {
		t.Errorf("expected streak to reset over the missed weekend (5), got %d", withoutRest.MaxStreak)
	}
}

func TestComputeCompletedWeekendStillCounts(t *testing.T) {
	habit := habitWith(map[string][]int{
		"0-2025": {6, 7, 8, 9, 10, 11, 13, 14, 15, 16, 17},
	}, true)

	res := Compute(habit)
	if res.MaxStreak != 11 {
		t.Errorf("expected completed Saturday to extend the streak (11), got %d", res.MaxStreak)
	}
}

func TestComputeWeekdayMissResets(t *testing.T) {
	habit := habitWith(map[string][]int{
		"0-2025": {6, 7, 9, 10},
	}, false)

	res := Compute(habit)
	if res.MaxStreak != 2 {
		t.Errorf("expected max streak 2 after a weekday miss, got %d", res.MaxStreak)
	}
}

func TestComputeStreakSpansMonths(t *testing.T) {
	habit := habitWith(map[string][]int{
		"0-2025": {30, 31},
		"1-2025": {1},
	}, false)

	res := Compute(habit)
	if res.MaxStreak != 3 {
		t.Errorf("expected streak to span the month boundary (3), got %d", res.MaxStreak)
	}
}

func TestComputeEmptyHabit(t *testing.T) {
	res := Compute(habitWith(nil, false))
	if res.MaxStreak != 0 || res.TotalCompletions != 0 {
		t.Errorf("expected zero stats for empty habit, got %+v", res)
	}
}

func TestMaxAcrossHabits(t *testing.T) {
	a := habitWith(map[string][]int{"0-2025": {6, 7, 8}}, false)
	a.ID = "a"
	b := habitWith(map[string][]int{"0-2025": {6, 7, 8, 9, 10}}, false)
	b.ID = "b"

	globalMax, byHabit := MaxAcrossHabits([]models.Habit{a, b})
	if globalMax != 5 {
		t.Errorf("expected global max 5, got %d", globalMax)
	}
	if byHabit["a"] != 3 || byHabit["b"] != 5 {
		t.Errorf("unexpected per-habit streaks: %v", byHabit)
	}
}
