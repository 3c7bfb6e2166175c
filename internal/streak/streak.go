// Package streak derives habit streak statistics by replaying the full
// completion history. Rest days (weekends on habits with weekendsOff) keep a
// streak alive without extending it, so streaks span non-contiguous
// completions and cannot be read off a simple run-length scan.
package streak

import (
	"time"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/constants"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/dateutil"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

// Result holds the statistics derived from one habit's completion record.
// Nothing here is persisted; it is recomputed from the habit on every read.
type Result struct {
	MaxStreak         int
	CompletionsByYear map[int]int
	TotalCompletions  int
}

// Compute scans every day of the supported window in chronological order.
// A completed day extends the running streak; a missed weekend on a
// weekends-off habit preserves it; any other miss resets it to zero.
func Compute(habit models.Habit) Result {
	res := Result{CompletionsByYear: make(map[int]int)}

	current := 0
	for year := constants.StartYear; year <= constants.EndYear; year++ {
		for month := time.January; month <= time.December; month++ {
			key := dateutil.MonthKey{Year: year, Month: month}
			completed := daySet(habit.Completions[key.String()])

			days := key.Days()
			for day := 1; day <= days; day++ {
				if completed[day] {
					current++
					if current > res.MaxStreak {
						res.MaxStreak = current
					}
					res.CompletionsByYear[year]++
					res.TotalCompletions++
				} else if habit.WeekendsOff && dateutil.IsWeekend(year, month, day) {
					// Rest day: streak neither grows nor resets.
					continue
				} else {
					current = 0
				}
			}
		}
	}

	return res
}

// MaxAcrossHabits returns the highest max streak of any habit, plus each
// habit's own max streak keyed by id.
func MaxAcrossHabits(habits []models.Habit) (globalMax int, byHabit map[string]int) {
	byHabit = make(map[string]int, len(habits))
	for _, h := range habits {
		hm := Compute(h).MaxStreak
		byHabit[h.ID] = hm
		if hm > globalMax {
			globalMax = hm
		}
	}
	return globalMax, byHabit
}

func daySet(days []int) map[int]bool {
	set := make(map[int]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set
}
