// Package badges projects habit statistics onto achievement states. Badges
// are never stored as earned; every evaluation recomputes unlock state and
// progress from the current habit list.
package badges

import (
	"fmt"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/constants"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/streak"
)

// Definition describes an unlockable achievement.
type Definition struct {
	ID          string
	Name        string
	Description string
	Requirement int
}

// Badge is one evaluated achievement: its definition plus the current
// metric, progress percentage and unlock state.
type Badge struct {
	Definition
	Current  int
	Progress float64
	Unlocked bool
}

// GlobalDefinitions are the device-wide milestones: streak thresholds plus
// the habit-count "architect" badge.
var GlobalDefinitions = []Definition{
	{ID: "streak-5", Name: "Iron Focus", Description: "Maintain any 5-day streak", Requirement: 5},
	{ID: "streak-10", Name: "Silver Routine", Description: "Maintain any 10-day streak", Requirement: 10},
	{ID: "streak-20", Name: "Golden Warrior", Description: "Maintain any 20-day streak", Requirement: 20},
	{ID: "streak-30", Name: "Platinum Master", Description: "Complete 30 days straight", Requirement: 30},
	{ID: "architect", Name: "Habit Architect", Description: "Create 5 unique habits", Requirement: constants.ArchitectHabitRequirement},
}

// Evaluation is the full badge board for one profile.
type Evaluation struct {
	Global      []Badge
	Specialists []Badge
}

// Evaluate computes the board from the habit list. One specialist badge is
// generated per existing habit, requiring a 7-day streak in that habit.
func Evaluate(habits []models.Habit) Evaluation {
	globalMax, byHabit := streak.MaxAcrossHabits(habits)

	var eval Evaluation
	for _, def := range GlobalDefinitions {
		current := globalMax
		if def.ID == "architect" {
			current = len(habits)
		}
		eval.Global = append(eval.Global, grade(def, current))
	}

	for _, h := range habits {
		def := Definition{
			ID:          "habit-" + h.ID,
			Name:        h.Name + " Specialist",
			Description: fmt.Sprintf("Reach a %d-day streak in %s", constants.SpecialistStreakRequirement, h.Name),
			Requirement: constants.SpecialistStreakRequirement,
		}
		eval.Specialists = append(eval.Specialists, grade(def, byHabit[h.ID]))
	}

	return eval
}

func grade(def Definition, current int) Badge {
	progress := 100 * float64(current) / float64(def.Requirement)
	if progress > 100 {
		progress = 100
	}
	return Badge{
		Definition: def,
		Current:    current,
		Progress:   progress,
		Unlocked:   progress >= 100,
	}
}
