package constants

const (
	AppName            = "supertracker"
	DefaultKeyringUser = "mentor-api-key"
	DefaultConfigPath  = "~/.config/supertracker/supertracker.db"
	Version            = "v1.0.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// StartYear and EndYear bound the navigable calendar window. Month
	// navigation outside this range is a no-op.
	StartYear = 2025
	EndYear   = 2035
)

// Cycle tracking constants
const (
	// MinCycleGapDays and MaxCycleGapDays form the inclusive window, relative
	// to the previous log's start date, within which a new cycle start must
	// fall.
	MinCycleGapDays = 20
	MaxCycleGapDays = 40

	// DefaultAvgCycleLength is assumed until enough logs exist to compute a
	// real average gap.
	DefaultAvgCycleLength = 28

	MinCycleDurationDays = 1
	MaxCycleDurationDays = 20

	// Healthy ranges used by the cycle health report.
	NormalDurationMinDays = 3
	NormalDurationMaxDays = 7
	NormalGapMinDays      = 21
	NormalGapMaxDays      = 35
)

// Badge requirements
const (
	SpecialistStreakRequirement = 7
	ArchitectHabitRequirement   = 5
)
