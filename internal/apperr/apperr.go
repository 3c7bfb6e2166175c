package apperr

import (
	"errors"
	"fmt"
	"os"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/logger"
)

// Sentinel error kinds for the data-model layer. Mutation entry points
// return one of these (possibly wrapped) instead of panicking; callers
// branch with errors.Is.
var (
	// ErrNotFound marks a reference to a profile, habit or log id that does
	// not exist. Updates and deletes against missing ids are reported but
	// never crash the caller.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks a rejected write, e.g. a cycle start date outside
	// the allowed window.
	ErrValidation = errors.New("validation failed")

	// ErrOutOfRange marks navigation outside the supported 2025-2035 window.
	ErrOutOfRange = errors.New("out of supported date range")

	// ErrStorageUnavailable marks a persistence layer that cannot read or
	// write; the session falls back to in-memory operation.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// NotFound wraps ErrNotFound with a description of the missing entity.
func NotFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

// Validation wraps ErrValidation with the violated constraint.
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
