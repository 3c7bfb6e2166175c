package mentor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/logger"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

// OfflineMessage is shown whenever the adviser cannot be reached, whether
// from a missing key, a network failure, or no adviser being configured.
const OfflineMessage = "Failed to connect. Check your API key!"

// ErrBusy is returned when a request arrives while another is pending.
var ErrBusy = errors.New("mentor: a request is already in flight")

// Request carries everything the adviser needs to answer one message.
type Request struct {
	UserName     string
	HabitSummary string
	Message      string
}

// Adviser produces a coaching reply for a request. Implementations are
// expected to honor context cancellation.
type Adviser interface {
	Advise(ctx context.Context, req Request) (string, error)
}

// AdviserFunc adapts a plain function to the Adviser interface.
type AdviserFunc func(ctx context.Context, req Request) (string, error)

func (f AdviserFunc) Advise(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Coach fronts an adviser with the conversation rules: one request at a
// time, and any failure degrades to the offline message rather than an
// error the caller must handle.
type Coach struct {
	adviser  Adviser
	inflight atomic.Bool
}

func NewCoach(adviser Adviser) *Coach {
	return &Coach{adviser: adviser}
}

// Greeting opens the conversation.
func Greeting(userName string) string {
	return fmt.Sprintf("Hey %s! Need help with your routine?", userName)
}

// SummarizeHabits renders the habit list as "name: N completions" pairs,
// in stable name order, for the adviser's system instruction.
func SummarizeHabits(habits []models.Habit) string {
	sorted := make([]models.Habit, len(habits))
	copy(sorted, habits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	parts := make([]string, 0, len(sorted))
	for _, h := range sorted {
		parts = append(parts, fmt.Sprintf("%s: %d completions", h.Name, h.TotalCompletions()))
	}
	return strings.Join(parts, ", ")
}

// SystemInstruction is the coaching persona handed to the adviser.
func SystemInstruction(userName, habitSummary string) string {
	return fmt.Sprintf("You are an elite habit coach for %s. Habits: %s. Be brief, professional, and highly motivating.",
		userName, habitSummary)
}

// Send asks the adviser for a reply. A second call while one is pending
// returns ErrBusy. Adviser failures and empty replies both fall back to
// OfflineMessage with a nil error.
func (c *Coach) Send(ctx context.Context, userName string, habits []models.Habit, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.New("mentor: message cannot be empty")
	}
	if !c.inflight.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	defer c.inflight.Store(false)

	if c.adviser == nil {
		return OfflineMessage, nil
	}
	reply, err := c.adviser.Advise(ctx, Request{
		UserName:     userName,
		HabitSummary: SummarizeHabits(habits),
		Message:      message,
	})
	if err != nil {
		logger.Warn("mentor request failed", "error", err)
		return OfflineMessage, nil
	}
	if reply == "" {
		return "I'm offline right now.", nil
	}
	return reply, nil
}
