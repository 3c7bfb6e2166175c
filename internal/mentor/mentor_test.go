package mentor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/models"
)

func TestSummarizeHabits(t *testing.T) {
	habits := []models.Habit{
		{Name: "Read", Completions: map[string][]int{"0-2025": {1, 2, 3}}},
		{Name: "Meditate", Completions: map[string][]int{"0-2025": {1}, "1-2025": {2}}},
	}

	got := SummarizeHabits(habits)
	want := "Meditate: 2 completions, Read: 3 completions"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGreeting(t *testing.T) {
	if got := Greeting("Asha"); got != "Hey Asha! Need help with your routine?" {
		t.Errorf("unexpected greeting: %q", got)
	}
}

func TestSendPassesRequest(t *testing.T) {
	var captured Request
	coach := NewCoach(AdviserFunc(func(_ context.Context, req Request) (string, error) {
		captured = req
		return "Keep going!", nil
	}))

	habits := []models.Habit{{Name: "Read", Completions: map[string][]int{"0-2025": {1}}}}
	reply, err := coach.Send(context.Background(), "Asha", habits, "  How am I doing?  ")
	if err != nil {
		t.Fatal(err)
	}
	if reply != "Keep going!" {
		t.Errorf("unexpected reply: %q", reply)
	}
	if captured.UserName != "Asha" || captured.Message != "How am I doing?" {
		t.Errorf("unexpected request: %+v", captured)
	}
	if captured.HabitSummary != "Read: 1 completions" {
		t.Errorf("unexpected summary: %q", captured.HabitSummary)
	}
}

func TestSendRejectsEmptyMessage(t *testing.T) {
	coach := NewCoach(nil)
	if _, err := coach.Send(context.Background(), "Asha", nil, "   "); err == nil {
		t.Error("expected error for empty message")
	}
}

func TestSendFallsBackOnFailure(t *testing.T) {
	coach := NewCoach(AdviserFunc(func(_ context.Context, _ Request) (string, error) {
		return "", errors.New("network down")
	}))

	reply, err := coach.Send(context.Background(), "Asha", nil, "help")
	if err != nil {
		t.Fatalf("failures should degrade, not error: %v", err)
	}
	if reply != OfflineMessage {
		t.Errorf("expected offline message, got %q", reply)
	}
}

func TestSendFallsBackOnEmptyReply(t *testing.T) {
	coach := NewCoach(AdviserFunc(func(_ context.Context, _ Request) (string, error) {
		return "", nil
	}))

	reply, err := coach.Send(context.Background(), "Asha", nil, "help")
	if err != nil {
		t.Fatal(err)
	}
	if reply != "I'm offline right now." {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestSendWithoutAdviser(t *testing.T) {
	coach := NewCoach(nil)
	reply, err := coach.Send(context.Background(), "Asha", nil, "help")
	if err != nil {
		t.Fatal(err)
	}
	if reply != OfflineMessage {
		t.Errorf("expected offline message, got %q", reply)
	}
}

func TestSendRejectsConcurrentRequests(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var startedOnce sync.Once
	coach := NewCoach(AdviserFunc(func(_ context.Context, _ Request) (string, error) {
		startedOnce.Do(func() { close(started) })
		<-release
		return "done", nil
	}))

	firstDone := make(chan error, 1)
	go func() {
		_, err := coach.Send(context.Background(), "Asha", nil, "first")
		firstDone <- err
	}()

	<-started
	if _, err := coach.Send(context.Background(), "Asha", nil, "second"); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy while a request is in flight, got %v", err)
	}

	close(release)
	if err := <-firstDone; err != nil {
		t.Fatalf("first request failed: %v", err)
	}

	// The guard must clear once the first request completes.
	if _, err := coach.Send(context.Background(), "Asha", nil, "third"); err != nil {
		t.Errorf("expected guard released after completion, got %v", err)
	}
}
