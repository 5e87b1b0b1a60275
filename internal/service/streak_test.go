package service

import (
	"context"
	"testing"
	"time"

	"squeaky/internal/model"
)

func completedTask(title string, due model.Date) model.Task {
	done := time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)
	t := draftTask(title, due, model.RecurrenceNone)
	t.CreatedAt = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	t.Completed = true
	t.CompletedAt = &done
	return t
}

func TestComputeStreakSkipsEmptyDays(t *testing.T) {
	store := setupStore(t)
	svc := NewStreakService(store)
	ctx := context.Background()

	// Two fully-completed days separated by an empty day; the gap does
	// not break the streak.
	for _, task := range []model.Task{
		completedTask("Mop", "2024-01-10"),
		completedTask("Dust", "2024-01-08"),
	} {
		task := task
		if err := store.CreateTask(ctx, &task); err != nil {
			t.Fatalf("create task: %v", err)
		}
	}

	streak, err := svc.ComputeStreak(ctx, "2024-01-10")
	if err != nil {
		t.Fatalf("compute streak: %v", err)
	}
	if streak != 2 {
		t.Fatalf("expected streak 2, got %d", streak)
	}
}

func TestComputeStreakBreaksOnIncompleteDay(t *testing.T) {
	store := setupStore(t)
	svc := NewStreakService(store)
	ctx := context.Background()

	done := completedTask("Mop", "2024-01-10")
	if err := store.CreateTask(ctx, &done); err != nil {
		t.Fatalf("create task: %v", err)
	}
	missed := draftTask("Vacuum", "2024-01-09", model.RecurrenceNone)
	missed.CreatedAt = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if err := store.CreateTask(ctx, &missed); err != nil {
		t.Fatalf("create task: %v", err)
	}
	earlier := completedTask("Dust", "2024-01-08")
	if err := store.CreateTask(ctx, &earlier); err != nil {
		t.Fatalf("create task: %v", err)
	}

	streak, err := svc.ComputeStreak(ctx, "2024-01-10")
	if err != nil {
		t.Fatalf("compute streak: %v", err)
	}
	if streak != 1 {
		t.Fatalf("incomplete day must break the streak, got %d", streak)
	}
}

func TestComputeStreakIncompleteTodayDoesNotBreakPast(t *testing.T) {
	store := setupStore(t)
	svc := NewStreakService(store)
	ctx := context.Background()

	pending := draftTask("Mop", "2024-01-10", model.RecurrenceNone)
	pending.CreatedAt = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if err := store.CreateTask(ctx, &pending); err != nil {
		t.Fatalf("create task: %v", err)
	}
	yesterday := completedTask("Dust", "2024-01-09")
	if err := store.CreateTask(ctx, &yesterday); err != nil {
		t.Fatalf("create task: %v", err)
	}

	streak, err := svc.ComputeStreak(ctx, "2024-01-10")
	if err != nil {
		t.Fatalf("compute streak: %v", err)
	}
	if streak != 1 {
		t.Fatalf("today's pending work should not erase yesterday's streak, got %d", streak)
	}
}

func TestComputeStreakEmptyHistory(t *testing.T) {
	store := setupStore(t)
	svc := NewStreakService(store)

	streak, err := svc.ComputeStreak(context.Background(), "2024-01-10")
	if err != nil {
		t.Fatalf("compute streak: %v", err)
	}
	if streak != 0 {
		t.Fatalf("expected zero streak with no history, got %d", streak)
	}
}
