package service

import (
	"context"

	"squeaky/internal/model"
	"squeaky/internal/storage"
)

// streakLookback bounds the backward walk so a pathological log can never
// loop forever.
const streakLookback = 365

// StreakService counts consecutive fully-completed days. Days with no
// tasks at all are skipped: they neither extend nor break the streak.
type StreakService struct {
	store storage.Store
}

func NewStreakService(store storage.Store) *StreakService {
	return &StreakService{store: store}
}

func (s *StreakService) ComputeStreak(ctx context.Context, today model.Date) (int, error) {
	streak := 0

	todayTasks, err := s.store.TasksOn(ctx, today)
	if err != nil {
		return 0, err
	}
	if len(todayTasks) > 0 && allCompleted(todayTasks) {
		streak = 1
	}
	check := today.AddDays(-1)

	for i := 0; i < streakLookback; i++ {
		tasks, err := s.store.TasksOn(ctx, check)
		if err != nil {
			return 0, err
		}
		if len(tasks) == 0 {
			check = check.AddDays(-1)
			continue
		}
		if !allCompleted(tasks) {
			break
		}
		streak++
		check = check.AddDays(-1)
	}
	return streak, nil
}

func allCompleted(tasks []model.Task) bool {
	for _, t := range tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}
