package service

import (
	"context"
	"errors"
	"time"

	"squeaky/internal/model"
	"squeaky/internal/storage"
)

// TaskService is the lifecycle manager for chore occurrences: creation,
// completion toggling, edits and deletion, including the regeneration of
// recurring series on completion.
//
// Operations on ids that no longer exist are silent no-ops, matching the
// contract the UI was written against.
type TaskService struct {
	store storage.Store
	now   func() time.Time
}

func NewTaskService(store storage.Store, now func() time.Time) *TaskService {
	if now == nil {
		now = time.Now
	}
	return &TaskService{store: store, now: now}
}

// AddTask persists a draft as a fresh incomplete task. Title content is a
// form-level concern and is deliberately not re-validated here.
func (s *TaskService) AddTask(ctx context.Context, draft model.Task) (model.Task, error) {
	draft.ID = 0
	draft.Completed = false
	draft.CompletedAt = nil
	draft.CreatedAt = s.now()
	if err := s.store.CreateTask(ctx, &draft); err != nil {
		return model.Task{}, err
	}
	return draft, nil
}

// CompleteTask marks the task done, records the completion in the log,
// bumps the lifetime counter and, for recurring tasks, spawns the next
// occurrence dated from the completed task's due date (not from today).
// All of it commits in one transaction. Returns the new lifetime total.
func (s *TaskService) CompleteTask(ctx context.Context, id int64) (int, error) {
	total := 0
	err := s.store.WithTx(ctx, func(tx storage.Store) error {
		current, err := totalCompleted(ctx, tx)
		if err != nil {
			return err
		}
		total = current

		task, err := tx.GetTask(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		now := s.now()
		task.Completed = true
		task.CompletedAt = &now
		if err := tx.UpdateTask(ctx, task); err != nil {
			return err
		}

		entry := model.CompletionLogEntry{Date: model.Today(now), TaskID: task.ID}
		if err := tx.AppendCompletionLog(ctx, &entry); err != nil {
			return err
		}

		total = current + 1
		if err := putTotalCompleted(ctx, tx, total); err != nil {
			return err
		}

		if task.Recurrence == model.RecurrenceNone {
			return nil
		}
		next, ok := model.NextOccurrence(task.DueDate, task.Recurrence, task.CustomInterval)
		if !ok {
			return nil
		}
		series := task.SeriesKey()
		spawn := model.Task{
			Title:          task.Title,
			Notes:          task.Notes,
			Category:       task.Category,
			DueDate:        next,
			Priority:       task.Priority,
			Recurrence:     task.Recurrence,
			CustomInterval: task.CustomInterval,
			SeriesID:       &series,
			CreatedAt:      now,
		}
		return tx.CreateTask(ctx, &spawn)
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// UncompleteTask reverses a completion and decrements the lifetime
// counter, floored at zero. An occurrence already spawned by the earlier
// completion is left in place: spawning is one-way by contract.
func (s *TaskService) UncompleteTask(ctx context.Context, id int64) error {
	return s.store.WithTx(ctx, func(tx storage.Store) error {
		task, err := tx.GetTask(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		task.Completed = false
		task.CompletedAt = nil
		if err := tx.UpdateTask(ctx, task); err != nil {
			return err
		}
		total, err := totalCompleted(ctx, tx)
		if err != nil {
			return err
		}
		return putTotalCompleted(ctx, tx, total-1)
	})
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	err := s.store.DeleteTask(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return err
}

// DeleteSeries removes every occurrence of a recurring chore, the series
// root included.
func (s *TaskService) DeleteSeries(ctx context.Context, seriesID int64) error {
	_, err := s.store.DeleteSeries(ctx, seriesID)
	return err
}

// TaskChanges carries a partial edit; nil fields are left untouched.
// Edits never trigger recurrence side effects.
type TaskChanges struct {
	Title          *string
	Notes          *string
	Category       *string
	DueDate        *model.Date
	Priority       *model.Priority
	Recurrence     *model.Recurrence
	CustomInterval *int
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, changes TaskChanges) error {
	return s.store.WithTx(ctx, func(tx storage.Store) error {
		task, err := tx.GetTask(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if changes.Title != nil {
			task.Title = *changes.Title
		}
		if changes.Notes != nil {
			task.Notes = *changes.Notes
		}
		if changes.Category != nil {
			task.Category = *changes.Category
		}
		if changes.DueDate != nil {
			task.DueDate = *changes.DueDate
		}
		if changes.Priority != nil {
			task.Priority = *changes.Priority
		}
		if changes.Recurrence != nil {
			task.Recurrence = *changes.Recurrence
		}
		if changes.CustomInterval != nil {
			task.CustomInterval = *changes.CustomInterval
		}
		return tx.UpdateTask(ctx, task)
	})
}

func (s *TaskService) Get(ctx context.Context, id int64) (model.Task, error) {
	return s.store.GetTask(ctx, id)
}
