package service

import (
	"context"
	"sort"

	"squeaky/internal/model"
	"squeaky/internal/storage"
)

// ViewService computes the read-side task sets. Callers supply "today";
// nothing here touches the wall clock, which keeps the date math testable.
type ViewService struct {
	store storage.Store
}

func NewViewService(store storage.Store) *ViewService {
	return &ViewService{store: store}
}

func (s *ViewService) TasksForDate(ctx context.Context, date model.Date) ([]model.Task, error) {
	return s.store.TasksOn(ctx, date)
}

// TasksInRange is inclusive on both ends.
func (s *ViewService) TasksInRange(ctx context.Context, start, end model.Date) ([]model.Task, error) {
	return s.store.TasksInRange(ctx, start, end)
}

func (s *ViewService) OverdueTasks(ctx context.Context, today model.Date) ([]model.Task, error) {
	return s.store.IncompleteTasksBefore(ctx, today)
}

// UpcomingTasks returns the incomplete tasks due in the week after today,
// ascending by due date.
func (s *ViewService) UpcomingTasks(ctx context.Context, today model.Date) ([]model.Task, error) {
	tasks, err := s.store.TasksInRange(ctx, today.AddDays(1), today.AddDays(7))
	if err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	SortByDueDate(out)
	return out, nil
}

func GroupByDate(tasks []model.Task) map[model.Date][]model.Task {
	grouped := make(map[model.Date][]model.Task)
	for _, t := range tasks {
		grouped[t.DueDate] = append(grouped[t.DueDate], t)
	}
	return grouped
}

// SortForDisplay orders a single day's list: incomplete before completed,
// stable otherwise.
func SortForDisplay(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return !tasks[i].Completed && tasks[j].Completed
	})
}

func SortByDueDate(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DueDate < tasks[j].DueDate
	})
}
