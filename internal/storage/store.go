package storage

import (
	"context"
	"errors"

	"squeaky/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

// Store is the persistence boundary for the four record collections plus
// the completion log. Implementations must make WithTx atomic: either the
// whole closure commits or none of its writes are visible.
type Store interface {
	CreateTask(ctx context.Context, in *model.Task) error
	GetTask(ctx context.Context, id int64) (model.Task, error)
	UpdateTask(ctx context.Context, in model.Task) error
	DeleteTask(ctx context.Context, id int64) error
	DeleteSeries(ctx context.Context, seriesID int64) (int64, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	TasksOn(ctx context.Context, date model.Date) ([]model.Task, error)
	TasksInRange(ctx context.Context, start, end model.Date) ([]model.Task, error)
	IncompleteTasksBefore(ctx context.Context, date model.Date) ([]model.Task, error)

	CreateCategory(ctx context.Context, in *model.Category) error
	GetCategory(ctx context.Context, id int64) (model.Category, error)
	UpdateCategory(ctx context.Context, in model.Category) error
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	CountCategories(ctx context.Context) (int, error)

	CreateAchievement(ctx context.Context, in *model.Achievement) error
	GetAchievementByKey(ctx context.Context, key string) (model.Achievement, error)
	ListAchievements(ctx context.Context) ([]model.Achievement, error)

	GetSetting(ctx context.Context, key string) (model.Setting, error)
	PutSetting(ctx context.Context, in model.Setting) error
	ListSettings(ctx context.Context) ([]model.Setting, error)

	AppendCompletionLog(ctx context.Context, in *model.CompletionLogEntry) error

	// ClearAll wipes tasks, categories, achievements and settings. The
	// completion log is left alone; import replaces collections, not history.
	ClearAll(ctx context.Context) error

	WithTx(ctx context.Context, fn func(Store) error) error
}
