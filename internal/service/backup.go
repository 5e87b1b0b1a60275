package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"squeaky/internal/model"
	"squeaky/internal/storage"
)

// ErrMalformedBackup wraps any decode failure on import so callers can
// show one friendly message regardless of which field was bad.
var ErrMalformedBackup = errors.New("service: malformed backup")

// Backup is the portable snapshot format. Field names use the camelCase
// the export file has always carried, so old files keep importing.
type Backup struct {
	Tasks        []backupTask        `json:"tasks"`
	Categories   []backupCategory    `json:"categories"`
	Achievements []backupAchievement `json:"achievements"`
	Settings     []backupSetting     `json:"settings"`
	ExportedAt   time.Time           `json:"exportedAt"`
}

type backupTask struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Notes          string          `json:"notes,omitempty"`
	Category       string          `json:"category"`
	DueDate        model.Date      `json:"dueDate"`
	Priority       model.Priority  `json:"priority"`
	Recurrence     model.Recurrence `json:"recurrence"`
	CustomInterval int             `json:"customInterval,omitempty"`
	SeriesID       *int64          `json:"seriesId,omitempty"`
	Completed      bool            `json:"completed"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type backupCategory struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Order int    `json:"order"`
}

type backupAchievement struct {
	ID         int64     `json:"id"`
	Key        string    `json:"key"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

type backupSetting struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

type BackupService struct {
	store storage.Store
	now   func() time.Time
}

func NewBackupService(store storage.Store, now func() time.Time) *BackupService {
	if now == nil {
		now = time.Now
	}
	return &BackupService{store: store, now: now}
}

// Export serializes every collection to an indented JSON document.
func (s *BackupService) Export(ctx context.Context) ([]byte, error) {
	// Collections marshal as [] rather than null when empty.
	backup := Backup{
		Tasks:        []backupTask{},
		Categories:   []backupCategory{},
		Achievements: []backupAchievement{},
		Settings:     []backupSetting{},
		ExportedAt:   s.now(),
	}

	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		backup.Tasks = append(backup.Tasks, backupTask{
			ID:             t.ID,
			Title:          t.Title,
			Notes:          t.Notes,
			Category:       t.Category,
			DueDate:        t.DueDate,
			Priority:       t.Priority,
			Recurrence:     t.Recurrence,
			CustomInterval: t.CustomInterval,
			SeriesID:       t.SeriesID,
			Completed:      t.Completed,
			CompletedAt:    t.CompletedAt,
			CreatedAt:      t.CreatedAt,
		})
	}

	cats, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range cats {
		backup.Categories = append(backup.Categories, backupCategory{
			ID: c.ID, Name: c.Name, Color: c.Color, Icon: c.Icon, Order: c.Order,
		})
	}

	achs, err := s.store.ListAchievements(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range achs {
		backup.Achievements = append(backup.Achievements, backupAchievement{
			ID: a.ID, Key: a.Key, UnlockedAt: a.UnlockedAt,
		})
	}

	settings, err := s.store.ListSettings(ctx)
	if err != nil {
		return nil, err
	}
	for _, st := range settings {
		backup.Settings = append(backup.Settings, backupSetting{
			Key: st.Key, Value: json.RawMessage(st.Value),
		})
	}

	return json.MarshalIndent(backup, "", "  ")
}

// Import replaces the current collections with the backup's contents in
// one transaction. Ids are reassigned on insert; seriesId values are
// carried over verbatim, so a backup whose root occurrence was deleted
// imports with the chain intact but dangling. Nothing is written if any
// row fails.
func (s *BackupService) Import(ctx context.Context, data []byte) error {
	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}

	return s.store.WithTx(ctx, func(tx storage.Store) error {
		if err := tx.ClearAll(ctx); err != nil {
			return err
		}
		for _, bt := range backup.Tasks {
			task := model.Task{
				Title:          bt.Title,
				Notes:          bt.Notes,
				Category:       bt.Category,
				DueDate:        bt.DueDate,
				Priority:       bt.Priority,
				Recurrence:     bt.Recurrence,
				CustomInterval: bt.CustomInterval,
				SeriesID:       bt.SeriesID,
				Completed:      bt.Completed,
				CompletedAt:    bt.CompletedAt,
				CreatedAt:      bt.CreatedAt,
			}
			if task.CreatedAt.IsZero() {
				task.CreatedAt = s.now()
			}
			if err := tx.CreateTask(ctx, &task); err != nil {
				return err
			}
		}
		for _, bc := range backup.Categories {
			cat := model.Category{Name: bc.Name, Color: bc.Color, Icon: bc.Icon, Order: bc.Order}
			if err := tx.CreateCategory(ctx, &cat); err != nil {
				return err
			}
		}
		for _, ba := range backup.Achievements {
			ach := model.Achievement{Key: ba.Key, UnlockedAt: ba.UnlockedAt}
			if err := tx.CreateAchievement(ctx, &ach); err != nil {
				return err
			}
		}
		for _, bs := range backup.Settings {
			if err := tx.PutSetting(ctx, model.Setting{Key: bs.Key, Value: string(bs.Value)}); err != nil {
				return err
			}
		}
		return nil
	})
}
