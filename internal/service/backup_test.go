package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"squeaky/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	store := setupStore(t)
	tasks := NewTaskService(store, fixedNow)
	categories := NewCategoryService(store)
	achievements := NewAchievementService(store, fixedNow)
	backup := NewBackupService(store, fixedNow)
	ctx := context.Background()

	root, err := tasks.AddTask(ctx, draftTask("Water plants", "2024-01-01", model.RecurrenceWeekly))
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := tasks.CompleteTask(ctx, root.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := categories.Add(ctx, "Garage", "#888888", "🔧"); err != nil {
		t.Fatalf("add category: %v", err)
	}
	if _, err := achievements.Unlock(ctx, "Dust Buster 🏆"); err != nil {
		t.Fatalf("unlock: %v", err)
	}

	data, err := backup.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if err := backup.Import(ctx, data); err != nil {
		t.Fatalf("import: %v", err)
	}

	all, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both occurrences back, got %d", len(all))
	}
	titles := map[string]bool{}
	for _, task := range all {
		titles[task.Title] = true
	}
	if !titles["Water plants"] {
		t.Fatalf("task titles lost in round trip: %#v", all)
	}

	cats, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	found := false
	for _, c := range cats {
		if c.Name == "Garage" && c.Icon == "🔧" {
			found = true
		}
	}
	if !found {
		t.Fatalf("custom category lost in round trip: %#v", cats)
	}

	achs, err := achievements.List(ctx)
	if err != nil {
		t.Fatalf("list achievements: %v", err)
	}
	if len(achs) != 1 || achs[0].Key != "Dust Buster 🏆" {
		t.Fatalf("achievement lost in round trip: %#v", achs)
	}

	total, err := NewSettingsService(store).TotalCompleted(ctx)
	if err != nil {
		t.Fatalf("total completed: %v", err)
	}
	if total != 1 {
		t.Fatalf("lifetime counter should survive import, got %d", total)
	}
}

func TestImportReplacesExistingData(t *testing.T) {
	store := setupStore(t)
	tasks := NewTaskService(store, fixedNow)
	backup := NewBackupService(store, fixedNow)
	ctx := context.Background()

	if _, err := tasks.AddTask(ctx, draftTask("Old task", "2024-01-01", model.RecurrenceNone)); err != nil {
		t.Fatalf("add task: %v", err)
	}

	doc := Backup{
		Tasks: []backupTask{{
			Title:    "Imported task",
			Category: "Kitchen",
			DueDate:  "2024-02-01",
			Priority: model.PriorityLow,
		}},
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := backup.Import(ctx, data); err != nil {
		t.Fatalf("import: %v", err)
	}

	all, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(all) != 1 || all[0].Title != "Imported task" {
		t.Fatalf("import must replace prior tasks: %#v", all)
	}
	if all[0].ID == 0 {
		t.Fatalf("imported rows get fresh ids")
	}
}

func TestImportRejectsMalformedDocument(t *testing.T) {
	store := setupStore(t)
	tasks := NewTaskService(store, fixedNow)
	backup := NewBackupService(store, fixedNow)
	ctx := context.Background()

	if _, err := tasks.AddTask(ctx, draftTask("Keep me", "2024-01-01", model.RecurrenceNone)); err != nil {
		t.Fatalf("add task: %v", err)
	}

	err := backup.Import(ctx, []byte("not json at all"))
	if !errors.Is(err, ErrMalformedBackup) {
		t.Fatalf("expected ErrMalformedBackup, got %v", err)
	}

	// A rejected import leaves the data untouched.
	all, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(all) != 1 || all[0].Title != "Keep me" {
		t.Fatalf("failed import must not clear data: %#v", all)
	}
}

func TestExportSettingsAsKeyValueArray(t *testing.T) {
	store := setupStore(t)
	backup := NewBackupService(store, fixedNow)
	settings := NewSettingsService(store)
	ctx := context.Background()

	if err := settings.SetTheme(ctx, model.ThemeDark); err != nil {
		t.Fatalf("set theme: %v", err)
	}

	data, err := backup.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var doc struct {
		Settings []struct {
			Key   string          `json:"key"`
			Value json.RawMessage `json:"value"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("settings must be an array of key/value records: %v", err)
	}
	found := false
	for _, s := range doc.Settings {
		if s.Key == "theme" && string(s.Value) == `"dark"` {
			found = true
		}
	}
	if !found {
		t.Fatalf("theme setting missing from export: %s", data)
	}
}

func TestImportAcceptsSettingsArrayDocument(t *testing.T) {
	store := setupStore(t)
	backup := NewBackupService(store, fixedNow)
	ctx := context.Background()

	doc := []byte(`{
		"tasks": [],
		"categories": [],
		"achievements": [],
		"settings": [
			{"key": "theme", "value": "lemon"},
			{"key": "totalCompleted", "value": 42}
		]
	}`)
	if err := backup.Import(ctx, doc); err != nil {
		t.Fatalf("import of key/value settings array: %v", err)
	}

	theme, err := NewSettingsService(store).Theme(ctx)
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != model.ThemeLemon {
		t.Fatalf("imported theme lost, got %q", theme)
	}
	total, err := NewSettingsService(store).TotalCompleted(ctx)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 42 {
		t.Fatalf("imported counter lost, got %d", total)
	}
}

func TestExportEmptyDatabaseUsesEmptyArrays(t *testing.T) {
	store := setupStore(t)
	backup := NewBackupService(store, fixedNow)

	data, err := backup.Export(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(doc["tasks"]) != "[]" {
		t.Fatalf("tasks should export as [], got %s", doc["tasks"])
	}
	if string(doc["achievements"]) != "[]" {
		t.Fatalf("achievements should export as [], got %s", doc["achievements"])
	}
}

func TestImportAcceptsDanglingSeriesID(t *testing.T) {
	store := setupStore(t)
	backup := NewBackupService(store, fixedNow)
	ctx := context.Background()

	missing := int64(999)
	doc := Backup{
		Tasks: []backupTask{{
			Title:      "Orphan occurrence",
			Category:   "Kitchen",
			DueDate:    "2024-02-01",
			Priority:   model.PriorityMedium,
			Recurrence: model.RecurrenceWeekly,
			SeriesID:   &missing,
		}},
	}
	data, _ := json.Marshal(doc)
	if err := backup.Import(ctx, data); err != nil {
		t.Fatalf("import: %v", err)
	}

	all, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(all) != 1 || all[0].SeriesID == nil || *all[0].SeriesID != missing {
		t.Fatalf("dangling series link should import verbatim: %#v", all)
	}
}
