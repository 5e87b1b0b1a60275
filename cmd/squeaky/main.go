package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"squeaky/internal/config"
	"squeaky/internal/service"
	"squeaky/internal/storage"
	"squeaky/internal/suggest"
	"squeaky/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "squeaky failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadOrCreate(config.DefaultConfigFileName)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := storage.MigrateUp(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	store, err := storage.NewSQLiteStore(db)
	if err != nil {
		return err
	}
	if err := storage.SeedDefaults(context.Background(), store); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	services := update.Services{
		Tasks:        service.NewTaskService(store, nil),
		Views:        service.NewViewService(store),
		Streaks:      service.NewStreakService(store),
		Achievements: service.NewAchievementService(store, nil),
		Settings:     service.NewSettingsService(store),
		Categories:   service.NewCategoryService(store),
		Backup:       service.NewBackupService(store, nil),
	}
	if cfg.ProxyURL != "" {
		httpClient := &http.Client{Timeout: time.Duration(cfg.RequestTimeoutSecs) * time.Second}
		services.Suggest = suggest.NewClient(cfg.ProxyURL, httpClient)
	}

	m := update.NewModel(services, nil)
	m.DBPath = cfg.DBPath
	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
