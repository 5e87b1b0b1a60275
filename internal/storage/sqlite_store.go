package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"squeaky/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type SQLiteStore struct {
	db *sql.DB
	q  querier
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteStore{db: db, q: db}, nil
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// WithTx runs fn against a Store bound to a single transaction. Calling
// WithTx on a Store that is already transactional just runs fn in place.
func (s *SQLiteStore) WithTx(ctx context.Context, fn func(Store) error) error {
	if s.db == nil {
		return fn(s)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(&SQLiteStore{q: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const taskColumns = `id, title, notes, category, due_date, priority, recurrence, custom_interval, series_id, completed, completed_at, created_at`

func (s *SQLiteStore) CreateTask(ctx context.Context, in *model.Task) error {
	res, err := s.q.ExecContext(ctx, `
		INSERT INTO tasks (title, notes, category, due_date, priority, recurrence, custom_interval, series_id, completed, completed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Title, in.Notes, in.Category, string(in.DueDate), string(in.Priority), string(in.Recurrence),
		in.CustomInterval, nullID(in.SeriesID), boolInt(in.Completed), nullTime(in.CompletedAt), mustTime(in.CreatedAt),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	in.ID = id
	return nil
}

func (s *SQLiteStore) GetTask(ctx context.Context, id int64) (model.Task, error) {
	row := s.q.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, err
	}
	return task, nil
}

func (s *SQLiteStore) UpdateTask(ctx context.Context, in model.Task) error {
	res, err := s.q.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, notes = ?, category = ?, due_date = ?, priority = ?, recurrence = ?, custom_interval = ?, series_id = ?, completed = ?, completed_at = ?
		WHERE id = ?`,
		in.Title, in.Notes, in.Category, string(in.DueDate), string(in.Priority), string(in.Recurrence),
		in.CustomInterval, nullID(in.SeriesID), boolInt(in.Completed), nullTime(in.CompletedAt), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (s *SQLiteStore) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.q.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

// DeleteSeries removes every occurrence carrying the series id, plus the
// series root row itself (its own id equals the series id and its
// series_id column is NULL). Returns the number of rows removed.
func (s *SQLiteStore) DeleteSeries(ctx context.Context, seriesID int64) (int64, error) {
	res, err := s.q.ExecContext(ctx, `DELETE FROM tasks WHERE series_id = ? OR id = ?`, seriesID, seriesID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQLiteStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY due_date ASC, id ASC`)
}

func (s *SQLiteStore) TasksOn(ctx context.Context, date model.Date) ([]model.Task, error) {
	return s.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE due_date = ? ORDER BY id ASC`, string(date))
}

func (s *SQLiteStore) TasksInRange(ctx context.Context, start, end model.Date) ([]model.Task, error) {
	return s.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE due_date >= ? AND due_date <= ? ORDER BY due_date ASC, id ASC`,
		string(start), string(end))
}

func (s *SQLiteStore) IncompleteTasksBefore(ctx context.Context, date model.Date) ([]model.Task, error) {
	return s.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE due_date < ? AND completed = 0 ORDER BY due_date ASC, id ASC`,
		string(date))
}

func (s *SQLiteStore) queryTasks(ctx context.Context, query string, args ...any) ([]model.Task, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CreateCategory(ctx context.Context, in *model.Category) error {
	res, err := s.q.ExecContext(ctx, `INSERT INTO categories (name, color, icon, sort_order) VALUES (?, ?, ?, ?)`,
		in.Name, in.Color, in.Icon, in.Order)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	in.ID = id
	return nil
}

func (s *SQLiteStore) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	row := s.q.QueryRowContext(ctx, `SELECT id, name, color, icon, sort_order FROM categories WHERE id = ?`, id)
	var out model.Category
	if err := row.Scan(&out.ID, &out.Name, &out.Color, &out.Icon, &out.Order); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Category{}, ErrNotFound
		}
		return model.Category{}, err
	}
	return out, nil
}

func (s *SQLiteStore) UpdateCategory(ctx context.Context, in model.Category) error {
	res, err := s.q.ExecContext(ctx, `UPDATE categories SET name = ?, color = ?, icon = ?, sort_order = ? WHERE id = ?`,
		in.Name, in.Color, in.Icon, in.Order, in.ID)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (s *SQLiteStore) DeleteCategory(ctx context.Context, id int64) error {
	res, err := s.q.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (s *SQLiteStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT id, name, color, icon, sort_order FROM categories ORDER BY sort_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Category, 0)
	for rows.Next() {
		var item model.Category
		if err := rows.Scan(&item.ID, &item.Name, &item.Color, &item.Icon, &item.Order); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CountCategories(ctx context.Context) (int, error) {
	var n int
	if err := s.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *SQLiteStore) CreateAchievement(ctx context.Context, in *model.Achievement) error {
	res, err := s.q.ExecContext(ctx, `INSERT INTO achievements (key, unlocked_at) VALUES (?, ?)`,
		in.Key, mustTime(in.UnlockedAt))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	in.ID = id
	return nil
}

func (s *SQLiteStore) GetAchievementByKey(ctx context.Context, key string) (model.Achievement, error) {
	row := s.q.QueryRowContext(ctx, `SELECT id, key, unlocked_at FROM achievements WHERE key = ?`, key)
	var out model.Achievement
	var unlocked string
	if err := row.Scan(&out.ID, &out.Key, &unlocked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Achievement{}, ErrNotFound
		}
		return model.Achievement{}, err
	}
	at, err := parseRequiredTime(unlocked)
	if err != nil {
		return model.Achievement{}, err
	}
	out.UnlockedAt = at
	return out, nil
}

func (s *SQLiteStore) ListAchievements(ctx context.Context) ([]model.Achievement, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT id, key, unlocked_at FROM achievements ORDER BY unlocked_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Achievement, 0)
	for rows.Next() {
		var item model.Achievement
		var unlocked string
		if err := rows.Scan(&item.ID, &item.Key, &unlocked); err != nil {
			return nil, err
		}
		at, err := parseRequiredTime(unlocked)
		if err != nil {
			return nil, err
		}
		item.UnlockedAt = at
		out = append(out, item)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) GetSetting(ctx context.Context, key string) (model.Setting, error) {
	row := s.q.QueryRowContext(ctx, `SELECT key, value FROM settings WHERE key = ?`, key)
	var out model.Setting
	if err := row.Scan(&out.Key, &out.Value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Setting{}, ErrNotFound
		}
		return model.Setting{}, err
	}
	return out, nil
}

func (s *SQLiteStore) PutSetting(ctx context.Context, in model.Setting) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		in.Key, in.Value)
	return err
}

func (s *SQLiteStore) ListSettings(ctx context.Context) ([]model.Setting, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT key, value FROM settings ORDER BY key ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Setting, 0)
	for rows.Next() {
		var item model.Setting
		if err := rows.Scan(&item.Key, &item.Value); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) AppendCompletionLog(ctx context.Context, in *model.CompletionLogEntry) error {
	res, err := s.q.ExecContext(ctx, `INSERT INTO completion_log (date, task_id) VALUES (?, ?)`,
		string(in.Date), in.TaskID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	in.ID = id
	return nil
}

func (s *SQLiteStore) ClearAll(ctx context.Context) error {
	for _, table := range []string{"tasks", "categories", "achievements", "settings"} {
		if _, err := s.q.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(sqliteTimeLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(sqliteTimeLayout, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func nullID(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var out model.Task
	var due string
	var priority string
	var recurrence string
	var series sql.NullInt64
	var completed int
	var completedAt sql.NullString
	var created string
	if err := s.Scan(&out.ID, &out.Title, &out.Notes, &out.Category, &due, &priority, &recurrence,
		&out.CustomInterval, &series, &completed, &completedAt, &created); err != nil {
		return model.Task{}, err
	}
	out.DueDate = model.Date(due)
	out.Priority = model.Priority(priority)
	out.Recurrence = model.Recurrence(recurrence)
	if series.Valid {
		id := series.Int64
		out.SeriesID = &id
	}
	out.Completed = completed == 1
	doneAt, err := parseNullableTime(completedAt)
	if err != nil {
		return model.Task{}, err
	}
	out.CompletedAt = doneAt
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return model.Task{}, err
	}
	out.CreatedAt = createdAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
