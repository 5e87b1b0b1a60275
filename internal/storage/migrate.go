package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MigrateUp applies every *.up.sql script in lexical order. Scripts are
// written to be re-runnable (CREATE TABLE IF NOT EXISTS), so calling
// this on an already-migrated database is safe.
func MigrateUp(db *sql.DB) error {
	scripts, err := migrationScripts(".up.sql")
	if err != nil {
		return err
	}
	return runScripts(db, scripts)
}

// MigrateDown tears the schema back down, newest script first. Used by
// tests that need a clean slate.
func MigrateDown(db *sql.DB) error {
	scripts, err := migrationScripts(".down.sql")
	if err != nil {
		return err
	}
	for i, j := 0, len(scripts)-1; i < j; i, j = i+1, j-1 {
		scripts[i], scripts[j] = scripts[j], scripts[i]
	}
	return runScripts(db, scripts)
}

func migrationScripts(suffix string) ([]string, error) {
	scripts, err := fs.Glob(migrationFS, "migrations/*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("storage: list migrations: %w", err)
	}
	sort.Strings(scripts)
	return scripts, nil
}

func runScripts(db *sql.DB, scripts []string) error {
	for _, script := range scripts {
		stmt, err := migrationFS.ReadFile(script)
		if err != nil {
			return fmt.Errorf("storage: read %s: %w", script, err)
		}
		if _, err := db.Exec(string(stmt)); err != nil {
			return fmt.Errorf("storage: run %s: %w", script, err)
		}
	}
	return nil
}
