package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != DefaultDBName || cfg.ListenAddr != DefaultListenAddr {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "db_path = \"custom.db\"\nproxy_url = \"http://localhost:8787\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "custom.db" || cfg.ProxyURL != "http://localhost:8787" {
		t.Fatalf("file values not applied: %#v", cfg)
	}
	if cfg.ListenAddr != DefaultListenAddr || cfg.RequestTimeoutSecs != DefaultRequestTimeout {
		t.Fatalf("missing fields should fall back to defaults: %#v", cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("db_path = \"from-file.db\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SQUEAKY_DB_PATH", "from-env.db")
	t.Setenv("SQUEAKY_REQUEST_TIMEOUT_SECS", "5")

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "from-env.db" {
		t.Fatalf("env should win over file, got %q", cfg.DBPath)
	}
	if cfg.RequestTimeoutSecs != 5 {
		t.Fatalf("timeout override not applied: %d", cfg.RequestTimeoutSecs)
	}
}

func TestEnvOverrideIgnoresGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("SQUEAKY_REQUEST_TIMEOUT_SECS", "not-a-number")

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RequestTimeoutSecs != DefaultRequestTimeout {
		t.Fatalf("garbage env value should be ignored: %d", cfg.RequestTimeoutSecs)
	}
}
