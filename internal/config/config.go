package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "squeaky.db"
	DefaultListenAddr     = ":8787"
	DefaultRequestTimeout = 30
)

// Config covers both binaries. The TUI reads DBPath and ProxyURL; the
// suggestion proxy reads ListenAddr, AnthropicKey and RequestTimeoutSecs.
type Config struct {
	DBPath             string `toml:"db_path"`
	ProxyURL           string `toml:"proxy_url"`
	ListenAddr         string `toml:"listen_addr"`
	AnthropicKey       string `toml:"anthropic_key"`
	RequestTimeoutSecs int    `toml:"request_timeout_secs"`
}

// LoadOrCreate reads the file at path, writing the defaults there first
// if it does not exist yet. Environment overrides are applied last.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return applyEnv(cfg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.RequestTimeoutSecs <= 0 {
		cfg.RequestTimeoutSecs = DefaultRequestTimeout
	}
	return applyEnv(cfg), nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath:             DefaultDBName,
		ListenAddr:         DefaultListenAddr,
		RequestTimeoutSecs: DefaultRequestTimeout,
	}
}

func applyEnv(cfg Config) Config {
	if v, ok := getEnvString("SQUEAKY_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("SQUEAKY_PROXY_URL"); ok {
		cfg.ProxyURL = v
	}
	if v, ok := getEnvString("SQUEAKY_LISTEN_ADDR"); ok {
		cfg.ListenAddr = v
	}
	if v, ok := getEnvString("SQUEAKY_ANTHROPIC_KEY"); ok {
		cfg.AnthropicKey = v
	}
	if v, ok := getEnvInt("SQUEAKY_REQUEST_TIMEOUT_SECS"); ok && v > 0 {
		cfg.RequestTimeoutSecs = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
