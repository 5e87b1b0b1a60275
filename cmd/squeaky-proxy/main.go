package main

import (
	"fmt"
	"os"
	"time"

	"squeaky/internal/api"
	"squeaky/internal/config"
	"squeaky/internal/suggest"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "squeaky-proxy failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadOrCreate(config.DefaultConfigFileName)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.AnthropicKey == "" {
		return fmt.Errorf("anthropic_key not configured, set it in %s or SQUEAKY_ANTHROPIC_KEY", config.DefaultConfigFileName)
	}

	timeout := time.Duration(cfg.RequestTimeoutSecs) * time.Second
	client := suggest.NewAnthropicClient(cfg.AnthropicKey, timeout)
	server := api.NewServer(client)
	return server.Run(cfg.ListenAddr)
}
