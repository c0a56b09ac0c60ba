package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds environment-driven configuration.
type Config struct {
	DBPath       string        `env:"PRODEX_DB"`
	RPS          float64       `env:"PRODEX_RPS" envDefault:"1"`
	FetchTimeout time.Duration `env:"PRODEX_FETCH_TIMEOUT" envDefault:"10s"`
	LogLevel     string        `env:"PRODEX_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads configuration from the environment and fills in the
// default database path when unset.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath()
	}
	return cfg, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "prodex.db"
	}
	dir := filepath.Join(home, ".prodex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "prodex.db")
}
