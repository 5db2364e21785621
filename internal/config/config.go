package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Config is the process configuration, loaded once at startup.
type Config struct {
	BotToken          string  `json:"bot_token"`
	AdminIDs          []int64 `json:"admin_ids"`
	HTTPAddr          string  `json:"http_addr"`
	DBPath            string  `json:"db_path"`
	WebAppDir         string  `json:"webapp_dir"`
	LogPath           string  `json:"log_path"`
	LogLevel          string  `json:"log_level"`
	SessionTTLMinutes int     `json:"session_ttl_minutes"`
}

// Load reads and validates the JSON config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8090"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "shasitter.db"
	}
	if cfg.LogPath == "" {
		cfg.LogPath = "shasitter.log"
	}
	if cfg.WebAppDir == "" {
		cfg.WebAppDir = "webapp"
	}

	if len(cfg.AdminIDs) == 0 {
		return nil, errors.New("config has no admin_ids")
	}

	return &cfg, nil
}

// SessionTTL returns the wizard idle timeout, or 0 when unset so the
// session store falls back to its default.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}
