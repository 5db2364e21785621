package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFull(t *testing.T) {
	path := writeConfig(t, `{
		"bot_token": "123:abc",
		"admin_ids": [42, 99],
		"http_addr": ":9000",
		"db_path": "/data/pets.db",
		"webapp_dir": "/srv/webapp",
		"log_path": "/var/log/pets.log",
		"log_level": "debug",
		"session_ttl_minutes": 15
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.BotToken != "123:abc" {
		t.Errorf("BotToken = %q", cfg.BotToken)
	}
	if len(cfg.AdminIDs) != 2 || cfg.AdminIDs[0] != 42 {
		t.Errorf("AdminIDs = %v", cfg.AdminIDs)
	}
	if cfg.HTTPAddr != ":9000" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.SessionTTL() != 15*time.Minute {
		t.Errorf("SessionTTL() = %v", cfg.SessionTTL())
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `{"bot_token": "123:abc", "admin_ids": [42]}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.HTTPAddr != ":8090" {
		t.Errorf("HTTPAddr default = %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "shasitter.db" {
		t.Errorf("DBPath default = %q", cfg.DBPath)
	}
	if cfg.LogPath != "shasitter.log" {
		t.Errorf("LogPath default = %q", cfg.LogPath)
	}
	if cfg.WebAppDir != "webapp" {
		t.Errorf("WebAppDir default = %q", cfg.WebAppDir)
	}
	if cfg.SessionTTL() != 0 {
		t.Errorf("SessionTTL() = %v, want 0 when unset", cfg.SessionTTL())
	}
}

func TestLoadNoAdmins(t *testing.T) {
	path := writeConfig(t, `{"bot_token": "123:abc"}`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for config without admin_ids")
	}
}

func TestLoadBadJSON(t *testing.T) {
	path := writeConfig(t, `{bot_token}`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !os.IsNotExist(err) {
		t.Errorf("expected IsNotExist error, got %v", err)
	}
}
