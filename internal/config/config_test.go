package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	return &Config{
		DataBackend:    "file",
		SQLiteDBPath:   filepath.Join(dir, "lifedash.db"),
		DataFilePath:   filepath.Join(dir, "appdata.json"),
		AMQPURL:        "",
		AMQPExchange:   "lifedash",
		AMQPQueue:      "document_saved",
		BackupDir:      filepath.Join(dir, "backups"),
		BackupKeep:     14,
		MirrorInterval: time.Hour,
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := validConfig(t)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateBackends(t *testing.T) {
	for _, backend := range []string{"file", "sqlite", "memory"} {
		cfg := validConfig(t)
		cfg.DataBackend = backend
		if err := cfg.Validate(); err != nil {
			t.Fatalf("backend %s should validate: %v", backend, err)
		}
	}

	cfg := validConfig(t)
	cfg.DataBackend = "postgres"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "invalid data backend") {
		t.Fatalf("expected backend rejection, got %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty sqlite path", func(c *Config) { c.DataBackend = "sqlite"; c.SQLiteDBPath = "" }, "SQLite database path"},
		{"empty file path", func(c *Config) { c.DataFilePath = "" }, "data file path"},
		{"bad amqp scheme", func(c *Config) { c.AMQPURL = "http://localhost" }, "AMQP URL scheme"},
		{"empty exchange", func(c *Config) { c.AMQPURL = "amqp://localhost"; c.AMQPExchange = "" }, "exchange"},
		{"empty queue", func(c *Config) { c.AMQPURL = "amqp://localhost"; c.AMQPQueue = "" }, "queue"},
		{"empty backup dir", func(c *Config) { c.BackupDir = "" }, "backup directory"},
		{"zero keep", func(c *Config) { c.BackupKeep = 0 }, "backup keep count"},
		{"huge keep", func(c *Config) { c.BackupKeep = 5000 }, "backup keep count"},
		{"tiny interval", func(c *Config) { c.MirrorInterval = time.Second }, "mirror interval"},
		{"huge interval", func(c *Config) { c.MirrorInterval = 30 * 24 * time.Hour }, "mirror interval"},
	}
	for _, tc := range cases {
		cfg := validConfig(t)
		tc.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error should mention %q, got %v", tc.name, tc.want, err)
		}
	}
}

func TestValidateAggregatesErrors(t *testing.T) {
	cfg := validConfig(t)
	cfg.DataBackend = "nope"
	cfg.BackupKeep = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "invalid data backend") || !strings.Contains(err.Error(), "backup keep count") {
		t.Fatalf("expected both problems reported, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DATA_BACKEND", "SQLITE_DB_PATH", "DATA_FILE_PATH",
		"AMQP_URL", "AMQP_EXCHANGE", "AMQP_QUEUE",
		"BACKUP_DIR", "BACKUP_KEEP", "MIRROR_INTERVAL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.DataBackend != "file" {
		t.Fatalf("default backend: got %s", cfg.DataBackend)
	}
	if cfg.AMQPURL != "" {
		t.Fatalf("AMQP must default to disabled, got %s", cfg.AMQPURL)
	}
	if cfg.BackupKeep != 14 {
		t.Fatalf("default keep: got %d", cfg.BackupKeep)
	}
	if cfg.MirrorInterval != time.Hour {
		t.Fatalf("default interval: got %v", cfg.MirrorInterval)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("BACKUP_KEEP", "30")
	t.Setenv("MIRROR_INTERVAL", "15m")

	cfg := Load()
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("backend: got %s", cfg.DataBackend)
	}
	if cfg.BackupKeep != 30 {
		t.Fatalf("keep: got %d", cfg.BackupKeep)
	}
	if cfg.MirrorInterval != 15*time.Minute {
		t.Fatalf("interval: got %v", cfg.MirrorInterval)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("BACKUP_KEEP", "many")
	t.Setenv("MIRROR_INTERVAL", "soon")

	cfg := Load()
	if cfg.BackupKeep != 14 || cfg.MirrorInterval != time.Hour {
		t.Fatalf("malformed values must fall back to defaults: %d, %v", cfg.BackupKeep, cfg.MirrorInterval)
	}
}
