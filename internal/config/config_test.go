package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ATTEND_STORAGE_BACKEND", "")
	t.Setenv("ATTEND_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("backend = %q, want sqlite", cfg.Storage.Backend)
	}
	if cfg.Tracker.DefaultRequiredAttendance != 75 {
		t.Errorf("default required = %d, want 75", cfg.Tracker.DefaultRequiredAttendance)
	}
	if cfg.Tracker.ReminderLead != 15*time.Minute {
		t.Errorf("reminder lead = %v", cfg.Tracker.ReminderLead)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
storage:
  backend: redis
  redis:
    addr: cache:6379
    key_prefix: "me:"
logging:
  level: debug
tracker:
  default_required_attendance: 80
  reminder_lead: 10m
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ATTEND_STORAGE_BACKEND", "")
	t.Setenv("ATTEND_LOG_LEVEL", "error")
	t.Setenv("ATTEND_REDIS_DB", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"backend", cfg.Storage.Backend, BackendRedis},
		{"redis addr", cfg.Storage.Redis.Addr, "cache:6379"},
		{"redis prefix", cfg.Storage.Redis.KeyPrefix, "me:"},
		{"redis db from env", cfg.Storage.Redis.DB, 3},
		{"log level from env", cfg.Logging.Level, "error"},
		{"log format default kept", cfg.Logging.Format, "console"},
		{"required", cfg.Tracker.DefaultRequiredAttendance, 80},
		{"lead", cfg.Tracker.ReminderLead, 10 * time.Minute},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown backend", "storage:\n  backend: floppy\n"},
		{"required over 100", "tracker:\n  default_required_attendance: 120\n"},
		{"not yaml", "storage: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			t.Setenv("ATTEND_STORAGE_BACKEND", "")
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
