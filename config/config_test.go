package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"API_BASE_URL", "BACKEND_TIMEOUT", "SERVER_PORT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS",
		"DRAFTS_DB_PATH", "APP_TIMEZONE", "DEFAULT_SCOUT_NAME", "REFRESH_SCHEDULER_ENABLED",
		"REFRESH_SCHEDULER_CRON", "R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY",
		"R2_BUCKET_NAME", "R2_PUBLIC_BASE_URL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://127.0.0.1:8000" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.BackendTimeout != 15*time.Second || cfg.ServerPort != 8080 || cfg.LogLevel != slog.LevelInfo {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Location != time.UTC {
		t.Errorf("Location = %v", cfg.Location)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.RefreshSchedulerEnabled || cfg.DefaultScoutName != "Scout" {
		t.Errorf("scheduler/scout defaults: %+v", cfg)
	}
	if cfg.R2AccountID != "" || cfg.R2BucketName != "" {
		t.Error("R2 settings should be empty")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://scouting.example.com/api/")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_TIMEZONE", "Europe/Berlin")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("REFRESH_SCHEDULER_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://scouting.example.com/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.ServerPort != 9090 || cfg.LogLevel != slog.LevelDebug {
		t.Errorf("port/level = %d/%v", cfg.ServerPort, cfg.LogLevel)
	}
	if cfg.Location.String() != "Europe/Berlin" {
		t.Errorf("Location = %v", cfg.Location)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if cfg.RefreshSchedulerEnabled {
		t.Error("scheduler should be disabled")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"SERVER_PORT":     "70000",
		"API_BASE_URL":    "not a url",
		"BACKEND_TIMEOUT": "soon",
		"APP_TIMEZONE":    "Mars/Olympus",
		"LOG_LEVEL":       "loud",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Errorf("Load accepted %s=%q", key, value)
			}
		})
	}
}
