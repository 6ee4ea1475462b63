package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting of the application.
type Config struct {
	APIBaseURL     string
	BackendTimeout time.Duration
	ServerPort     int
	LogLevel       slog.Level

	CORSAllowedOrigins []string
	DraftsDBPath       string
	Location           *time.Location
	DefaultScoutName   string

	RefreshSchedulerEnabled bool
	RefreshSchedulerCron    string

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	baseURL := getenv("API_BASE_URL", "http://127.0.0.1:8000")
	if u, err := url.Parse(baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API_BASE_URL %q", baseURL)
	}

	timeout, err := time.ParseDuration(getenv("BACKEND_TIMEOUT", "15s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT environment variable: %q", os.Getenv("BACKEND_TIMEOUT"))
	}

	port, err := strconv.Atoi(getenv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getenv("LOG_LEVEL", "INFO"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
	}

	loc, err := time.LoadLocation(getenv("APP_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE environment variable: %w", err)
	}

	schedulerEnabled := true
	if v := os.Getenv("REFRESH_SCHEDULER_ENABLED"); v != "" {
		schedulerEnabled, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REFRESH_SCHEDULER_ENABLED environment variable: %w", err)
		}
	}

	cfg := &Config{
		APIBaseURL:              strings.TrimRight(baseURL, "/"),
		BackendTimeout:          timeout,
		ServerPort:              port,
		LogLevel:                level,
		CORSAllowedOrigins:      splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
		DraftsDBPath:            getenv("DRAFTS_DB_PATH", "data/drafts.db"),
		Location:                loc,
		DefaultScoutName:        getenv("DEFAULT_SCOUT_NAME", "Scout"),
		RefreshSchedulerEnabled: schedulerEnabled,
		RefreshSchedulerCron:    getenv("REFRESH_SCHEDULER_CRON", "*/5 * * * *"),
		R2AccountID:             os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:           os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:       os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:            os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:         os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
