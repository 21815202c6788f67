package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	CatalogPath     string
	StatePath       string
	SheetURL        string
	SheetTimeout    time.Duration
	SessionKey      string
}

// FromEnv builds Config with defaults, overridden by environment variables.
// CatalogPath empty means the built-in seed catalog is used; StatePath empty
// keeps cart/session state in memory only; SheetURL empty disables order
// forwarding.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		CatalogPath:     envOrDefault("CATALOG_PATH", ""),
		StatePath:       envOrDefault("STATE_PATH", ""),
		SheetURL:        envOrDefault("SHEET_URL", ""),
		SheetTimeout:    envDuration("SHEET_TIMEOUT_SECONDS", 30*time.Second),
		SessionKey:      envOrDefault("SESSION_KEY", "zomio-dev-session-key"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
