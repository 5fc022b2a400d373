package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the web frontend needs from the environment.
// The portal API itself is configured and owned elsewhere; we only need
// its base URL.
type Config struct {
	Port          string
	APIBaseURL    string
	SessionSecret string
	TemplateGlob  string
	ToastDuration time.Duration
	PageSize      int
	FetchWindow   int
	// ExportWindow bounds the CSV export fetch; exports span full
	// date ranges, so it is wider than the per-page window.
	ExportWindow int
	UploadLimit  int64
}

func Load() *Config {
	cfg := &Config{
		Port:          getenv("PORT", "3000"),
		APIBaseURL:    getenv("API_BASE_URL", "http://localhost:8000/api/v1"),
		SessionSecret: getenv("SESSION_SECRET", "dev-only-session-secret"),
		TemplateGlob:  getenv("TEMPLATE_GLOB", "web/templates/*.tmpl"),
		ToastDuration: time.Duration(getenvInt("TOAST_DURATION_MS", 3000)) * time.Millisecond,
		PageSize:      getenvInt("PAGE_SIZE", 10),
		FetchWindow:   getenvInt("FETCH_WINDOW", 50),
		ExportWindow:  getenvInt("EXPORT_WINDOW", 100),
		UploadLimit:   int64(getenvInt("UPLOAD_LIMIT_MB", 5)) << 20,
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
