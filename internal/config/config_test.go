package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Empty values read as unset, so this shields the test from the
	// ambient environment.
	for _, key := range []string{"PORT", "API_BASE_URL", "TOAST_DURATION_MS", "PAGE_SIZE", "FETCH_WINDOW", "EXPORT_WINDOW", "UPLOAD_LIMIT_MB"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.ToastDuration)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 50, cfg.FetchWindow)
	assert.Equal(t, 100, cfg.ExportWindow)
	assert.Equal(t, int64(5<<20), cfg.UploadLimit)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("EXPORT_WINDOW", "250")
	t.Setenv("PAGE_SIZE", "not-a-number")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 250, cfg.ExportWindow)
	assert.Equal(t, 10, cfg.PageSize, "unparsable value falls back to the default")
}
