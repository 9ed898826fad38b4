package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_TEMPERATURE",
		"GEMINI_BASE_URL", "MAX_FILE_SIZE", "MAX_CONCURRENT_ANALYSES",
		"ANALYSIS_TIMEOUT", "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, PlaceholderAPIKey, cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.InDelta(t, 0.3, cfg.Gemini.Temperature, 0.0001)
	assert.Empty(t, cfg.Gemini.BaseURL)
	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSize)
	assert.Equal(t, 4, cfg.Analysis.MaxConcurrent)
	assert.Equal(t, time.Duration(0), cfg.Analysis.Timeout)
	assert.Equal(t, 10, cfg.RateLimit.Max)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMINI_TEMPERATURE", "0.7")
	t.Setenv("MAX_CONCURRENT_ANALYSES", "2")
	t.Setenv("ANALYSIS_TIMEOUT", "45s")
	t.Setenv("RATE_LIMIT_WINDOW", "not-a-duration")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "secret", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.InDelta(t, 0.7, cfg.Gemini.Temperature, 0.0001)
	assert.Equal(t, 2, cfg.Analysis.MaxConcurrent)
	assert.Equal(t, 45*time.Second, cfg.Analysis.Timeout)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestGetEnvAsInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))
}
