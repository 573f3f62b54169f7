package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RAPIDAPI_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "reel-api", cfg.ServiceName)
	assert.Equal(t, 8290, cfg.HTTPPort)
	assert.Equal(t, ":8290", cfg.Addr())
	assert.Equal(t, "instagram-reels-downloader-api.p.rapidapi.com", cfg.RapidAPIHost)
	assert.Equal(t, "https://instagram-reels-downloader-api.p.rapidapi.com/download", cfg.RapidAPIEndpoint)
	assert.Equal(t, time.Duration(0), cfg.RapidAPITimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.HasRapidAPIKey())
}

func TestLoad_TrimsKey(t *testing.T) {
	t.Setenv("RAPIDAPI_KEY", "  secret  ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.RapidAPIKey)
	assert.True(t, cfg.HasRapidAPIKey())
}

func TestLoad_BlankKeyIsMissing(t *testing.T) {
	t.Setenv("RAPIDAPI_KEY", "   ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.HasRapidAPIKey())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port out of range", "REEL_API_PORT", "70000"},
		{"port not a number", "REEL_API_PORT", "abc"},
		{"relative endpoint", "RAPIDAPI_ENDPOINT", "/download"},
		{"empty host", "RAPIDAPI_HOST", " "},
		{"negative timeout", "RAPIDAPI_TIMEOUT", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
