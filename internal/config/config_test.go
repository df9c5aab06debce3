package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5001, cfg.Port)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LITECAL_API_KEY", "override-key")
	t.Setenv("LITECAL_PORT", "9090")
	t.Setenv("LITECAL_MODEL", "gemini-1.5-pro")
	t.Setenv("LITECAL_REQUEST_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "override-key", cfg.APIKey)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "gemini-1.5-pro", cfg.Model)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("LITECAL_API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}
