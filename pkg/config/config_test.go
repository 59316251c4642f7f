package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, int32(500), cfg.Gemini.MaxTokens)
	assert.Equal(t, 5*time.Minute, cfg.Site.CacheTTL)
	assert.Equal(t, 6*time.Second, cfg.Site.FetchTimeout)
	assert.Equal(t, 8000, cfg.Site.MaxChars)
	assert.Equal(t, "chatbot_kb.json", cfg.Store.ChatbotKBFile)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("WEBSITE_CACHE_TTL", "60")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DATA_DIR", "/var/lib/college-hub")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, time.Minute, cfg.Site.CacheTTL)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "/var/lib/college-hub", cfg.Store.DataDir)
}
