package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("GROQ_API_KEY", "key-123")
	t.Setenv("GROQ_TIMEOUT_MS", "2500")

	cfg := Load()

	assert.Equal(t, "9999", cfg.HTTPPort)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
	assert.Equal(t, "key-123", cfg.AI.APIKey)
	assert.Equal(t, 2500, cfg.AI.TimeoutMS)
	assert.True(t, cfg.AI.IsEnabled())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("GROQ_BASE_URL", "")
	t.Setenv("GROQ_TIMEOUT_MS", "not-a-number")

	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.False(t, cfg.AI.IsEnabled())
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.AI.BaseURL)
	assert.Equal(t, 10000, cfg.AI.TimeoutMS)
}

func TestChatEndpoint(t *testing.T) {
	cfg := AIConfig{BaseURL: "http://localhost:8081/v1"}
	assert.Equal(t, "http://localhost:8081/v1/chat/completions", cfg.ChatEndpoint())
}
