package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AIConfig holds the Groq API configuration
type AIConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	Model     string `json:"model"`
	TimeoutMS int    `json:"timeoutMs"`
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ChatEndpoint returns the chat-completions endpoint
func (c *AIConfig) ChatEndpoint() string {
	return c.BaseURL + "/chat/completions"
}

// Config holds all service configuration
type Config struct {
	HTTPPort string
	MongoURI string
	RedisURI string
	DataDir  string
	AI       AIConfig
}

// Load reads configuration from a local .env file (if present) and the
// environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort: getEnvOrDefault("PORT", "8080"),
		MongoURI: getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		RedisURI: getEnvOrDefault("REDIS_URI", "localhost:6379"),
		DataDir:  getEnvOrDefault("INTERVIEWFLOW_DATA_DIR", "data"),
		AI: AIConfig{
			APIKey:    os.Getenv("GROQ_API_KEY"),
			BaseURL:   getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:     getEnvOrDefault("GROQ_MODEL", "llama-3.3-70b-versatile"),
			TimeoutMS: getEnvIntOrDefault("GROQ_TIMEOUT_MS", 10000),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}
