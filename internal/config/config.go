package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// AuthJWKSURL is the identity provider's JWKS endpoint. Empty disables
	// auth (dev only).
	AuthJWKSURL string
	// Generation backend configuration
	GeminiAPIKey string
	DefaultModel string
	// GenerationTimeout bounds the single external generation call per action.
	GenerationTimeout time.Duration
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       env,
		CORSOrigins:       getEnv("CORS_ORIGINS", "http://localhost:3000"),
		AuthJWKSURL:       getEnv("AUTH_JWKS_URL", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		DefaultModel:      getEnv("DEFAULT_MODEL", "models/gemini-pro"),
		GenerationTimeout: getDurationSeconds("GENERATION_TIMEOUT_SECONDS", DefaultGenerationTimeout),
		// Debug flags - default to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true" // Enable DEBUG in dev/test by default
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationSeconds reads an integer number of seconds from the environment,
// falling back to the default on absence or a non-positive/unparsable value.
func getDurationSeconds(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
