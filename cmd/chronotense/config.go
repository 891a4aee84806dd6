package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"chronotense/internal/llm"
)

type Config struct {
	Port         string
	Env          string
	LogLevel     string
	CacheBackend string // "memory" or "redis"
	CachePrefix  string
	RedisAddr    string
	LLMProvider  string // "gemini" or "openai"
	LLMModel     string
	LLMBaseURL   string
	APIKey       string
}

// LoadConfig reads the process environment. A .env file in the working
// directory is loaded first but never overrides variables already set.
func LoadConfig() Config {
	_ = godotenv.Load()

	apiKey := strings.TrimSpace(os.Getenv("API_KEY"))
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	}

	return Config{
		Port:         getenv("PORT", "8080"),
		Env:          getenv("ENV", "production"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		CacheBackend: strings.ToLower(getenv("CACHE_BACKEND", "memory")),
		CachePrefix:  getenv("CACHE_PREFIX", "chronotense"),
		RedisAddr:    getenv("REDIS_ADDR", "127.0.0.1:6379"),
		LLMProvider:  getenv("LLM_PROVIDER", string(llm.ProviderGemini)),
		LLMModel:     getenv("LLM_MODEL", llm.DefaultModel),
		LLMBaseURL:   os.Getenv("LLM_BASE_URL"),
		APIKey:       apiKey,
	}
}

// getenv returns the value of the environment variable key or def if not set.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
