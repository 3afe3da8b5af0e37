package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"lg/fitness-plan-go-api/internal/planner"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv string
	Port   string

	// OpenAIAPIKey is the pre-configured secret; a per-request key overrides it.
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
	OpenAITemperature float64
	OpenAIMaxTokens   int

	PlanTimeout        time.Duration
	RateLimitPerMin    int
	CORSAllowedOrigins []string

	// AccessTokenHash is a bcrypt hash; empty disables the access gate.
	AccessTokenHash string
}

// LoadDotEnv reads .env from the working directory if present. A missing file
// is not an error.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load loads configuration from environment variables and applies defaults where needed.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "3000"),
		OpenAIAPIKey:       strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIModel:        getEnv("OPENAI_MODEL", planner.DefaultCompletionParams.Model),
		OpenAITemperature:  getEnvFloat("OPENAI_TEMPERATURE", planner.DefaultCompletionParams.Temperature),
		OpenAIMaxTokens:    getEnvInt("OPENAI_MAX_TOKENS", planner.DefaultCompletionParams.MaxTokens),
		PlanTimeout:        time.Second * time.Duration(getEnvInt("PLAN_TIMEOUT_SECONDS", 90)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 10),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AccessTokenHash:    strings.TrimSpace(os.Getenv("ACCESS_TOKEN_HASH")),
	}

	if cfg.OpenAITemperature < 0 || cfg.OpenAITemperature > 2 {
		return nil, fmt.Errorf("OPENAI_TEMPERATURE must be between 0 and 2, got %v", cfg.OpenAITemperature)
	}
	if cfg.OpenAIMaxTokens <= 0 {
		return nil, fmt.Errorf("OPENAI_MAX_TOKENS must be positive, got %d", cfg.OpenAIMaxTokens)
	}
	if cfg.PlanTimeout <= 0 {
		return nil, fmt.Errorf("PLAN_TIMEOUT_SECONDS must be positive")
	}
	if cfg.RateLimitPerMin < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative, got %d", cfg.RateLimitPerMin)
	}

	return cfg, nil
}

// CompletionParams returns the generation settings for the plan requester.
func (c *Config) CompletionParams() planner.CompletionParams {
	return planner.CompletionParams{
		Model:       c.OpenAIModel,
		Temperature: c.OpenAITemperature,
		MaxTokens:   c.OpenAIMaxTokens,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
