package config

import (
	"reflect"
	"testing"
	"time"
)

// clearEnv blanks every key Load reads so host settings don't leak in.
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "PORT", "OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL",
		"OPENAI_TEMPERATURE", "OPENAI_MAX_TOKENS", "PLAN_TIMEOUT_SECONDS",
		"RATE_LIMIT_PER_MINUTE", "CORS_ALLOWED_ORIGINS", "ACCESS_TOKEN_HASH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "3000" || cfg.AppEnv != "development" {
		t.Errorf("Port/AppEnv = %q/%q", cfg.Port, cfg.AppEnv)
	}
	params := cfg.CompletionParams()
	if params.Model != "gpt-3.5-turbo" || params.Temperature != 0.7 || params.MaxTokens != 2000 {
		t.Errorf("CompletionParams = %+v", params)
	}
	if cfg.PlanTimeout != 90*time.Second {
		t.Errorf("PlanTimeout = %v", cfg.PlanTimeout)
	}
	if cfg.RateLimitPerMin != 10 {
		t.Errorf("RateLimitPerMin = %d", cfg.RateLimitPerMin)
	}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, []string{"*"}) {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if cfg.OpenAIAPIKey != "" || cfg.AccessTokenHash != "" {
		t.Errorf("expected empty secrets, got %q / %q", cfg.OpenAIAPIKey, cfg.AccessTokenHash)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8088")
	t.Setenv("OPENAI_API_KEY", " sk-live ")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_TEMPERATURE", "0.2")
	t.Setenv("OPENAI_MAX_TOKENS", "1500")
	t.Setenv("PLAN_TIMEOUT_SECONDS", "30")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8088" || cfg.OpenAIAPIKey != "sk-live" {
		t.Errorf("Port/OpenAIAPIKey = %q/%q", cfg.Port, cfg.OpenAIAPIKey)
	}
	params := cfg.CompletionParams()
	if params.Model != "gpt-4o-mini" || params.Temperature != 0.2 || params.MaxTokens != 1500 {
		t.Errorf("CompletionParams = %+v", params)
	}
	if cfg.PlanTimeout != 30*time.Second {
		t.Errorf("PlanTimeout = %v", cfg.PlanTimeout)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, want) {
		t.Errorf("CORSAllowedOrigins = %v, want %v", cfg.CORSAllowedOrigins, want)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"OPENAI_TEMPERATURE":    "2.5",
		"OPENAI_MAX_TOKENS":     "0",
		"PLAN_TIMEOUT_SECONDS":  "-1",
		"RATE_LIMIT_PER_MINUTE": "-5",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", key, val)
			}
		})
	}
}
