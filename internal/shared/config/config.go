package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds application configuration.
type Config struct {
	Port                  string        `validate:"required"`
	Env                   string        `validate:"oneof=dev local staging production"`
	CORSAllowOrigin       []string      `validate:"min=1"`
	LLMProvider           string        `validate:"oneof=openai gemini"`
	LLMModel              string        `validate:"required"`
	LLMTemperature        float32       `validate:"gte=0,lte=2"`
	LLMTimeout            time.Duration `validate:"gt=0"`
	OpenAIAPIKey          string        `validate:"required_if=LLMProvider openai"`
	OpenAIBaseURL         string        `validate:"omitempty,url"`
	GeminiAPIKey          string        `validate:"required_if=LLMProvider gemini"`
	MaxUploadBytes        int64         `validate:"gt=0"`
	ExtractMaxConcurrency int64         `validate:"gt=0"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	provider := normalizeProvider(getEnv("LLM_PROVIDER", ProviderOpenAI))

	return Config{
		Port:                  getEnv("PORT", "8000"),
		Env:                   normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin:       splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		LLMProvider:           provider,
		LLMModel:              getEnv("LLM_MODEL", defaultModel(provider)),
		LLMTemperature:        float32(getFloat("LLM_TEMPERATURE", 0.7)),
		LLMTimeout:            time.Duration(getInt("LLM_TIMEOUT_SECONDS", 120)) * time.Second,
		OpenAIAPIKey:          getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:         getEnv("OPENAI_BASE_URL", ""),
		GeminiAPIKey:          firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY"),
		MaxUploadBytes:        getInt("MAX_UPLOAD_BYTES", 10<<20),
		ExtractMaxConcurrency: getInt("EXTRACT_MAX_CONCURRENCY", 4),
	}
}

// Validate checks the configuration using its struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if val := strings.TrimSpace(os.Getenv(k)); val != "" {
			return val
		}
	}
	return ""
}

func getInt(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return parsed
}

func getFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "gemini", "google":
		return ProviderGemini
	case "openai":
		return ProviderOpenAI
	default:
		return strings.ToLower(strings.TrimSpace(raw))
	}
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return "gemini-2.5-flash"
	}
	return "gpt-4o"
}
