package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	ServerAddr string `validate:"required"`
	LogLevel   string `validate:"omitempty,oneof=debug info warn error"`
	OutputRoot string `validate:"required"`
	DataRoot   string `validate:"required"`
	APIKeys    string `validate:"required"`

	CORSOrigins string

	GoogleMapsAPIKey string  `validate:"required"`
	StreetViewURL    string  `validate:"omitempty,url"`
	StreetViewRPS    float64 `validate:"gte=0"`

	GeminiAPIKey     string
	GeminiModel      string
	OpenRouterAPIKey string
	OpenRouterModel  string
	OpenRouterURL    string `validate:"omitempty,url"`
	CaptionTimeout   time.Duration

	DatabaseDSN string `validate:"required"`

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ImageCacheTTL time.Duration
}

func LoadConfig() *Config {
	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		OutputRoot: getEnv("OUTPUT_ROOT", "./output"),
		DataRoot:   getEnv("DATA_ROOT", "./data"),
		APIKeys:    getEnv("API_KEYS", ""),

		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		GoogleMapsAPIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		StreetViewURL:    getEnv("STREETVIEW_URL", ""),
		StreetViewRPS:    getEnvFloat("STREETVIEW_RPS", 0),

		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL_NAME", "gemini-2.5-pro"),
		OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterModel:  getEnv("OPENROUTER_MODEL", ""),
		OpenRouterURL:    getEnv("OPENROUTER_URL", "https://openrouter.ai/api/v1/chat/completions"),
		CaptionTimeout:   getEnvDuration("CAPTION_TIMEOUT", 0),

		DatabaseDSN: getEnv("DATABASE_DSN", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		ImageCacheTTL: getEnvDuration("IMAGE_CACHE_TTL", 24*time.Hour),
	}
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ProvideConfig loads and validates the environment configuration.
func ProvideConfig() (*Config, error) {
	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
