package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Webhook WebhookConfig
	JWT     JWTConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// WebhookConfig holds the entity store webhook configuration. All
// persistence goes through this endpoint.
type WebhookConfig struct {
	URL     string
	Secret  string
	Timeout time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret               string
	AccessExpiration     string
	RefreshExpiration    string
	RememberMeExpiration string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, using environment variables")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	webhookTimeout, err := time.ParseDuration(getEnv("WEBHOOK_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEBHOOK_TIMEOUT: %w", err)
	}

	config.Webhook = WebhookConfig{
		URL:     getEnv("WEBHOOK_URL", ""),
		Secret:  getEnv("WEBHOOK_SECRET", ""),
		Timeout: webhookTimeout,
	}

	config.JWT = JWTConfig{
		Secret:               getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:     getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration:    getEnv("JWT_REFRESH_EXPIRATION_TIME", "24h"),
		RememberMeExpiration: getEnv("JWT_REMEMBER_ME_EXPIRATION_TIME", "720h"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Webhook.URL == "" {
		return fmt.Errorf("WEBHOOK_URL is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// LogLevel maps the configured level name onto a slog level,
// defaulting to info.
func (c *Config) LogLevel() slog.Level {
	switch c.App.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
