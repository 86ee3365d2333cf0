package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds environment configuration.
type Config struct {
	GroqAPIKey      string        `env:"GROQ_API_KEY"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	TextBaseURL     string        `env:"TEXT_API_BASE_URL"    envDefault:"https://api.groq.com/openai/v1/"`
	TextModel       string        `env:"TEXT_MODEL"           envDefault:"llama3-8b-8192"`
	TextTemperature float64       `env:"TEXT_TEMPERATURE"     envDefault:"0.1"`
	TextMaxTokens   int64         `env:"TEXT_MAX_TOKENS"      envDefault:"1000"`
	HFAPIKey        string        `env:"HF_API_KEY"`
	HFBaseURL       string        `env:"HF_API_BASE_URL"      envDefault:"https://api-inference.huggingface.co/models/"`
	Timeout         time.Duration `env:"COLLABORATOR_TIMEOUT" envDefault:"20s"`
	APIAddr         string        `env:"API_ADDR"             envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL"            envDefault:"info"`
}

// TextAPIKey is the key for the text collaborator; GROQ_API_KEY wins over OPENAI_API_KEY.
func (c Config) TextAPIKey() string {
	if c.GroqAPIKey != "" {
		return c.GroqAPIKey
	}
	return c.OpenAIAPIKey
}

// loadConfig reads .env (if present) and then the process environment.
func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("loadConfig: no .env file loaded", "error", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	slog.Debug("loadConfig: environment loaded",
		"TEXT_API_KEY_SET", cfg.TextAPIKey() != "",
		"TEXT_MODEL", cfg.TextModel,
		"HF_API_KEY_SET", cfg.HFAPIKey != "",
		"COLLABORATOR_TIMEOUT", cfg.Timeout,
		"API_ADDR", cfg.APIAddr)
	return cfg, nil
}

// parseLogLevel maps a LOG_LEVEL value to a slog level, defaulting to info.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// initializeLogger sets up structured logging on stderr so exports on stdout stay clean.
func initializeLogger(level string) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(level)}))
	slog.SetDefault(logger)
}
