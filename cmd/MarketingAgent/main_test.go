package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tidwall/gjson"

	"github.com/tushararora-dev/Marketing-Creating-Agent/internal/brief"
)

// clearCollaboratorEnv makes sure no real credentials leak into a test.
func clearCollaboratorEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GROQ_API_KEY", "OPENAI_API_KEY", "HF_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearCollaboratorEnv(t)
	for _, k := range []string{"TEXT_API_BASE_URL", "TEXT_MODEL", "TEXT_TEMPERATURE", "TEXT_MAX_TOKENS",
		"HF_API_BASE_URL", "COLLABORATOR_TIMEOUT", "API_ADDR", "LOG_LEVEL"} {
		os.Unsetenv(k)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.TextModel != "llama3-8b-8192" {
		t.Errorf("expected default model, got %q", cfg.TextModel)
	}
	if cfg.TextBaseURL != "https://api.groq.com/openai/v1/" {
		t.Errorf("unexpected base URL %q", cfg.TextBaseURL)
	}
	if cfg.TextTemperature != 0.1 || cfg.TextMaxTokens != 1000 {
		t.Errorf("unexpected sampling defaults: %v %v", cfg.TextTemperature, cfg.TextMaxTokens)
	}
	if cfg.Timeout != 20*time.Second {
		t.Errorf("expected 20s timeout, got %v", cfg.Timeout)
	}
	if cfg.APIAddr != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.APIAddr)
	}
	if cfg.TextAPIKey() != "" {
		t.Errorf("expected no text API key")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	clearCollaboratorEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("COLLABORATOR_TIMEOUT", "5s")
	t.Setenv("TEXT_MODEL", "llama-3.1-8b-instant")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.TextAPIKey() != "sk-openai" {
		t.Errorf("expected OPENAI_API_KEY fallback, got %q", cfg.TextAPIKey())
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.Timeout)
	}

	t.Setenv("GROQ_API_KEY", "gsk-groq")
	cfg, _ = loadConfig()
	if cfg.TextAPIKey() != "gsk-groq" {
		t.Errorf("expected GROQ_API_KEY to win, got %q", cfg.TextAPIKey())
	}
	if n := len(buildGenAIOptions(cfg)); n != 5 {
		t.Errorf("expected 5 genai options, got %d", n)
	}
}

func TestLoadConfigInvalidTimeout(t *testing.T) {
	t.Setenv("COLLABORATOR_TIMEOUT", "soon")
	if _, err := loadConfig(); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestResolveLogLevel(t *testing.T) {
	cfg := Config{LogLevel: "warn"}
	if got := resolveLogLevel("", cfg); got != "warn" {
		t.Errorf("expected config level, got %q", got)
	}
	if got := resolveLogLevel("debug", cfg); got != "debug" {
		t.Errorf("expected flag to win, got %q", got)
	}
}

func TestLogLevelFromDotEnv(t *testing.T) {
	clearCollaboratorEnv(t)
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	// Registered for restore, then removed so godotenv is allowed to set it.
	t.Setenv("LOG_LEVEL", "info")
	os.Unsetenv("LOG_LEVEL")

	root := newRootCmd(&bytes.Buffer{})
	root.SetArgs([]string{"generate", "Welcome series email campaign", "--no-visuals",
		"--out", filepath.Join(dir, "campaign.json")})
	if err := root.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected LOG_LEVEL from .env to enable debug logging")
	}
}

func TestGenerateCommandWritesCSV(t *testing.T) {
	clearCollaboratorEnv(t)
	out := filepath.Join(t.TempDir(), "campaign.csv")

	root := newRootCmd(&bytes.Buffer{})
	root.SetArgs([]string{"generate", "Welcome series email campaign",
		"--brand-name", "Glow", "--emails", "3", "--sms", "1", "--no-visuals",
		"--format", "csv", "--out", out, "--log-level", "error"})
	if err := root.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if records[1][1] != "welcome_series" {
		t.Errorf("expected welcome_series, got %q", records[1][1])
	}
	if !strings.Contains(string(data), "email_3") {
		t.Errorf("expected three emails in flow logic section")
	}
}

func TestGenerateCommandStdoutJSON(t *testing.T) {
	clearCollaboratorEnv(t)
	var stdout bytes.Buffer

	root := newRootCmd(&stdout)
	root.SetArgs([]string{"generate", "Cart abandonment sms and email campaign", "--type", "win_back",
		"--sms", "0", "--no-visuals", "--log-level", "error"})
	if err := root.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	doc := gjson.ParseBytes(stdout.Bytes())
	if got := doc.Get("campaign_type").String(); got != "win_back" {
		t.Errorf("expected win_back, got %q", got)
	}
	if got := doc.Get("metadata.total_emails").Int(); got != brief.DefaultEmailCount {
		t.Errorf("expected %d emails, got %d", brief.DefaultEmailCount, got)
	}
	if got := doc.Get("metadata.total_sms").Int(); got != 0 {
		t.Errorf("expected no sms, got %d", got)
	}
}

func TestGenerateCommandRejectsBrief(t *testing.T) {
	clearCollaboratorEnv(t)
	root := newRootCmd(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"generate", "too short", "--log-level", "error"})

	err := root.Execute()
	if !errors.Is(err, brief.ErrBriefTooShort) {
		t.Fatalf("expected ErrBriefTooShort, got %v", err)
	}
}

func TestGenerateCommandRejectsFormat(t *testing.T) {
	root := newRootCmd(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"generate", "Welcome email series", "--format", "xml", "--log-level", "error"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected unsupported format error")
	}
}
