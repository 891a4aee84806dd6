package main

import (
	"bytes"
	"strings"
	"testing"

	"chronotense/internal/content"
	"chronotense/internal/llm"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "ENV", "LOG_LEVEL", "CACHE_BACKEND", "CACHE_PREFIX", "REDIS_ADDR",
		"LLM_PROVIDER", "LLM_MODEL", "LLM_BASE_URL", "API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfig()
	if cfg.Port != "8080" || cfg.CacheBackend != "memory" || cfg.CachePrefix != "chronotense" {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.LLMProvider != string(llm.ProviderGemini) || cfg.LLMModel != llm.DefaultModel {
		t.Fatalf("unexpected provider defaults: %#v", cfg)
	}
	if cfg.APIKey != "" {
		t.Fatalf("expected no api key, got %q", cfg.APIKey)
	}
}

func TestLoadConfigAPIKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "legacy")

	if got := LoadConfig().APIKey; got != "legacy" {
		t.Fatalf("expected GEMINI_API_KEY fallback, got %q", got)
	}

	t.Setenv("API_KEY", " primary ")
	if got := LoadConfig().APIKey; got != "primary" {
		t.Fatalf("expected API_KEY to win, got %q", got)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CACHE_BACKEND", "Redis")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_BASE_URL", "http://localhost:11434")

	cfg := LoadConfig()
	if cfg.CacheBackend != "redis" || cfg.LLMProvider != "openai" || cfg.LLMBaseURL != "http://localhost:11434" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTensesCommand(t *testing.T) {
	out, err := runCmd(t, "tenses")
	if err != nil {
		t.Fatalf("tenses: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 13 {
		t.Fatalf("expected header plus 12 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Past Perfect Continuous") {
		t.Fatalf("expected timeline order, first row %q", lines[1])
	}
	if !strings.Contains(lines[12], "Future Perfect Continuous") {
		t.Fatalf("expected timeline order, last row %q", lines[12])
	}
}

func TestLevelCommandWithoutKeyPrintsFallbackDigest(t *testing.T) {
	clearEnv(t)

	out, err := runCmd(t, "level", "--level", "b2")
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	if !strings.Contains(out, "CEFR Level B2") || !strings.Contains(out, "Future Perfect Continuous") {
		t.Fatalf("unexpected digest:\n%s", out)
	}
}

func TestLevelCommandRejectsUnknownLevel(t *testing.T) {
	clearEnv(t)

	if _, err := runCmd(t, "level", "--level", "D1"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestExampleCommandWithoutKey(t *testing.T) {
	clearEnv(t)

	out, err := runCmd(t, "example", "--level", "A1", "--tense", "Simple Past", "--current", "I walked.")
	if err != nil {
		t.Fatalf("example: %v", err)
	}
	if strings.TrimSpace(out) != content.MissingKeyMessage {
		t.Fatalf("unexpected output %q", out)
	}
}
