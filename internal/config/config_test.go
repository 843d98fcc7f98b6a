package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PlanTimeout != 120*time.Second {
		t.Errorf("expected default plan_timeout 120s, got %v", cfg.PlanTimeout)
	}
	if cfg.LLM.Provider != ProviderDeepSeek {
		t.Errorf("expected default provider %q, got %q", ProviderDeepSeek, cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "deepseek-chat" {
		t.Errorf("expected default model deepseek-chat, got %q", cfg.LLM.Model)
	}
	if cfg.LLM.MaxTokens != 2000 || cfg.LLM.Temperature != 0.7 {
		t.Errorf("unexpected llm defaults: %+v", cfg.LLM)
	}
	if cfg.Search.Provider != SearchDuckDuckGo {
		t.Errorf("expected default search provider %q, got %q", SearchDuckDuckGo, cfg.Search.Provider)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tripplan.yml")

	original := DefaultConfig()
	original.BackendURL = "https://plans.example.com"
	original.PlanTimeout = 90 * time.Second
	original.Renderer = "goldmark"
	original.LLM.Provider = ProviderOpenAI
	original.LLM.Model = "gpt-4o"
	original.LLM.Timeout = 45 * time.Second
	original.Search.Provider = SearchTavily
	original.Search.MaxResults = 8

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.BackendURL != original.BackendURL {
		t.Errorf("backend_url: got %q, want %q", loaded.BackendURL, original.BackendURL)
	}
	if loaded.PlanTimeout != original.PlanTimeout {
		t.Errorf("plan_timeout: got %v, want %v", loaded.PlanTimeout, original.PlanTimeout)
	}
	if loaded.Renderer != original.Renderer {
		t.Errorf("renderer: got %q, want %q", loaded.Renderer, original.Renderer)
	}
	if loaded.LLM.Provider != original.LLM.Provider {
		t.Errorf("llm.provider: got %q, want %q", loaded.LLM.Provider, original.LLM.Provider)
	}
	if loaded.LLM.Model != original.LLM.Model {
		t.Errorf("llm.model: got %q, want %q", loaded.LLM.Model, original.LLM.Model)
	}
	if loaded.LLM.Timeout != original.LLM.Timeout {
		t.Errorf("llm.timeout: got %v, want %v", loaded.LLM.Timeout, original.LLM.Timeout)
	}
	if loaded.Search != original.Search {
		t.Errorf("search: got %+v, want %+v", loaded.Search, original.Search)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.BackendURL != DefaultConfig().BackendURL {
		t.Errorf("expected default backend_url, got %q", cfg.BackendURL)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("TRIPPLAN_BACKEND_URL", "http://10.0.0.5:8080")
	t.Setenv("TRIPPLAN_LLM__MODEL", "deepseek-reasoner")
	t.Setenv("TRIPPLAN_LLM__MAX_TOKENS", "3000")
	t.Setenv("TRIPPLAN_PLAN_TIMEOUT", "3m")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.BackendURL != "http://10.0.0.5:8080" {
		t.Errorf("backend_url override failed: got %q", loaded.BackendURL)
	}
	if loaded.LLM.Model != "deepseek-reasoner" {
		t.Errorf("nested model override failed: got %q", loaded.LLM.Model)
	}
	if loaded.LLM.MaxTokens != 3000 {
		t.Errorf("nested max_tokens override failed: got %d", loaded.LLM.MaxTokens)
	}
	if loaded.PlanTimeout != 3*time.Minute {
		t.Errorf("duration override failed: got %v", loaded.PlanTimeout)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("TRIPPLAN_TEST_DOTENV=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TRIPPLAN_TEST_DOTENV", "")
	os.Unsetenv("TRIPPLAN_TEST_DOTENV")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("TRIPPLAN_TEST_DOTENV"); got != "from-file" {
		t.Errorf("expected value from .env, got %q", got)
	}

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty backend", func(c *Config) { c.BackendURL = "" }},
		{"relative backend", func(c *Config) { c.BackendURL = "/api" }},
		{"zero timeout", func(c *Config) { c.PlanTimeout = 0 }},
		{"renderer", func(c *Config) { c.Renderer = "pandoc" }},
		{"port", func(c *Config) { c.Server.Port = 70000 }},
		{"provider", func(c *Config) { c.LLM.Provider = "invalid" }},
		{"temperature", func(c *Config) { c.LLM.Temperature = 3 }},
		{"rpm", func(c *Config) { c.LLM.RPM = -1 }},
		{"search provider", func(c *Config) { c.Search.Provider = "bing" }},
		{"max results", func(c *Config) { c.Search.MaxResults = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	if got := APIKeyEnvVar(ProviderDeepSeek); got != "DEEPSEEK_API_KEY" {
		t.Errorf("got %q", got)
	}
	if got := SearchAPIKeyEnvVar(SearchDuckDuckGo); got != "" {
		t.Errorf("duckduckgo needs no key, got %q", got)
	}
	if got := SearchAPIKeyEnvVar(SearchTavily); got != "TAVILY_API_KEY" {
		t.Errorf("got %q", got)
	}
}
