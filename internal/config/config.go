// Package config loads, validates and saves the tripplan configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override. A double underscore
// separates nested keys: TRIPPLAN_LLM__MODEL sets llm.model.
const EnvPrefix = "TRIPPLAN_"

// LoadDotEnv loads variables from the given .env files (default ".env") into
// the process environment. Missing files are ignored; variables already set
// win over the file.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (TRIPPLAN_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: TRIPPLAN_LLM__MODEL -> llm.model, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validProviders is the set of recognized provider values.
var validProviders = map[ProviderType]bool{
	ProviderDeepSeek:   true,
	ProviderOpenAI:     true,
	ProviderOpenRouter: true,
}

// validSearchProviders is the set of recognized search provider values.
var validSearchProviders = map[SearchProviderType]bool{
	SearchDuckDuckGo: true,
	SearchTavily:     true,
}

// validRenderers is the set of recognized renderer values.
var validRenderers = map[string]bool{
	"subset":   true,
	"goldmark": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("backend_url is required")
	}
	u, err := url.Parse(c.BackendURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid backend_url %q: must be an http(s) URL", c.BackendURL)
	}

	if c.PlanTimeout <= 0 {
		return fmt.Errorf("plan_timeout must be positive")
	}

	if !validRenderers[c.Renderer] {
		return fmt.Errorf("invalid renderer %q: must be one of subset, goldmark", c.Renderer)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}

	if !validProviders[c.LLM.Provider] {
		return fmt.Errorf("invalid llm.provider %q: must be one of deepseek, openai, openrouter", c.LLM.Provider)
	}

	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	if c.LLM.MaxTokens < 0 {
		return fmt.Errorf("llm.max_tokens must be non-negative")
	}

	if c.LLM.RPM < 0 {
		return fmt.Errorf("llm.rpm must be non-negative")
	}

	if !validSearchProviders[c.Search.Provider] {
		return fmt.Errorf("invalid search.provider %q: must be one of duckduckgo, tavily", c.Search.Provider)
	}

	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be positive")
	}

	return nil
}

// APIKeyEnvVar returns the conventional environment variable name for
// the API key of the given provider.
func APIKeyEnvVar(provider ProviderType) string {
	switch provider {
	case ProviderDeepSeek:
		return "DEEPSEEK_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderOpenRouter:
		return "OPENROUTER_API_KEY"
	default:
		return ""
	}
}

// SearchAPIKeyEnvVar returns the environment variable holding the API key of
// a search provider, or "" if it needs none.
func SearchAPIKeyEnvVar(provider SearchProviderType) string {
	if provider == SearchTavily {
		return "TAVILY_API_KEY"
	}
	return ""
}
