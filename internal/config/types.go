package config

import "time"

// ProviderType identifies an OpenAI-compatible LLM provider.
type ProviderType string

const (
	ProviderDeepSeek   ProviderType = "deepseek"
	ProviderOpenAI     ProviderType = "openai"
	ProviderOpenRouter ProviderType = "openrouter"
)

// SearchProviderType identifies a web search backend.
type SearchProviderType string

const (
	SearchDuckDuckGo SearchProviderType = "duckduckgo"
	SearchTavily     SearchProviderType = "tavily"
)

// Config is the top-level tripplan configuration, corresponding to .tripplan.yml.
type Config struct {
	BackendURL  string        `yaml:"backend_url" koanf:"backend_url"`
	PlanTimeout time.Duration `yaml:"plan_timeout" koanf:"plan_timeout"`
	Renderer    string        `yaml:"renderer" koanf:"renderer"`
	Debug       bool          `yaml:"debug" koanf:"debug"`
	Server      ServerConfig  `yaml:"server" koanf:"server"`
	LLM         LLMConfig     `yaml:"llm" koanf:"llm"`
	Search      SearchConfig  `yaml:"search" koanf:"search"`
}

// ServerConfig holds settings for `tripplan serve`.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	// Backend mounts the reference plan/search endpoints next to the web form.
	Backend bool `yaml:"backend" koanf:"backend"`
}

// LLMConfig selects the model that writes plans and search summaries.
type LLMConfig struct {
	Provider    ProviderType  `yaml:"provider" koanf:"provider"`
	Model       string        `yaml:"model" koanf:"model"`
	BaseURL     string        `yaml:"base_url" koanf:"base_url"`
	Temperature float64       `yaml:"temperature" koanf:"temperature"`
	MaxTokens   int           `yaml:"max_tokens" koanf:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout" koanf:"timeout"`
	RPM         int           `yaml:"rpm" koanf:"rpm"`
}

// SearchConfig selects the web search backend.
type SearchConfig struct {
	Provider   SearchProviderType `yaml:"provider" koanf:"provider"`
	MaxResults int                `yaml:"max_results" koanf:"max_results"`
}
