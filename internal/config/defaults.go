package config

import "time"

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".tripplan.yml"

// defaultModels maps each provider to the model used when none is configured.
var defaultModels = map[ProviderType]string{
	ProviderDeepSeek:   "deepseek-chat",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderOpenRouter: "deepseek/deepseek-chat",
}

// defaultBaseURLs maps each provider to its OpenAI-compatible API root.
var defaultBaseURLs = map[ProviderType]string{
	ProviderDeepSeek:   "https://api.deepseek.com",
	ProviderOpenAI:     "https://api.openai.com/v1",
	ProviderOpenRouter: "https://openrouter.ai/api/v1",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BackendURL:  "http://localhost:5000",
		PlanTimeout: 120 * time.Second,
		Renderer:    "subset",
		Server: ServerConfig{
			Port:            5000,
			AllowAllOrigins: true,
			Backend:         true,
		},
		LLM: LLMConfig{
			Provider:    ProviderDeepSeek,
			Model:       defaultModels[ProviderDeepSeek],
			Temperature: 0.7,
			MaxTokens:   2000,
			Timeout:     60 * time.Second,
			RPM:         30,
		},
		Search: SearchConfig{
			Provider:   SearchDuckDuckGo,
			MaxResults: 5,
		},
	}
}

// DefaultModel returns the default model for a provider.
func DefaultModel(provider ProviderType) string {
	return defaultModels[provider]
}

// DefaultBaseURL returns the default API root for a provider.
func DefaultBaseURL(provider ProviderType) string {
	return defaultBaseURLs[provider]
}
