package llm

import (
	"fmt"
	"os"
)

// providerEndpoints maps each supported provider to its API key variable and
// default base URL.
var providerEndpoints = map[string]struct {
	keyEnv  string
	baseURL string
}{
	"deepseek":   {keyEnv: "DEEPSEEK_API_KEY", baseURL: "https://api.deepseek.com"},
	"openai":     {keyEnv: "OPENAI_API_KEY", baseURL: ""},
	"openrouter": {keyEnv: "OPENROUTER_API_KEY", baseURL: "https://openrouter.ai/api/v1"},
}

// NewProvider creates a new LLM provider based on the given provider type and
// model. baseURL overrides the provider's default API root when set.
// Supported provider types: "deepseek", "openai", "openrouter".
func NewProvider(providerType, model, baseURL string) (Provider, error) {
	ep, ok := providerEndpoints[providerType]
	if !ok {
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}

	apiKey := os.Getenv(ep.keyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable is not set", ep.keyEnv)
	}

	if baseURL == "" {
		baseURL = ep.baseURL
	}
	return NewOpenAIProvider(providerType, apiKey, baseURL, model), nil
}
