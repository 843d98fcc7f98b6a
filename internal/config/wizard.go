package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to tripplan! Let's configure your planner.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Backend URL.
	backendPrompt := promptui.Prompt{
		Label:    "Backend URL",
		Default:  cfg.BackendURL,
		Validate: validateURL,
	}
	backendURL, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("backend url: %w", err)
	}
	cfg.BackendURL = backendURL

	// 2. LLM provider.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider for the built-in backend",
		Items: []string{"deepseek", "openai", "openrouter"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.LLM.Provider = ProviderType(providerStr)

	// 3. Model.
	modelPrompt := promptui.Prompt{
		Label:   "Model",
		Default: DefaultModel(cfg.LLM.Provider),
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	cfg.LLM.Model = model

	// 4. Search provider.
	searchPrompt := promptui.Select{
		Label: "Select web search provider",
		Items: []string{
			"duckduckgo — no API key needed",
			"tavily     — requires TAVILY_API_KEY",
		},
	}
	searchIdx, _, err := searchPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("search provider selection: %w", err)
	}
	cfg.Search.Provider = []SearchProviderType{SearchDuckDuckGo, SearchTavily}[searchIdx]

	// 5. Renderer.
	rendererPrompt := promptui.Select{
		Label: "Plan renderer",
		Items: []string{
			"subset   — headings, bold and lists only",
			"goldmark — full markdown with tables and code",
		},
	}
	rendererIdx, _, err := rendererPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("renderer selection: %w", err)
	}
	cfg.Renderer = []string{"subset", "goldmark"}[rendererIdx]

	// Check for API keys.
	for _, envVar := range []string{APIKeyEnvVar(cfg.LLM.Provider), SearchAPIKeyEnvVar(cfg.Search.Provider)} {
		if envVar != "" && os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment or .env before running tripplan serve.\n", envVar)
		}
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("enter a full URL such as http://localhost:5000")
	}
	return nil
}
