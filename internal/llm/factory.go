package llm

import (
	"fmt"

	"github.com/kiminote/kiminote/internal/config"
)

// NewProvider creates a provider from config. A missing API key is fatal
// here and nowhere else: generation is the only operation that needs the
// credential.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini requires an API key")
		}
		return NewGeminiProvider(cfg.APIKey, cfg.Model), nil

	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai requires an API key")
		}
		return NewOpenAIProvider(cfg.APIKey, cfg.Model), nil

	case "openrouter":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openrouter requires an API key")
		}
		return NewCustomProvider("https://openrouter.ai/api/v1", cfg.APIKey, cfg.Model), nil

	case "custom":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("custom provider requires base_url")
		}
		return NewCustomProvider(cfg.BaseURL, cfg.APIKey, cfg.Model), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
