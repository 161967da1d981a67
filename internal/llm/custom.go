package llm

import (
	"net/http"
	"time"
)

// CustomProvider talks to any OpenAI-compatible endpoint (OpenRouter,
// local gateways) at a caller-supplied base URL.
type CustomProvider struct {
	*OpenAIProvider
}

func NewCustomProvider(baseURL, apiKey, model string) *CustomProvider {
	return &CustomProvider{
		OpenAIProvider: &OpenAIProvider{
			apiKey:  apiKey,
			model:   model,
			baseURL: baseURL,
			httpClient: &http.Client{
				Timeout: 5 * time.Minute,
			},
		},
	}
}

func (c *CustomProvider) Name() string {
	return "custom"
}
