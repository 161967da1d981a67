package config

type ProviderInfo struct {
	ID           string
	Name         string
	Description  string
	NeedsAPIKey  bool
	SignupURL    string
	Models       []string
	DefaultModel string
}

var Providers = []ProviderInfo{
	{
		ID:           "gemini",
		Name:         "Google Gemini",
		Description:  "Native JSON schema output, fast",
		NeedsAPIKey:  true,
		SignupURL:    "https://aistudio.google.com/apikey",
		Models:       []string{"gemini-2.5-flash", "gemini-2.5-pro", "gemini-2.0-flash"},
		DefaultModel: "gemini-2.5-flash",
	},
	{
		ID:           "openai",
		Name:         "OpenAI",
		Description:  "GPT-4o, JSON mode",
		NeedsAPIKey:  true,
		SignupURL:    "https://platform.openai.com/api-keys",
		Models:       []string{"gpt-4o", "gpt-4o-mini", "gpt-4-turbo"},
		DefaultModel: "gpt-4o-mini",
	},
	{
		ID:           "openrouter",
		Name:         "OpenRouter",
		Description:  "Access all models",
		NeedsAPIKey:  true,
		SignupURL:    "https://openrouter.ai/keys",
		Models:       []string{"google/gemini-2.5-flash", "anthropic/claude-sonnet-4.5", "openai/gpt-4o"},
		DefaultModel: "google/gemini-2.5-flash",
	},
}

func GetProvider(id string) *ProviderInfo {
	for _, p := range Providers {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
