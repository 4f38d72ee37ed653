package config

type ProviderInfo struct {
	ID             string
	Name           string
	DefaultBaseURL string
	DefaultModel   string
}

// Providers lists the endpoints that speak the OpenAI chat-completions wire format.
var Providers = []ProviderInfo{
	{
		ID:             "openai",
		Name:           "OpenAI",
		DefaultBaseURL: "https://api.openai.com/v1",
		DefaultModel:   DefaultModel,
	},
	{
		ID:             "openrouter",
		Name:           "OpenRouter",
		DefaultBaseURL: "https://openrouter.ai/api/v1",
		DefaultModel:   "openai/gpt-4.1-mini",
	},
	{
		ID:           "custom",
		Name:         "Custom",
		DefaultModel: DefaultModel,
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
