package llm

import (
	"fmt"

	"github.com/clinicon/clinicon-ai/internal/config"
)

// NewProvider creates a provider from config. The base URL comes from the
// provider table unless the config overrides it. An empty API key is passed
// through; the service is the one to reject it.
func NewProvider(cfg *config.Config) (Provider, error) {
	info := config.GetProvider(cfg.Provider)
	if info == nil {
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = info.DefaultBaseURL
	}
	if baseURL == "" {
		return nil, fmt.Errorf("%s provider requires base_url", info.ID)
	}

	return newCompatProvider(info.ID, baseURL, cfg.APIKey, cfg.Model, nil), nil
}
