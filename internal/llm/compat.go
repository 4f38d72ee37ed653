package llm

import "net/http"

// NewCustomProvider targets any OpenAI-compatible endpoint, OpenRouter
// included. httpClient may be nil.
func NewCustomProvider(baseURL, apiKey, model string, httpClient *http.Client) *OpenAIProvider {
	return newCompatProvider("custom", baseURL, apiKey, model, httpClient)
}
