package providers

import "github.com/initializ/rulekit/llm"

const ollamaDefaultBase = "http://localhost:11434/v1"

// NewOllamaClient points an OpenAI-compatible client at a local Ollama
// server. Ollama never checks the key but rejects an empty Authorization
// header, so a placeholder is filled in.
func NewOllamaClient(ep llm.Endpoint) *OpenAIClient {
	if ep.BaseURL == "" {
		ep.BaseURL = ollamaDefaultBase
	}
	if ep.APIKey == "" {
		ep.APIKey = "ollama"
	}
	return NewOpenAIClient(ep)
}
