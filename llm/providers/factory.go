package providers

import (
	"fmt"

	"github.com/initializ/rulekit/llm"
)

// NewClient builds a client for the provider named in rulekit.yaml.
func NewClient(provider string, ep llm.Endpoint) (llm.Client, error) {
	switch provider {
	case "openai":
		return NewOpenAIClient(ep), nil
	case "ollama":
		return NewOllamaClient(ep), nil
	}
	return nil, fmt.Errorf("unsupported eval provider %q (want openai or ollama)", provider)
}
