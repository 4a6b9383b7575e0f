// Package providers holds the endpoint clients rulekit can score models
// against: hosted OpenAI and anything speaking its chat completions API,
// which covers vLLM, llama.cpp server, and Ollama.
package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/initializ/rulekit/llm"
)

const defaultOpenAIBase = "https://api.openai.com/v1"

// OpenAIClient speaks the /chat/completions wire format. Each Complete
// call wraps the prompt in a single user message; fine-tuned checkpoints
// served locally answer it as a plain completion.
type OpenAIClient struct {
	endpoint llm.Endpoint
	http     *http.Client
}

// NewOpenAIClient builds a client for an OpenAI-compatible endpoint.
func NewOpenAIClient(ep llm.Endpoint) *OpenAIClient {
	if ep.BaseURL == "" {
		ep.BaseURL = defaultOpenAIBase
	}
	ep.BaseURL = strings.TrimRight(ep.BaseURL, "/")
	if ep.Timeout == 0 {
		ep.Timeout = 2 * time.Minute
	}
	return &OpenAIClient{
		endpoint: ep,
		http:     &http.Client{Timeout: ep.Timeout},
	}
}

func (c *OpenAIClient) ModelID() string { return c.endpoint.Model }

// chatTurn is one message on the wire.
type chatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatPayload struct {
	Model       string     `json:"model"`
	Messages    []chatTurn `json:"messages"`
	MaxTokens   int        `json:"max_tokens,omitempty"`
	Temperature float64    `json:"temperature,omitempty"`
}

type chatReply struct {
	Choices []struct {
		Message chatTurn `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Complete sends the prompt as a single user turn and returns the first
// choice's content.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, opts llm.Options) (*llm.Completion, error) {
	payload := chatPayload{
		Model:       c.endpoint.Model,
		Messages:    []chatTurn{{Role: "user", Content: prompt}},
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.endpoint.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.endpoint.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting completion from %s: %w", c.endpoint.BaseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("completion endpoint returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var reply chatReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("decoding completion response: %w", err)
	}
	if len(reply.Choices) == 0 {
		return nil, fmt.Errorf("completion endpoint returned no choices")
	}

	return &llm.Completion{
		Text: reply.Choices[0].Message.Content,
		Tokens: llm.TokenUsage{
			Prompt:     reply.Usage.PromptTokens,
			Completion: reply.Usage.CompletionTokens,
			Total:      reply.Usage.TotalTokens,
		},
	}, nil
}
