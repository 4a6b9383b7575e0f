// Package llm asks served models one question at a time. Evaluation never
// holds a conversation, so the surface is a single prompt in and a single
// completion out.
package llm

import (
	"context"
	"time"
)

// Client completes a single prompt against one configured model.
type Client interface {
	// Complete sends prompt and returns the model's answer.
	Complete(ctx context.Context, prompt string, opts Options) (*Completion, error)
	// ModelID names the model this client talks to.
	ModelID() string
}

// Endpoint describes where a model is served and how to reach it.
type Endpoint struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Options bounds a single completion request. Zero values mean the
// server's defaults.
type Options struct {
	MaxTokens   int
	Temperature float64
}

// Completion is the model's answer plus token accounting, when the
// server reports it.
type Completion struct {
	Text   string
	Tokens TokenUsage
}

// TokenUsage counts tokens for one request.
type TokenUsage struct {
	Prompt     int
	Completion int
	Total      int
}
