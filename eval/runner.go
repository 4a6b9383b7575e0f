package eval

import (
	"context"
	"fmt"
	"strings"

	"github.com/initializ/rulekit/llm"
)

// CaseResult is the outcome of one test case against one model.
type CaseResult struct {
	Category        string   `json:"category"`
	Question        string   `json:"question"`
	Response        string   `json:"response"`
	ExpectedKeyword []string `json:"expected_keywords"`
	MatchedKeywords []string `json:"matched_keywords"`
	Matches         int      `json:"matches"`
	TotalKeywords   int      `json:"total_keywords"`
	Score           float64  `json:"score"`
	Difficulty      string   `json:"difficulty,omitempty"`
	Model           string   `json:"model"`
}

// Results holds both models' case results and the computed summary.
type Results struct {
	Candidate []CaseResult `json:"candidate"`
	Base      []CaseResult `json:"base,omitempty"`
	Summary   Summary      `json:"summary"`
}

// Runner evaluates a suite against a candidate model and, when Base is
// non-nil, against the base model for comparison.
type Runner struct {
	Candidate llm.Client
	Base      llm.Client
	MaxTokens int
}

// buildPrompt renders a test case in the instruction format the model was
// fine-tuned on.
func buildPrompt(tc TestCase) string {
	var b strings.Builder
	b.WriteString("### Instruction:\n")
	b.WriteString(tc.Question)
	b.WriteString("\n\n### Context:\n")
	b.WriteString(tc.Context)
	b.WriteString("\n\n### Response:\n")
	return b.String()
}

// Run evaluates every case in the suite. A model request failure aborts the
// run; partial results are not reported.
func (r *Runner) Run(ctx context.Context, suite *Suite) (*Results, error) {
	res := &Results{}

	candidate, err := r.runModel(ctx, suite, r.Candidate)
	if err != nil {
		return nil, fmt.Errorf("evaluating candidate model: %w", err)
	}
	res.Candidate = candidate

	if r.Base != nil {
		base, err := r.runModel(ctx, suite, r.Base)
		if err != nil {
			return nil, fmt.Errorf("evaluating base model: %w", err)
		}
		res.Base = base
	}

	res.Summary = summarize(res)
	return res, nil
}

func (r *Runner) runModel(ctx context.Context, suite *Suite, client llm.Client) ([]CaseResult, error) {
	maxTokens := r.MaxTokens
	if maxTokens == 0 {
		maxTokens = 200
	}

	results := make([]CaseResult, 0, len(suite.Cases))
	for _, tc := range suite.Cases {
		completion, err := client.Complete(ctx, buildPrompt(tc), llm.Options{MaxTokens: maxTokens})
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", tc.Question, err)
		}

		answer := stripPromptEcho(completion.Text)
		matched, score := ScoreKeywords(answer, tc.ExpectedKeywords)
		results = append(results, CaseResult{
			Category:        tc.Category,
			Question:        tc.Question,
			Response:        answer,
			ExpectedKeyword: tc.ExpectedKeywords,
			MatchedKeywords: matched,
			Matches:         len(matched),
			TotalKeywords:   len(tc.ExpectedKeywords),
			Score:           score,
			Difficulty:      tc.Difficulty,
			Model:           client.ModelID(),
		})
	}
	return results, nil
}

// stripPromptEcho drops everything up to the last response marker when a
// completion-style server echoes the prompt back.
func stripPromptEcho(content string) string {
	const marker = "### Response:\n"
	if idx := strings.LastIndex(content, marker); idx >= 0 {
		content = content[idx+len(marker):]
	}
	return strings.TrimSpace(content)
}
