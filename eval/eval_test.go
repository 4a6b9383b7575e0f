package eval

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/initializ/rulekit/llm"
)

// fakeClient answers every prompt with a canned response keyed by question
// substring, falling back to a default.
type fakeClient struct {
	model          string
	answers        map[string]string
	fallbackAnswer string
	prompts        []string
}

func (f *fakeClient) ModelID() string { return f.model }

func (f *fakeClient) Complete(_ context.Context, prompt string, _ llm.Options) (*llm.Completion, error) {
	f.prompts = append(f.prompts, prompt)
	for key, answer := range f.answers {
		if strings.Contains(prompt, key) {
			return &llm.Completion{Text: answer}, nil
		}
	}
	return &llm.Completion{Text: f.fallbackAnswer}, nil
}

var testSuite = &Suite{Cases: []TestCase{
	{
		Category:         "Critical Commands",
		Question:         "How do I restart the backend?",
		Context:          "Service management",
		ExpectedKeywords: []string{"make stop", "make start"},
		Difficulty:       "easy",
	},
	{
		Category:         "Environment Gotchas",
		Question:         "Why do migrations fail?",
		ExpectedKeywords: []string{"CREATEDB", "shadow database"},
		Difficulty:       "hard",
	},
}}

func TestScoreKeywords(t *testing.T) {
	matched, score := ScoreKeywords("Run MAKE STOP then make start.", []string{"make stop", "make start", "docker"})
	if len(matched) != 2 {
		t.Errorf("matched = %v", matched)
	}
	if score < 0.66 || score > 0.67 {
		t.Errorf("score = %f", score)
	}

	if _, score := ScoreKeywords("anything", nil); score != 0 {
		t.Errorf("empty keywords score = %f", score)
	}
}

func TestBuildPrompt(t *testing.T) {
	got := buildPrompt(testSuite.Cases[0])
	want := "### Instruction:\nHow do I restart the backend?\n\n### Context:\nService management\n\n### Response:\n"
	if got != want {
		t.Errorf("prompt = %q", got)
	}
}

func TestStripPromptEcho(t *testing.T) {
	echoed := "### Instruction:\nq\n\n### Context:\n\n\n### Response:\nRun make stop.\n"
	if got := stripPromptEcho(echoed); got != "Run make stop." {
		t.Errorf("got %q", got)
	}
	if got := stripPromptEcho("plain answer"); got != "plain answer" {
		t.Errorf("got %q", got)
	}
}

func TestRunner_WithComparison(t *testing.T) {
	candidate := &fakeClient{
		model: "rules-lora",
		answers: map[string]string{
			"restart":    "Run make stop, then make start.",
			"migrations": "Grant CREATEDB so the shadow database can be created.",
		},
	}
	base := &fakeClient{model: "base", fallbackAnswer: "I do not know."}

	r := &Runner{Candidate: candidate, Base: base}
	res, err := r.Run(context.Background(), testSuite)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if len(res.Candidate) != 2 || len(res.Base) != 2 {
		t.Fatalf("results = %d candidate, %d base", len(res.Candidate), len(res.Base))
	}
	if res.Summary.Candidate.AverageScore != 1.0 {
		t.Errorf("candidate average = %f", res.Summary.Candidate.AverageScore)
	}
	if res.Summary.Candidate.PerfectScores != 2 {
		t.Errorf("perfect scores = %d", res.Summary.Candidate.PerfectScores)
	}
	if res.Summary.Base.ZeroScores != 2 {
		t.Errorf("base zero scores = %d", res.Summary.Base.ZeroScores)
	}
	if res.Summary.Improvement == nil || !res.Summary.Improvement.BetterPerformance {
		t.Errorf("improvement = %+v", res.Summary.Improvement)
	}
	if got := res.Summary.Candidate.CategoryScores["Critical Commands"]; got != 1.0 {
		t.Errorf("category score = %f", got)
	}

	// both models must see the same instruction-format prompts
	if len(candidate.prompts) != 2 || candidate.prompts[0] != base.prompts[0] {
		t.Error("candidate and base saw different prompts")
	}
}

func TestRunner_NoComparison(t *testing.T) {
	candidate := &fakeClient{model: "rules-lora", fallbackAnswer: "make stop and make start"}
	r := &Runner{Candidate: candidate}
	res, err := r.Run(context.Background(), testSuite)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if res.Base != nil || res.Summary.Base != nil || res.Summary.Improvement != nil {
		t.Error("expected no base results without a base client")
	}
}

func TestLoadSuite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.yaml")
	content := `cases:
  - category: Critical Commands
    question: How do I restart the backend?
    expected_keywords: [make stop, make start]
    difficulty: easy
  - question: Why do migrations fail?
    expected_keywords: [CREATEDB]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	suite, err := LoadSuite(path)
	if err != nil {
		t.Fatalf("LoadSuite error: %v", err)
	}
	if len(suite.Cases) != 2 {
		t.Fatalf("cases = %d", len(suite.Cases))
	}
	if suite.Cases[1].Category != "General" {
		t.Errorf("default category = %q", suite.Cases[1].Category)
	}
}

func TestLoadSuite_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"empty", "cases: []\n"},
		{"no question", "cases:\n  - category: X\n    expected_keywords: [a]\n"},
		{"no keywords", "cases:\n  - question: q\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadSuite(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestPrintReport(t *testing.T) {
	candidate := &fakeClient{model: "rules-lora", fallbackAnswer: "make stop and make start with CREATEDB shadow database"}
	base := &fakeClient{model: "base", fallbackAnswer: "no idea"}
	r := &Runner{Candidate: candidate, Base: base}
	res, err := r.Run(context.Background(), testSuite)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	PrintReport(&buf, res)
	out := buf.String()
	for _, want := range []string{"Candidate average score: 1.000", "Improvement:", "Critical Commands", "Question: How do I restart the backend?"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestSaveResults(t *testing.T) {
	candidate := &fakeClient{model: "m", fallbackAnswer: "x"}
	r := &Runner{Candidate: candidate}
	res, err := r.Run(context.Background(), testSuite)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "results.json")
	if err := SaveResults(path, res); err != nil {
		t.Fatalf("SaveResults error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"candidate"`) {
		t.Errorf("results JSON missing candidate key:\n%s", data)
	}
}
