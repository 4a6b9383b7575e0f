// Package eval runs a keyword-scored evaluation suite against a fine-tuned
// model served over an OpenAI-compatible API, optionally comparing it against
// the base model it was tuned from.
package eval

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TestCase is one question in an evaluation suite.
type TestCase struct {
	Category         string   `yaml:"category" json:"category"`
	Question         string   `yaml:"question" json:"question"`
	Context          string   `yaml:"context,omitempty" json:"context,omitempty"`
	ExpectedKeywords []string `yaml:"expected_keywords" json:"expected_keywords"`
	Difficulty       string   `yaml:"difficulty,omitempty" json:"difficulty,omitempty"`
}

// Suite is a list of test cases loaded from YAML.
type Suite struct {
	Cases []TestCase `yaml:"cases"`
}

// LoadSuite reads and validates an evaluation suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite file %s: %w", path, err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing suite file %s: %w", path, err)
	}

	if len(suite.Cases) == 0 {
		return nil, fmt.Errorf("suite %s contains no test cases", path)
	}
	for i, tc := range suite.Cases {
		if tc.Question == "" {
			return nil, fmt.Errorf("suite %s: case %d has no question", path, i+1)
		}
		if len(tc.ExpectedKeywords) == 0 {
			return nil, fmt.Errorf("suite %s: case %d (%q) has no expected_keywords", path, i+1, tc.Question)
		}
		if tc.Category == "" {
			suite.Cases[i].Category = "General"
		}
	}
	return &suite, nil
}
