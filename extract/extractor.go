// Package extract turns a parsed memory document into instruction-following
// training examples. Extraction is heuristic: bullets and code blocks that
// match the conventions produce records, everything else produces nothing.
package extract

import (
	"fmt"
	"strings"

	"github.com/initializ/rulekit/memory"
)

// Example is one (instruction, context, response) training record.
type Example struct {
	Instruction string `json:"instruction"`
	Context     string `json:"context,omitempty"`
	Response    string `json:"response"`
}

// Recognized top-level section headings.
const (
	SectionArchitecture = "Architecture Patterns Discovered"
	SectionGotchas      = "Environment Gotchas"
	SectionCommands     = "Critical Commands"
	SectionLessons      = "Key Lessons Learned"
	SectionAuth         = "Authentication Information"
	SectionEnvConfig    = "Environment Configuration"
)

// FromDocument extracts all training examples from a memory document.
// Sections with unrecognized headings contribute no records.
func FromDocument(doc *memory.Document) []Example {
	var examples []Example
	examples = append(examples, architecturePatterns(doc.Section(SectionArchitecture))...)
	examples = append(examples, environmentGotchas(doc.Section(SectionGotchas))...)
	examples = append(examples, criticalCommands(doc.Section(SectionCommands))...)
	examples = append(examples, lessonsLearned(doc.Section(SectionLessons))...)
	examples = append(examples, authenticationInfo(doc.Section(SectionAuth))...)
	examples = append(examples, environmentConfig(doc.Section(SectionEnvConfig))...)
	return examples
}

func architecturePatterns(sec *memory.Section) []Example {
	if sec == nil {
		return nil
	}

	var out []Example
	for _, b := range sec.Bullets {
		out = append(out, Example{
			Instruction: fmt.Sprintf("What is the %s and how should I implement it?", b.Label),
			Context:     "I'm working in a codebase whose architecture patterns are recorded in the agent memory file",
			Response:    fmt.Sprintf("The %s: %s", b.Label, b.Description),
		})
	}

	for _, sub := range sec.Subsections {
		for _, b := range sub.Bullets {
			out = append(out, Example{
				Instruction: fmt.Sprintf("How does %s work in this codebase?", sub.Heading),
				Context:     fmt.Sprintf("I'm implementing changes related to %s", strings.ToLower(sub.Heading)),
				Response:    fmt.Sprintf("%s: %s", b.Label, b.Description),
			})
		}
	}
	return out
}

func environmentGotchas(sec *memory.Section) []Example {
	if sec == nil {
		return nil
	}

	var out []Example
	for _, sub := range sec.Subsections {
		for _, b := range sub.Bullets {
			out = append(out, Example{
				Instruction: fmt.Sprintf("I'm having issues with %s. What should I do?", strings.ToLower(b.Label)),
				Context:     fmt.Sprintf("I'm working on %s in my development environment", strings.ToLower(sub.Heading)),
				Response:    fmt.Sprintf("For %s: %s", b.Label, b.Description),
			})
		}
	}
	return out
}

func criticalCommands(sec *memory.Section) []Example {
	if sec == nil {
		return nil
	}

	var out []Example
	for _, sub := range sec.Subsections {
		var blocks []string
		for _, cb := range sub.CodeBlocks {
			if cb.Lang == "bash" || cb.Lang == "sh" {
				blocks = append(blocks, cb.Content)
			}
		}
		if len(blocks) == 0 {
			continue
		}
		joined := strings.TrimSpace(strings.Join(blocks, "\n"))
		out = append(out, Example{
			Instruction: fmt.Sprintf("How do I %s?", strings.ToLower(sub.Heading)),
			Context:     "I need to execute commands for development environment management",
			Response:    fmt.Sprintf("For %s:\n```bash\n%s\n```", sub.Heading, joined),
		})
	}
	return out
}

func lessonsLearned(sec *memory.Section) []Example {
	if sec == nil {
		return nil
	}

	var out []Example
	for _, sub := range sec.Subsections {
		for _, b := range sub.Bullets {
			out = append(out, Example{
				Instruction: fmt.Sprintf("What should I know about %s?", strings.ToLower(b.Label)),
				Context:     fmt.Sprintf("I'm following %s methodology", strings.ToLower(sub.Heading)),
				Response:    fmt.Sprintf("%s: %s", b.Label, b.Description),
			})
		}
	}
	return out
}

func authenticationInfo(sec *memory.Section) []Example {
	if sec == nil {
		return nil
	}

	var out []Example
	if creds := sec.Subsection("Working Credentials"); creds != nil {
		for _, b := range creds.Bullets {
			out = append(out, Example{
				Instruction: "What are the working authentication credentials?",
				Context:     "I need to access the application for testing",
				Response:    fmt.Sprintf("%s: %s", b.Label, b.Description),
			})
		}
	}
	if reqs := sec.Subsection("Access Requirements"); reqs != nil {
		for _, b := range reqs.Bullets {
			out = append(out, Example{
				Instruction: "What are the access requirements for this application?",
				Context:     "I'm setting up access to the application",
				Response:    fmt.Sprintf("%s: %s", b.Label, b.Description),
			})
		}
	}
	return out
}

func environmentConfig(sec *memory.Section) []Example {
	if sec == nil {
		return nil
	}

	var out []Example
	for _, sub := range sec.Subsections {
		if len(sub.EnvLines) == 0 {
			continue
		}
		pairs := make([]string, 0, len(sub.EnvLines))
		for _, e := range sub.EnvLines {
			pairs = append(pairs, e.Name+"="+e.Value)
		}
		out = append(out, Example{
			Instruction: fmt.Sprintf("How do I configure %s?", strings.ToLower(sub.Heading)),
			Context:     "I'm setting up environment variables for development",
			Response:    fmt.Sprintf("For %s, set these environment variables:\n%s", sub.Heading, strings.Join(pairs, "\n")),
		})
	}
	return out
}
