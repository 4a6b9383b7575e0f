// Package steps implements the screens of the init wizard.
package steps

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/rulekit/internal/tui"
	"github.com/initializ/rulekit/internal/tui/components"
	"github.com/initializ/rulekit/util"
)

// NameStep asks which project the bundle is for. A prefilled name (from
// the --name flag or a positional argument) skips the screen entirely.
type NameStep struct {
	input   components.Input
	name    string
	prefill string
}

func NewNameStep(pal *tui.Palette, prefill string) *NameStep {
	in := components.NewInput(pal, "What project is this bundle for?", "my-project")
	in.Validate = func(v string) error {
		if v == "" {
			return errors.New("name is required")
		}
		return nil
	}
	in.Hint = func(v string) string {
		return "bundle_id: " + util.Slugify(v)
	}
	if prefill != "" {
		in.SetValue(prefill)
	}
	return &NameStep{input: in, prefill: prefill}
}

func (s *NameStep) Title() string { return "Project" }

func (s *NameStep) Start() tea.Cmd {
	if s.prefill != "" {
		s.name = s.prefill
		return tui.NextStep()
	}
	s.input.Reopen()
	return s.input.Start()
}

func (s *NameStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	in, cmd := s.input.Update(msg)
	s.input = in
	if s.input.Done() {
		s.name = s.input.Value()
		return s, tui.NextStep()
	}
	return s, cmd
}

func (s *NameStep) View(width int) string { return s.input.View(width) }

func (s *NameStep) Summary() string { return s.name }

func (s *NameStep) Apply(a *tui.Answers) { a.Name = s.name }
