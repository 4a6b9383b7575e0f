package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// recordStep finishes as soon as the wizard advances past it and records
// how often it was started.
type recordStep struct {
	title  string
	value  string
	starts int
}

func (s *recordStep) Title() string                      { return s.title }
func (s *recordStep) Start() tea.Cmd                     { s.starts++; return nil }
func (s *recordStep) Update(msg tea.Msg) (Step, tea.Cmd) { return s, nil }
func (s *recordStep) View(width int) string              { return s.title }
func (s *recordStep) Summary() string                    { return s.value }
func (s *recordStep) Apply(a *Answers)                   { a.Packs = append(a.Packs, s.value) }

type prepStep struct {
	recordStep
	prepared bool
}

func (s *prepStep) Prepare(a *Answers) { s.prepared = true }

func TestWizard_AdvanceAppliesAndFinishes(t *testing.T) {
	first := &recordStep{title: "A", value: "alpha"}
	second := &prepStep{recordStep: recordStep{title: "B", value: "beta"}}
	w := NewWizardModel(NewPalette("dark"), []Step{first, second}, "test")

	m, _ := w.Update(stepDoneMsg{})
	w = m.(WizardModel)
	if got := w.Answers().Packs; len(got) != 1 || got[0] != "alpha" {
		t.Errorf("answers after first step = %v", got)
	}
	if !second.prepared {
		t.Error("next step was not prepared from the answers")
	}
	if second.starts != 1 {
		t.Errorf("second step starts = %d", second.starts)
	}

	m, _ = w.Update(stepDoneMsg{})
	w = m.(WizardModel)
	if !w.Done() {
		t.Error("wizard not done after the last step")
	}
	if got := w.Answers().Packs; len(got) != 2 || got[1] != "beta" {
		t.Errorf("answers after last step = %v", got)
	}
}

func TestWizard_BackRestartsPreviousStep(t *testing.T) {
	first := &recordStep{title: "A", value: "alpha"}
	second := &recordStep{title: "B", value: "beta"}
	w := NewWizardModel(NewPalette("dark"), []Step{first, second}, "test")

	m, _ := w.Update(stepDoneMsg{})
	m, _ = m.(WizardModel).Update(stepBackMsg{})
	w = m.(WizardModel)

	if w.active != 0 {
		t.Errorf("active step = %d, want 0", w.active)
	}
	if first.starts != 1 {
		t.Errorf("first step restarted %d times, want 1", first.starts)
	}
	if w.Done() {
		t.Error("wizard done after going back")
	}
}

func TestWizard_EscCancels(t *testing.T) {
	w := NewWizardModel(NewPalette("dark"), []Step{&recordStep{title: "A"}}, "test")
	m, _ := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	w = m.(WizardModel)
	if w.Err() == nil {
		t.Error("expected a cancellation error")
	}
	if w.Done() {
		t.Error("cancelled wizard reports done")
	}
}

func TestPickScheme(t *testing.T) {
	t.Setenv("RULEKIT_THEME", "")
	t.Setenv("COLORFGBG", "")

	if pickScheme("light") != lightScheme {
		t.Error("explicit light ignored")
	}
	if pickScheme("") != darkScheme {
		t.Error("default is not dark")
	}

	t.Setenv("RULEKIT_THEME", "light")
	if pickScheme("") != lightScheme {
		t.Error("RULEKIT_THEME not honored")
	}
	if pickScheme("dark") != darkScheme {
		t.Error("flag does not override the env")
	}

	t.Setenv("RULEKIT_THEME", "")
	t.Setenv("COLORFGBG", "0;15")
	if pickScheme("") != lightScheme {
		t.Error("light COLORFGBG background not detected")
	}
	t.Setenv("COLORFGBG", "15;0")
	if pickScheme("") != darkScheme {
		t.Error("dark COLORFGBG background misdetected")
	}
}
