package tui

import tea "github.com/charmbracelet/bubbletea"

// Step is one screen of the init wizard.
type Step interface {
	Title() string
	// Start runs when the step becomes active, including after
	// back-navigation.
	Start() tea.Cmd
	Update(msg tea.Msg) (Step, tea.Cmd)
	View(width int) string
	// Summary is the one-line recap shown once the step is finished.
	Summary() string
	// Apply records the step's answers.
	Apply(a *Answers)
}

type stepDoneMsg struct{}

type stepBackMsg struct{}

// NextStep applies the active step's answers and moves the wizard forward.
func NextStep() tea.Cmd {
	return func() tea.Msg { return stepDoneMsg{} }
}

// PrevStep returns the wizard to the previous step.
func PrevStep() tea.Cmd {
	return func() tea.Msg { return stepBackMsg{} }
}
