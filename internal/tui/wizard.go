package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Answers collects everything the wizard asks for.
type Answers struct {
	Name      string
	Provider  string
	BaseURL   string
	Model     string
	BaseModel string
	Packs     []string
}

// preparer lets a step refresh itself from the answers collected so far
// before it is shown.
type preparer interface {
	Prepare(a *Answers)
}

// WizardModel walks the user through the steps one at a time.
type WizardModel struct {
	pal     *Palette
	steps   []Step
	active  int
	answers Answers
	width   int
	done    bool
	quitErr error
	version string
}

// NewWizardModel builds a wizard over the given steps.
func NewWizardModel(pal *Palette, steps []Step, version string) WizardModel {
	return WizardModel{
		pal:     pal,
		steps:   steps,
		width:   80,
		version: version,
	}
}

func (w WizardModel) Init() tea.Cmd {
	if len(w.steps) == 0 {
		return tea.Quit
	}
	return w.steps[0].Start()
}

func (w WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		return w, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			w.quitErr = errors.New("wizard cancelled")
			return w, tea.Quit
		}

	case stepDoneMsg:
		if w.active >= len(w.steps) {
			return w, nil
		}
		w.steps[w.active].Apply(&w.answers)
		w.active++
		if w.active == len(w.steps) {
			w.done = true
			return w, tea.Quit
		}
		if p, ok := w.steps[w.active].(preparer); ok {
			p.Prepare(&w.answers)
		}
		return w, w.steps[w.active].Start()

	case stepBackMsg:
		if w.active > 0 {
			w.active--
			return w, w.steps[w.active].Start()
		}
		return w, nil
	}

	if w.active < len(w.steps) {
		next, cmd := w.steps[w.active].Update(msg)
		w.steps[w.active] = next
		return w, cmd
	}
	return w, nil
}

func (w WizardModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(RenderBanner(w.pal, w.version, w.width))
	b.WriteString(w.trail())
	if w.active < len(w.steps) {
		b.WriteString("\n")
		b.WriteString(w.steps[w.active].View(w.width))
	}
	b.WriteString("\n")
	return b.String()
}

// trail recaps finished steps on single lines and marks the active one
// with a step counter.
func (w WizardModel) trail() string {
	var b strings.Builder
	for i, s := range w.steps {
		switch {
		case i < w.active:
			fmt.Fprintf(&b, "  %s %s  %s\n",
				w.pal.Tick.Render("✓"),
				w.pal.Text.Bold(true).Render(s.Title()),
				w.pal.Muted.Render(s.Summary()))
		case i == w.active:
			fmt.Fprintf(&b, "\n  %s %s\n",
				w.pal.Pill.Render(fmt.Sprintf("%d/%d", i+1, len(w.steps))),
				w.pal.Accent.Bold(true).Render(s.Title()))
		}
	}
	return b.String()
}

// Answers returns everything the completed steps recorded.
func (w WizardModel) Answers() Answers { return w.answers }

// Err reports why the wizard quit early, if it did.
func (w WizardModel) Err() error { return w.quitErr }

// Done reports whether every step finished.
func (w WizardModel) Done() bool { return w.done }
