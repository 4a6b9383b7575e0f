package steps

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/rulekit/internal/tui"
	"github.com/initializ/rulekit/internal/tui/components"
	"github.com/initializ/rulekit/util"
)

// ReviewStep shows the collected answers for a final confirmation. The
// caller scaffolds after the wizard exits.
type ReviewStep struct {
	pal    *tui.Palette
	fields []components.Field
}

func NewReviewStep(pal *tui.Palette) *ReviewStep {
	return &ReviewStep{pal: pal}
}

// Prepare snapshots the answers collected so far.
func (s *ReviewStep) Prepare(a *tui.Answers) {
	s.fields = []components.Field{
		{Name: "Bundle ID", Value: util.Slugify(a.Name)},
		{Name: "Provider", Value: a.Provider},
		{Name: "Model", Value: a.Model},
	}
	if a.BaseURL != "" {
		s.fields = append(s.fields, components.Field{Name: "Base URL", Value: a.BaseURL})
	}
	if len(a.Packs) > 0 {
		s.fields = append(s.fields, components.Field{Name: "Rule packs", Value: strings.Join(a.Packs, ", ")})
	}
}

func (s *ReviewStep) Title() string { return "Review" }

func (s *ReviewStep) Start() tea.Cmd { return nil }

func (s *ReviewStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			return s, tui.NextStep()
		case "backspace":
			return s, tui.PrevStep()
		}
	}
	return s, nil
}

func (s *ReviewStep) View(width int) string {
	var b strings.Builder
	b.WriteString(components.Summary(s.pal, s.fields, width))
	b.WriteString("\n\n  " + s.pal.Accent.Render("Enter creates the bundle, Backspace goes back") + "\n\n")
	b.WriteString(components.Hints(s.pal, "⏎", "confirm", "backspace", "back", "esc", "quit"))
	return b.String()
}

func (s *ReviewStep) Summary() string { return "confirmed" }

func (s *ReviewStep) Apply(a *tui.Answers) {}
