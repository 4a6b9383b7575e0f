package steps

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/rulekit/internal/tui"
	"github.com/initializ/rulekit/internal/tui/components"
)

// PacksStep picks which rule packs to scaffold.
type PacksStep struct {
	list  components.Checklist
	packs []string
}

func NewPacksStep(pal *tui.Palette) *PacksStep {
	items := []components.CheckItem{
		{Label: "Safety", Value: "safety", Detail: "No force pushes, no destructive commands, no committed secrets", On: true},
		{Label: "Workflow", Value: "workflow", Detail: "Read before editing, smallest change, test before done", On: true},
		{Label: "Memory Discipline", Value: "memory-discipline", Detail: "Keep memory.md in the format the extractor understands", On: true},
		{Label: "Code Style", Value: "code-style", Detail: "Match existing conventions in edited files"},
	}
	return &PacksStep{list: components.NewChecklist(pal, items)}
}

func (s *PacksStep) Title() string { return "Rule Packs" }

func (s *PacksStep) Start() tea.Cmd {
	s.list.Reset()
	return nil
}

func (s *PacksStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "backspace" {
		return s, tui.PrevStep()
	}

	list, cmd := s.list.Update(msg)
	s.list = list
	if s.list.Done() {
		s.packs = s.list.Chosen()
		return s, tui.NextStep()
	}
	return s, cmd
}

func (s *PacksStep) View(width int) string { return s.list.View(width) }

func (s *PacksStep) Summary() string {
	if len(s.packs) == 0 {
		return "none"
	}
	return strings.Join(s.packs, ", ")
}

func (s *PacksStep) Apply(a *tui.Answers) { a.Packs = s.packs }
