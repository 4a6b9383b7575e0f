package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/rulekit/internal/tui"
)

// Choice is one option in a pick-one list.
type Choice struct {
	Label  string
	Value  string
	Detail string
}

// ChoiceList picks exactly one option. The whole list lives in a single
// focused frame; the cursor row shows its detail line.
type ChoiceList struct {
	pal     *tui.Palette
	choices []Choice
	cursor  int
	picked  int
	done    bool
}

// NewChoiceList builds a list with nothing picked yet.
func NewChoiceList(pal *tui.Palette, choices []Choice) ChoiceList {
	return ChoiceList{pal: pal, choices: choices, picked: -1}
}

func (l ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if l.done {
		return l, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch key.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.choices)-1 {
			l.cursor++
		}
	case "enter":
		l.picked = l.cursor
		l.done = true
	}
	return l, nil
}

func (l ChoiceList) View(width int) string {
	w := clampWidth(width-8, 30)

	rows := make([]string, 0, len(l.choices))
	for i, c := range l.choices {
		marker := l.pal.Faint.Render("○")
		label := l.pal.Muted.Render(c.Label)
		if i == l.cursor {
			marker = l.pal.Accent.Render("◉")
			label = l.pal.Text.Bold(true).Render(c.Label)
		}
		row := " " + marker + " " + label
		if i == l.cursor && c.Detail != "" {
			row += "\n   " + l.pal.Muted.Render(c.Detail)
		}
		rows = append(rows, row)
	}

	return "  " + l.pal.FocusBox.Width(w).Render(strings.Join(rows, "\n")) +
		"\n\n" + Hints(l.pal, "↑↓", "navigate", "⏎", "select", "esc", "quit")
}

// Done reports whether an option was picked.
func (l ChoiceList) Done() bool { return l.done }

// Picked returns the chosen option once Done.
func (l ChoiceList) Picked() (Choice, bool) {
	if l.picked < 0 {
		return Choice{}, false
	}
	return l.choices[l.picked], true
}

// Reset clears the pick so the list can be shown again.
func (l *ChoiceList) Reset() {
	l.done = false
	l.picked = -1
}
