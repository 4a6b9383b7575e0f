package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/rulekit/internal/tui"
)

// CheckItem is one toggleable entry in a Checklist.
type CheckItem struct {
	Label  string
	Value  string
	Detail string
	On     bool
}

// Checklist toggles any number of items; enter confirms the set.
type Checklist struct {
	pal    *tui.Palette
	items  []CheckItem
	cursor int
	done   bool
}

// NewChecklist builds a list with the given items pre-toggled.
func NewChecklist(pal *tui.Palette, items []CheckItem) Checklist {
	return Checklist{pal: pal, items: items}
}

func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	if c.done {
		return c, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key.String() {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(c.items)-1 {
			c.cursor++
		}
	case " ":
		c.items[c.cursor].On = !c.items[c.cursor].On
	case "enter":
		c.done = true
	}
	return c, nil
}

func (c Checklist) View(width int) string {
	w := clampWidth(width-8, 30)

	rows := make([]string, 0, len(c.items))
	for i, item := range c.items {
		marker := c.pal.Faint.Render("☐")
		if item.On {
			marker = c.pal.Accent.Render("☑")
		}
		label := c.pal.Muted.Render(item.Label)
		if i == c.cursor {
			label = c.pal.Text.Bold(true).Render(item.Label)
		}
		row := " " + marker + " " + label
		if i == c.cursor && item.Detail != "" {
			row += "\n   " + c.pal.Muted.Render(item.Detail)
		}
		rows = append(rows, row)
	}

	return "  " + c.pal.FocusBox.Width(w).Render(strings.Join(rows, "\n")) +
		"\n\n" + Hints(c.pal, "↑↓", "navigate", "space", "toggle", "⏎", "confirm", "esc", "quit")
}

// Done reports whether the set was confirmed.
func (c Checklist) Done() bool { return c.done }

// Chosen returns the values of every toggled-on item.
func (c Checklist) Chosen() []string {
	var vals []string
	for _, item := range c.items {
		if item.On {
			vals = append(vals, item.Value)
		}
	}
	return vals
}

// Reset lets the user change the set after back-navigation.
func (c *Checklist) Reset() { c.done = false }
