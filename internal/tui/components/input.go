package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/rulekit/internal/tui"
)

// Input is a labelled single-line text field. Validate rejects a
// submission with a message; Hint renders a live line under the field
// derived from the current value.
type Input struct {
	Label    string
	Validate func(string) error
	Hint     func(string) string

	pal   *tui.Palette
	field textinput.Model
	done  bool
	err   string
}

// NewInput builds a focused text field.
func NewInput(pal *tui.Palette, label, placeholder string) Input {
	f := textinput.New()
	f.Placeholder = placeholder
	f.CharLimit = 100
	f.Focus()
	return Input{Label: label, pal: pal, field: f}
}

func (in Input) Start() tea.Cmd {
	return textinput.Blink
}

func (in Input) Update(msg tea.Msg) (Input, tea.Cmd) {
	if in.done {
		return in, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if in.Validate != nil {
			if err := in.Validate(in.Value()); err != nil {
				in.err = err.Error()
				return in, nil
			}
		}
		in.done = true
		in.err = ""
		return in, nil
	}

	var cmd tea.Cmd
	in.field, cmd = in.field.Update(msg)
	in.err = ""
	return in, cmd
}

func (in Input) View(width int) string {
	w := clampWidth(width-8, 20)
	in.field.Width = w

	var b strings.Builder
	b.WriteString("\n  " + in.pal.Accent.Render(in.Label) + "\n\n")
	b.WriteString("  " + in.pal.Box.Width(w).Render(in.field.View()) + "\n")
	if in.err != "" {
		b.WriteString("  " + in.pal.Bad.Render("✗ "+in.err) + "\n")
	}
	if in.Hint != nil && in.Value() != "" {
		if hint := in.Hint(in.Value()); hint != "" {
			b.WriteString("  " + in.pal.Faint.Render(hint) + "\n")
		}
	}
	b.WriteString("\n" + Hints(in.pal, "⏎", "submit", "esc", "quit"))
	return b.String()
}

// Done reports whether a value was submitted.
func (in Input) Done() bool { return in.done }

// Value returns the trimmed field contents.
func (in Input) Value() string { return strings.TrimSpace(in.field.Value()) }

// SetValue replaces the field contents.
func (in *Input) SetValue(v string) { in.field.SetValue(v) }

// Reopen lets the user edit again after back-navigation.
func (in *Input) Reopen() { in.done = false }
