package components

import (
	"strings"

	"github.com/initializ/rulekit/internal/tui"
)

// Field is one line of the review summary.
type Field struct {
	Name  string
	Value string
}

// Summary renders the review fields as a name/value grid in a frame.
func Summary(pal *tui.Palette, fields []Field, width int) string {
	w := clampWidth(width-8, 30)

	rows := make([]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, pal.Muted.Width(12).Render(f.Name)+" "+pal.Text.Bold(true).Render(f.Value))
	}
	return "  " + pal.Box.Width(w).Render(strings.Join(rows, "\n"))
}
