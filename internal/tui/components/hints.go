// Package components holds the wizard's reusable widgets.
package components

import (
	"strings"

	"github.com/initializ/rulekit/internal/tui"
)

// Hints renders a keyboard hint bar from alternating key/description
// pairs: Hints(pal, "⏎", "submit", "esc", "quit").
func Hints(pal *tui.Palette, pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, pal.Key.Render(pairs[i])+" "+pal.Faint.Render(pairs[i+1]))
	}
	return "  " + strings.Join(parts, "   ")
}

// clampWidth keeps widget widths usable on narrow terminals.
func clampWidth(w, min int) int {
	if w < min {
		return min
	}
	return w
}
