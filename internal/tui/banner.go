package tui

import "strings"

// RenderBanner draws the wizard header: brand, version, and a rule.
func RenderBanner(pal *Palette, version string, width int) string {
	if version == "" {
		version = "dev"
	}

	rule := width - 4
	if rule < 20 {
		rule = 20
	}
	if rule > 60 {
		rule = 60
	}

	var b strings.Builder
	b.WriteString("  " + pal.Accent.Bold(true).Render("▤ rulekit") + "  " + pal.Pill.Render("v"+version) + "\n")
	b.WriteString("  " + pal.Muted.Render("Scaffold a rules bundle your AI agents can learn from.") + "\n")
	b.WriteString("  " + pal.Faint.Render(strings.Repeat("─", rule)) + "\n")
	return b.String()
}
