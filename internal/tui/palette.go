// Package tui implements the full-screen init wizard.
package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colorScheme is the raw color vocabulary a Palette is built from.
type colorScheme struct {
	accent lipgloss.Color
	text   lipgloss.Color
	muted  lipgloss.Color
	faint  lipgloss.Color
	good   lipgloss.Color
	bad    lipgloss.Color
	frame  lipgloss.Color
	onFill lipgloss.Color
}

var darkScheme = colorScheme{
	accent: lipgloss.Color("#14b8a6"),
	text:   lipgloss.Color("#e0e0e8"),
	muted:  lipgloss.Color("#888888"),
	faint:  lipgloss.Color("#5a5a70"),
	good:   lipgloss.Color("#22c55e"),
	bad:    lipgloss.Color("#ef4444"),
	frame:  lipgloss.Color("#2a2a3a"),
	onFill: lipgloss.Color("#ffffff"),
}

var lightScheme = colorScheme{
	accent: lipgloss.Color("#0f766e"),
	text:   lipgloss.Color("#0f172a"),
	muted:  lipgloss.Color("#374151"),
	faint:  lipgloss.Color("#6b7280"),
	good:   lipgloss.Color("#15803d"),
	bad:    lipgloss.Color("#b91c1c"),
	frame:  lipgloss.Color("#d1d5db"),
	onFill: lipgloss.Color("#ffffff"),
}

// Palette is the wizard's rendered style vocabulary. Every widget draws
// from one shared palette instead of carrying its own color fields.
type Palette struct {
	Accent lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Faint  lipgloss.Style
	Good   lipgloss.Style
	Bad    lipgloss.Style

	Box      lipgloss.Style // rounded frame
	FocusBox lipgloss.Style // rounded frame, focused
	Key      lipgloss.Style // keyboard hint chip
	Pill     lipgloss.Style // filled accent badge
	Tick     lipgloss.Style // completed-step check
}

// NewPalette builds the palette for the named scheme: "dark", "light",
// or anything else to detect from the environment.
func NewPalette(name string) *Palette {
	sc := pickScheme(name)
	frame := lipgloss.RoundedBorder()
	return &Palette{
		Accent: lipgloss.NewStyle().Foreground(sc.accent),
		Text:   lipgloss.NewStyle().Foreground(sc.text),
		Muted:  lipgloss.NewStyle().Foreground(sc.muted),
		Faint:  lipgloss.NewStyle().Foreground(sc.faint),
		Good:   lipgloss.NewStyle().Foreground(sc.good),
		Bad:    lipgloss.NewStyle().Foreground(sc.bad),

		Box:      lipgloss.NewStyle().Border(frame).BorderForeground(sc.frame).Padding(0, 1),
		FocusBox: lipgloss.NewStyle().Border(frame).BorderForeground(sc.accent).Padding(0, 1),
		Key:      lipgloss.NewStyle().Foreground(sc.text).Background(sc.faint).Padding(0, 1),
		Pill:     lipgloss.NewStyle().Foreground(sc.onFill).Background(sc.accent).Bold(true).Padding(0, 1),
		Tick:     lipgloss.NewStyle().Foreground(sc.good).Bold(true),
	}
}

func pickScheme(name string) colorScheme {
	if sc, ok := schemeByName(name); ok {
		return sc
	}
	if sc, ok := schemeByName(os.Getenv("RULEKIT_THEME")); ok {
		return sc
	}
	// COLORFGBG is "fg;bg"; backgrounds 7 and 15 are the usual light ones.
	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		if parts := strings.Split(fgbg, ";"); len(parts) >= 2 {
			if bg := parts[len(parts)-1]; bg == "7" || bg == "15" {
				return lightScheme
			}
		}
	}
	return darkScheme
}

func schemeByName(name string) (colorScheme, bool) {
	switch strings.ToLower(name) {
	case "dark":
		return darkScheme, true
	case "light":
		return lightScheme, true
	}
	return colorScheme{}, false
}
