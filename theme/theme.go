// Package theme resolves semantic token names to display styles.
//
// Resolution is total: every token name maps to some [lipgloss.Style]. Names
// fall back along their dotted prefix ("keyword.function" tries "keyword"
// next) and finally to the theme's default style, so an unrecognized token
// renders as plain text rather than failing. Bold and italic attributes
// degrade to the plain style on terminals that cannot render them; that is
// handled by the lipgloss renderer and never surfaces as an error here.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps token names to display styles.
type Theme struct {
	name     string
	styles   map[string]lipgloss.Style
	fallback lipgloss.Style
}

// New creates a theme from a token-name → style map. The fallback style is
// used for any token name that resolves to no entry.
func New(name string, styles map[string]lipgloss.Style, fallback lipgloss.Style) *Theme {
	copied := make(map[string]lipgloss.Style, len(styles))
	for k, v := range styles {
		copied[k] = v
	}
	return &Theme{name: name, styles: copied, fallback: fallback}
}

// Name returns the theme's name.
func (t *Theme) Name() string { return t.name }

// Style resolves a token name to a style. It never fails: unmatched dotted
// names fall back to their prefix, and unknown names to the theme default.
func (t *Theme) Style(token string) lipgloss.Style {
	for {
		if style, ok := t.styles[token]; ok {
			return style
		}
		lastDot := strings.LastIndex(token, ".")
		if lastDot == -1 {
			return t.fallback
		}
		token = token[:lastDot]
	}
}

// Default returns the built-in theme.
func Default() *Theme {
	return New("default", map[string]lipgloss.Style{
		"keyword":  lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		"string":   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"comment":  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		"function": lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		"type":     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		"number":   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"constant": lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		"property": lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		"variable": lipgloss.NewStyle(),
	}, lipgloss.NewStyle())
}
