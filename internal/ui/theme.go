package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the dashboard.
type Theme struct {
	Name string

	Background string
	Text       string
	Muted      string
	Accent     string

	// Title band, drawn inverted.
	TitleBg string
	TitleFg string

	// Status bar background highlight.
	StatusBg string
	StatusFg string

	// Pass-kind badge colors.
	Transformation string
	Analysis       string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Title: lipgloss.NewStyle().
			Background(lipgloss.Color(t.TitleBg)).
			Foreground(lipgloss.Color(t.TitleFg)),

		TitleBold: lipgloss.NewStyle().
			Background(lipgloss.Color(t.TitleBg)).
			Foreground(lipgloss.Color(t.TitleFg)).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.StatusBg)).
			Foreground(lipgloss.Color(t.StatusFg)),

		Transformation: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Transformation)).
			Padding(0, 1),

		Analysis: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Analysis)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Background)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	AccentText lipgloss.Style
	Heading    lipgloss.Style

	Title     lipgloss.Style
	TitleBold lipgloss.Style
	StatusBar lipgloss.Style

	Transformation lipgloss.Style
	Analysis       lipgloss.Style
	Selected       lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Slate":   slateTheme(),
}

var themeOrder = []string{"Dracula", "Slate"}

func draculaTheme() Theme {
	return Theme{
		Name:           "Dracula",
		Background:     "#282a36",
		Text:           "#f8f8f2",
		Muted:          "#6272a4",
		Accent:         "#bd93f9",
		TitleBg:        "#f8f8f2",
		TitleFg:        "#ff79c6",
		StatusBg:       "#8be9fd",
		StatusFg:       "#282a36",
		Transformation: "#3053ce",
		Analysis:       "#b44de0",
	}
}

func slateTheme() Theme {
	return Theme{
		Name:           "Slate",
		Background:     "#1e293b",
		Text:           "#e2e8f0",
		Muted:          "#64748b",
		Accent:         "#7dd3fc",
		TitleBg:        "#e2e8f0",
		TitleFg:        "#7c3aed",
		StatusBg:       "#38bdf8",
		StatusFg:       "#0f172a",
		Transformation: "#2563eb",
		Analysis:       "#9333ea",
	}
}

// GetTheme returns a theme by name, falling back to Dracula.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	names := make([]string, len(themeOrder))
	copy(names, themeOrder)
	return names
}
