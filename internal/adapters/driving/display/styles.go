package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the colour palette for result output.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Error:     lipgloss.Color("#F38BA8"), // Red
		Border:    lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains lipgloss styles bound to one output.
type Styles struct {
	theme *Theme

	// Header style for the per-document separator line.
	Header lipgloss.Style

	// Title style for screen titles.
	Title lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status line.
	StatusBar lipgloss.Style
}

// NewStyles creates styles rendering to w. When color is false every style
// renders plain text regardless of what w is attached to.
func NewStyles(w io.Writer, theme *Theme, color bool) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		theme: theme,

		Header: r.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Title: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		Error: r.NewStyle().
			Foreground(theme.Error),

		InputField: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: r.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),
	}
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
