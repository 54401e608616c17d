// Package render provides colour themes and styling for board output.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for rendered boards.
type Theme struct {
	// LightSquare fills the light cells of the checkerboard.
	LightSquare lipgloss.Color

	// DarkSquare fills the dark cells of the checkerboard.
	DarkSquare lipgloss.Color

	// Path marks the squares a walk passes through.
	Path lipgloss.Color

	// Knight marks the square the knight currently occupies.
	Knight lipgloss.Color

	// Label colours the file and rank labels around the board.
	Label lipgloss.Color

	// Title colours headings above the board.
	Title lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme: a green-and-cream
// board with the walk painted blue, the way the classic diagrams draw it.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare: lipgloss.Color("#EBECD0"), // Cream
		DarkSquare:  lipgloss.Color("#739552"), // Board green
		Path:        lipgloss.Color("#6495ED"), // Blue
		Knight:      lipgloss.Color("#F9E2AF"), // Yellow
		Label:       lipgloss.Color("#6C7086"), // Medium gray
		Title:       lipgloss.Color("#7C3AED"), // Purple
		Muted:       lipgloss.Color("#6C7086"), // Medium gray
		Border:      lipgloss.Color("#45475A"), // Border gray
	}
}

// MonoTheme returns a colourless theme: every style renders as plain
// text, which keeps output readable on dumb terminals and in files.
func MonoTheme() *Theme {
	return &Theme{}
}

// Styles contains pre-configured lipgloss styles for board rendering.
type Styles struct {
	theme *Theme

	// Light renders an empty light square.
	Light lipgloss.Style

	// Dark renders an empty dark square.
	Dark lipgloss.Style

	// Path renders a square the walk passes through.
	Path lipgloss.Style

	// Knight renders the square the knight stands on.
	Knight lipgloss.Style

	// Label renders file and rank labels.
	Label lipgloss.Style

	// Title renders headings.
	Title lipgloss.Style

	// Muted renders secondary text.
	Muted lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style

	// KnightGlyph is the marker drawn on the knight's square, "N" by
	// default; callers preferring the figurine set it to "♞".
	KnightGlyph string
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Light: lipgloss.NewStyle().
			Background(theme.LightSquare),

		Dark: lipgloss.NewStyle().
			Background(theme.DarkSquare),

		Path: lipgloss.NewStyle().
			Bold(true).
			Background(theme.Path),

		Knight: lipgloss.NewStyle().
			Bold(true).
			Background(theme.Knight),

		Label: lipgloss.NewStyle().
			Foreground(theme.Label),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Title),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		KnightGlyph: "N",
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
