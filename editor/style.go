package editor

import "github.com/charmbracelet/lipgloss"

// Style controls how rows are drawn. Zero-value styles render plain text.
type Style struct {
	// Gutter draws the separator after line numbers.
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style // number of the caret row while focused

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

// DefaultStyle uses adaptive colors so light and dark terminals both read well.
func DefaultStyle() Style {
	dim := lipgloss.AdaptiveColor{Light: "250", Dark: "240"}
	return Style{
		Gutter:        lipgloss.NewStyle().Foreground(dim),
		LineNum:       lipgloss.NewStyle().Foreground(dim),
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "252"}).Bold(true),
		Selection:     lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"}),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}

// MonochromeStyle marks the selection and caret with attributes only, for
// terminals without color.
func MonochromeStyle() Style {
	return Style{
		LineNumActive: lipgloss.NewStyle().Bold(true),
		Selection:     lipgloss.NewStyle().Underline(true),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}
