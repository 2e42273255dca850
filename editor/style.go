package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text        lipgloss.Style
	Code        lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
	Composing   lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Code:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Composing:     lipgloss.NewStyle().Underline(true),
	}
}
