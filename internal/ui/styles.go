package ui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	text    lipgloss.Style
	message lipgloss.Style
	bold    lipgloss.Style
	head    lipgloss.Style
	danger  lipgloss.Style
	notice  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	text := r.NewStyle().Foreground(lipgloss.Color("4"))

	return styles{
		text:    text,
		message: text.TabWidth(lipgloss.NoTabConversion),
		bold:    text.Bold(true),
		head:    r.NewStyle().Foreground(lipgloss.Color("6")).Italic(true),
		danger:  r.NewStyle().Foreground(lipgloss.Color("1")),
		notice:  r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}
