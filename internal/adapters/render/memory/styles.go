package memory

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	count   lipgloss.Style
	item    lipgloss.Style
	bullet  lipgloss.Style
	more    lipgloss.Style
	empty   lipgloss.Style
	mood    map[string]lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section: lipgloss.NewStyle().MarginTop(1),
		label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		count:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		item:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		bullet:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		more:    lipgloss.NewStyle().Faint(true),
		empty:   lipgloss.NewStyle().Faint(true),
		mood: map[string]lipgloss.Style{
			"happy":   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			"sad":     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			"neutral": lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		},
	}
}
