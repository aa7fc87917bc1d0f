package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	chordStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	arrowStyle = lipgloss.NewStyle().Faint(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func renderChord(name string) string {
	return chordStyle.Render(name)
}

func renderMapping(from string, to string) string {
	return renderChord(from) + arrowStyle.Render(" -> ") + renderChord(to)
}

func renderLabel(label string) string {
	return labelStyle.Render(label)
}
