package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#86AAEC")).PaddingLeft(1)

// renderChips draws one colored block per chip with its label beside it.
func renderChips(chips []chip) string {
	lines := make([]string, 0, len(chips))
	for _, c := range chips {
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(c.hex)).
			Foreground(lipgloss.Color(contrastColor(c.hex))).
			Padding(0, 1).
			Render(c.hex)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, block, labelStyle.Render(c.label)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// contrastColor picks black or white text for a background.
func contrastColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#FFFFFF"
	}
	if l, _, _ := c.Lab(); l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}
