package controller

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor = lipgloss.Color("6")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(accentColor).
			Bold(true)
)

func statusStyle(status string) lipgloss.Style {
	style := lipgloss.NewStyle().Width(10).Bold(true)

	switch status {
	case statusFixed, statusWouldFix:
		return style.Foreground(lipgloss.Color("10"))
	case statusNormalized:
		return style.Foreground(lipgloss.Color("12"))
	case statusUnresolved:
		return style.Foreground(lipgloss.Color("11"))
	case statusFailed:
		return style.Foreground(lipgloss.Color("9"))
	default:
		return style.Foreground(lipgloss.Color("8"))
	}
}

// truncateFile shortens text to the given cell width, ending in an ellipsis.
func truncateFile(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	var b strings.Builder

	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		b.WriteRune(r)

		currentWidth += rWidth
	}

	b.WriteString(ellipsis)

	return b.String()
}
