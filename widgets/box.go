package widgets

import "github.com/charmbracelet/lipgloss"

// Widget renders into a fixed cell area.
type Widget interface {
	Render(width, height int) string
}

type Box struct {
	Title   string
	Content string
	Focused bool
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	border := BorderColor
	if b.Focused {
		border = AccentColor
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(1, width-2)).
		Height(max(1, height-2))
	if b.Title == "" {
		return style.Render(b.Content)
	}
	return style.Render(titleStyle.Render(b.Title) + "\n" + b.Content)
}
