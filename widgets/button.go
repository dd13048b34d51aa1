package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	AccentColor   lipgloss.Color = "#89b4fa"
	BorderColor   lipgloss.Color = "#585b70"
	MutedColor    lipgloss.Color = "#6c7086"
	TextColor     lipgloss.Color = "#cdd6f4"
	SurfaceColor  lipgloss.Color = "#313244"
	DisabledColor lipgloss.Color = "#45475a"

	titleStyle = lipgloss.NewStyle().Foreground(AccentColor).Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor).
			Padding(0, 2)
	focusedButtonStyle = buttonStyle.
				Foreground(SurfaceColor).
				Background(AccentColor).
				Bold(true)
	disabledButtonStyle = buttonStyle.
				Foreground(MutedColor).
				Background(DisabledColor).
				Strikethrough(true)
	focusedDisabledButtonStyle = disabledButtonStyle.
					Underline(true)
)

// Button mirrors the executability of the command it is bound to.
type Button struct {
	Label   string
	Enabled bool
	Focused bool
}

func (b Button) Render() string {
	label := strings.TrimSpace(b.Label)
	switch {
	case !b.Enabled && b.Focused:
		return focusedDisabledButtonStyle.Render(label)
	case !b.Enabled:
		return disabledButtonStyle.Render(label)
	case b.Focused:
		return focusedButtonStyle.Render(label)
	default:
		return buttonStyle.Render(label)
	}
}

// ButtonRow joins buttons horizontally with gap blank columns between them.
func ButtonRow(buttons []Button, gap int) string {
	if len(buttons) == 0 {
		return ""
	}
	sep := strings.Repeat(" ", max(0, gap))
	parts := make([]string, 0, len(buttons)*2-1)
	for i, b := range buttons {
		if i > 0 && sep != "" {
			parts = append(parts, sep)
		}
		parts = append(parts, b.Render())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
