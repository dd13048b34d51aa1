package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup draws popup as a bordered card centered over base. Lines of
// base outside the card stay visible.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor).
		Padding(0, 1).
		Render(popup)
	cardLines := strings.Split(card, "\n")
	cardW := min(width, lipgloss.Width(card))
	left := max(0, (width-cardW)/2)
	top := max(0, (height-len(cardLines))/2)

	lines := canvas(base, width, height)
	for i, cl := range cardLines {
		row := top + i
		if row >= height {
			break
		}
		prefix := ansi.Truncate(lines[row], left, "")
		prefix += strings.Repeat(" ", left-ansi.StringWidth(prefix))
		lines[row] = padCells(prefix+ansi.Truncate(cl, width-left, ""), width)
	}
	return strings.Join(lines, "\n")
}

func canvas(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padCells(lines[i], width)
	}
	return lines
}

func padCells(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
