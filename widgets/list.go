package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	listCursorStyle   = lipgloss.NewStyle().Foreground(AccentColor).Bold(true)
	listDisabledStyle = lipgloss.NewStyle().Foreground(MutedColor)
	listDescStyle     = lipgloss.NewStyle().Foreground(MutedColor)
)

// ListItem is one row of a command list.
type ListItem struct {
	Label       string
	Description string
	Enabled     bool
}

// List renders a scrolling list with a cursor marker.
type List struct {
	Title  string
	Items  []ListItem
	Cursor int
	Empty  string
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, height)
	if l.Title != "" {
		rows = append(rows, titleStyle.Render(l.Title))
	}
	visible := height - len(rows)
	if len(l.Items) == 0 {
		if visible > 0 && l.Empty != "" {
			rows = append(rows, listDisabledStyle.Render(l.Empty))
		}
		return strings.Join(rows, "\n")
	}

	top := 0
	if visible > 0 && l.Cursor >= visible {
		top = l.Cursor - visible + 1
	}
	for i := top; i < len(l.Items) && len(rows) < height; i++ {
		it := l.Items[i]
		marker := "  "
		if i == l.Cursor {
			marker = listCursorStyle.Render("> ")
		}
		label := it.Label
		if !it.Enabled {
			label = listDisabledStyle.Render(label + " (disabled)")
		}
		row := marker + label
		if it.Description != "" {
			row += "  " + listDescStyle.Render(it.Description)
		}
		rows = append(rows, ansi.Truncate(row, width, "…"))
	}
	return strings.Join(rows, "\n")
}
