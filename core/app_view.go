package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/bindcmd/widgets"
)

const paletteRows = 8

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	width := max(1, m.width)
	header := renderBar(headerBarStyle, width, m.title, colorMantle)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))

	var sections []string
	if m.body != nil {
		sections = append(sections, m.body(width))
	}
	sections = append(sections, widgets.ButtonRow(m.renderButtons(), 1))
	body := strings.Join(sections, "\n\n")

	if m.palette.open && bodyHeight > 0 {
		body = widgets.RenderPopup(body, m.renderPalette(min(60, width-6)), width, bodyHeight)
	}
	body = ClipHeight(body, bodyHeight)
	for lipgloss.Height(body) < bodyHeight {
		body += "\n"
	}
	view := strings.Join([]string{header, body, status, footer}, "\n")
	return appStyle.Width(width).MaxWidth(width).Render(view)
}

// renderButtons queries every bound command so the row reflects current
// executability.
func (m Model) renderButtons() []widgets.Button {
	out := make([]widgets.Button, 0, len(m.buttons))
	for i, b := range m.buttons {
		label := b.Label
		if label == "" {
			if e, ok := m.commands.Lookup(b.CommandID); ok {
				label = e.label()
			} else {
				label = b.CommandID
			}
		}
		out = append(out, widgets.Button{
			Label:   label,
			Enabled: m.commands.Enabled(b.CommandID),
			Focused: i == m.focus && !m.palette.open,
		})
	}
	return out
}

func (m Model) renderPalette(width int) string {
	items := make([]widgets.ListItem, 0, len(m.palette.matches))
	for _, c := range m.palette.matches {
		items = append(items, widgets.ListItem{
			Label:       c.Entry.label(),
			Description: c.Entry.Description,
			Enabled:     c.Enabled,
		})
	}
	list := widgets.List{
		Items:  items,
		Cursor: m.palette.cursor,
		Empty:  "No matching commands",
	}
	prompt := keyStyle.Render("cmd> ") + m.palette.query
	return prompt + "\n" + list.Render(max(10, width), paletteRows)
}
