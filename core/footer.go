package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderFooter shows the shortcuts of the active scope. Shortcuts bound to a
// command that cannot execute are hidden.
func RenderFooter(m Model) string {
	bindings := m.keys.HelpBindings(m.ActiveScope(), func(b Binding) bool {
		if b.Action != ActionCommand {
			return true
		}
		return m.commands.Enabled(b.CommandID)
	})
	line := m.help.ShortHelpView(bindings)
	if strings.TrimSpace(line) == "" {
		line = helpDescStyle.Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, m.width), line, colorMantle)
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, m.width), msg, colorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
