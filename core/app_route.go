package core

import (
	"fmt"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case CommandExecuteMsg:
		return m.execute(msg.CommandID, m.ActiveScope())
	case CommandExecutedMsg:
		if e, ok := m.commands.Lookup(msg.CommandID); ok {
			m.SetStatus("Ran " + e.label())
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.palette.open {
			return m.updatePalette(msg)
		}
		return m.updateButtons(msg)
	}
	return m, nil
}

func (m Model) updateButtons(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.keys.LookupMsg(msg, ScopeButtons)
	if b == nil {
		return m, nil
	}
	switch b.Action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionPalette:
		m.openPalette()
		return m, nil
	case ActionFocusNext:
		m.moveFocus(1)
		return m, nil
	case ActionFocusPrev:
		m.moveFocus(-1)
		return m, nil
	case ActionActivate:
		if m.focus < 0 || m.focus >= len(m.buttons) {
			return m, nil
		}
		return m.execute(m.buttons[m.focus].CommandID, ScopeButtons)
	case ActionCommand:
		return m.execute(b.CommandID, ScopeButtons)
	}
	return m, nil
}

func (m Model) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if b := m.keys.lookupInScope(normalizeKeyName(msg.String()), ScopePalette); b != nil {
		switch b.Action {
		case ActionClose:
			m.closePalette()
			return m, nil
		case ActionUp:
			m.palette.cursor = max(0, m.palette.cursor-1)
			return m, nil
		case ActionDown:
			m.palette.cursor = min(max(0, len(m.palette.matches)-1), m.palette.cursor+1)
			return m, nil
		case ActionActivate:
			if m.palette.cursor >= len(m.palette.matches) {
				return m, nil
			}
			sel := m.palette.matches[m.palette.cursor]
			if !sel.Enabled {
				m.SetError(fmt.Errorf("%w: %s", ErrCommandDisabled, sel.Entry.label()))
				return m, nil
			}
			m.closePalette()
			return m.execute(sel.Entry.ID, ScopePalette)
		}
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if m.palette.query != "" {
			_, size := utf8.DecodeLastRuneInString(m.palette.query)
			m.palette.query = m.palette.query[:len(m.palette.query)-size]
		}
	case tea.KeySpace:
		m.palette.query += " "
	case tea.KeyRunes:
		m.palette.query += string(msg.Runes)
	default:
		if b := m.keys.LookupMsg(msg, ScopeGlobal); b != nil && b.Action == ActionPalette {
			m.closePalette()
		}
		return m, nil
	}
	m.palette.cursor = 0
	m.rebuildMatches()
	return m, nil
}

// execute runs id through the registry and refreshes anything derived from
// command state when a command announced a change.
func (m Model) execute(id, scope string) (tea.Model, tea.Cmd) {
	if err := m.commands.Execute(id, scope); err != nil {
		m.SetError(err)
		return m, nil
	}
	if m.commands.TakeChanged() && m.palette.open {
		m.rebuildMatches()
	}
	return m, func() tea.Msg { return CommandExecutedMsg{CommandID: id} }
}

func (m *Model) moveFocus(delta int) {
	n := len(m.buttons)
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m *Model) openPalette() {
	m.palette = palette{open: true}
	m.rebuildMatches()
}

func (m *Model) closePalette() {
	m.palette = palette{}
}

func (m *Model) rebuildMatches() {
	all := m.commands.Search(m.palette.query, ScopePalette)
	if m.showDisabled {
		m.palette.matches = all
	} else {
		m.palette.matches = all[:0:0]
		for _, c := range all {
			if c.Enabled {
				m.palette.matches = append(m.palette.matches, c)
			}
		}
	}
	if m.palette.cursor >= len(m.palette.matches) {
		m.palette.cursor = max(0, len(m.palette.matches)-1)
	}
}
