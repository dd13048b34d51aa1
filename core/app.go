package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Button binds a rendered button to a registered command.
type Button struct {
	CommandID string
	Label     string
}

type Options struct {
	Title        string
	Keys         *KeyRegistry
	Commands     *CommandRegistry
	Buttons      []Button
	ShowDisabled bool
	// Body renders the view model above the button row.
	Body func(width int) string
}

type palette struct {
	open    bool
	query   string
	cursor  int
	matches []CommandMatch
}

type Model struct {
	width        int
	height       int
	title        string
	keys         *KeyRegistry
	commands     *CommandRegistry
	buttons      []Button
	focus        int
	showDisabled bool
	body         func(width int) string
	help         help.Model
	palette      palette
	status       string
	statusErr    bool
	quitting     bool
}

func NewModel(o Options) Model {
	keys := o.Keys
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	commands := o.Commands
	if commands == nil {
		commands = NewCommandRegistry()
	}
	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = helpSepStyle
	title := strings.TrimSpace(o.Title)
	if title == "" {
		title = "bindcmd"
	}
	return Model{
		width:        80,
		height:       24,
		title:        title,
		keys:         keys,
		commands:     commands,
		buttons:      append([]Button(nil), o.Buttons...),
		showDisabled: o.ShowDisabled,
		body:         o.Body,
		help:         h,
		status:       "Ready",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m Model) ActiveScope() string {
	if m.palette.open {
		return ScopePalette
	}
	return ScopeButtons
}

func (m Model) Focused() int {
	return m.focus
}

func (m Model) PaletteOpen() bool {
	return m.palette.open
}

func (m Model) PaletteMatches() []CommandMatch {
	return m.palette.matches
}

func (m Model) Commands() *CommandRegistry {
	return m.commands
}
