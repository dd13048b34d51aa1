package core

func DefaultKeyBindings() []Binding {
	return []Binding{
		{Keys: []string{"q"}, Action: ActionQuit, Help: "quit", Scopes: []string{ScopeGlobal}},
		{Keys: []string{"ctrl+k", ":"}, Action: ActionPalette, Help: "commands", Scopes: []string{ScopeGlobal}},
		{Keys: []string{"tab", "right", "l"}, Action: ActionFocusNext, Help: "next", Scopes: []string{ScopeButtons}},
		{Keys: []string{"shift+tab", "left", "h"}, Action: ActionFocusPrev, Help: "prev", Scopes: []string{ScopeButtons}},
		{Keys: []string{"enter", "space"}, Action: ActionActivate, Help: "press", Scopes: []string{ScopeButtons}},
		{Keys: []string{"esc"}, Action: ActionClose, Help: "close", Scopes: []string{ScopePalette}},
		{Keys: []string{"enter"}, Action: ActionActivate, Help: "run", Scopes: []string{ScopePalette}},
		{Keys: []string{"up", "ctrl+p"}, Action: ActionUp, Help: "up", Scopes: []string{ScopePalette}},
		{Keys: []string{"down", "ctrl+n"}, Action: ActionDown, Help: "down", Scopes: []string{ScopePalette}},
	}
}

// CommandBinding binds keys to a registered command in the buttons scope.
func CommandBinding(commandID, help string, keys ...string) Binding {
	return Binding{
		Action:    ActionCommand,
		CommandID: commandID,
		Keys:      keys,
		Help:      help,
		Scopes:    []string{ScopeButtons},
	}
}
