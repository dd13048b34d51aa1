package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/bindcmd/core"
	"github.com/jask/bindcmd/internal/config"
	"github.com/jask/bindcmd/internal/counter"
	"github.com/jask/bindcmd/widgets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	c := counter.New(cfg.Counter.Start, cfg.Counter.Step, cfg.Counter.Max)

	commands, err := registerCommands(c, logger)
	if err != nil {
		log.Fatalf("commands: %v", err)
	}
	defer commands.Close()

	keys := core.NewKeyRegistry(keyBindings())
	if err := keys.ApplyKeybindingConfig(keybindingOverrides(cfg.Keybindings)); err != nil {
		log.Fatalf("keybindings: %v", err)
	}

	m := core.NewModel(core.Options{
		Title:        cfg.UI.Title,
		Keys:         keys,
		Commands:     commands,
		ShowDisabled: cfg.UI.ShowDisabled,
		Buttons: []core.Button{
			{CommandID: counter.IDDecrement, Label: "-"},
			{CommandID: counter.IDIncrement, Label: "+"},
			{CommandID: counter.IDAdd, Label: "+5"},
			{CommandID: counter.IDReset, Label: "Reset"},
		},
		Body: func(width int) string {
			return widgets.Box{Title: "Counter", Content: c.String()}.Render(min(width, 40), 4)
		},
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func registerCommands(c *counter.Counter, logger *slog.Logger) (*core.CommandRegistry, error) {
	reg := core.NewCommandRegistry(core.WithLogger(logger))
	label := "clicks"
	entries := []core.Entry{
		{ID: counter.IDIncrement, Name: "Increment", Description: fmt.Sprintf("Add %d", c.Step()), Command: c.Increment},
		{ID: counter.IDDecrement, Name: "Decrement", Description: fmt.Sprintf("Subtract %d", c.Step()), Command: c.Decrement},
		{ID: counter.IDAdd, Name: "Add Five", Description: "Add 5", Command: c.Add, Parameter: func() any { return 5 }},
		{ID: counter.IDReset, Name: "Reset", Description: "Back to the start value", Command: c.Reset},
		{ID: counter.IDLabel, Name: "Label Counter", Description: "Name the counter", Command: c.SetLabel, Parameter: func() any { return &label }},
		{ID: counter.IDLabel + "-clear", Name: "Clear Label", Description: "Remove the counter name", Command: c.SetLabel},
	}
	for _, e := range entries {
		if err := reg.Register(e); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func keyBindings() []core.Binding {
	return append(core.DefaultKeyBindings(),
		core.CommandBinding(counter.IDIncrement, "inc", "+", "="),
		core.CommandBinding(counter.IDDecrement, "dec", "-"),
		core.CommandBinding(counter.IDReset, "reset", "r"),
	)
}

func keybindingOverrides(items []config.KeybindingEntry) []core.KeybindingConfig {
	out := make([]core.KeybindingConfig, 0, len(items))
	for _, k := range items {
		out = append(out, core.KeybindingConfig{
			Scope:     k.Scope,
			Action:    k.Action,
			CommandID: k.Command,
			Keys:      k.Keys,
		})
	}
	return out
}

// newLogger writes to cfg.Path; stdout belongs to the TUI.
func newLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err != nil {
		return nil, nil, err
	}
	if cfg.Path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}
