package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Action string

const (
	ActionQuit      Action = "quit"
	ActionPalette   Action = "palette"
	ActionFocusNext Action = "focus_next"
	ActionFocusPrev Action = "focus_prev"
	ActionActivate  Action = "activate"
	ActionClose     Action = "close"
	ActionUp        Action = "up"
	ActionDown      Action = "down"
	// ActionCommand executes Binding.CommandID.
	ActionCommand Action = "command"
)

const (
	ScopeGlobal  = "global"
	ScopeButtons = "buttons"
	ScopePalette = "palette"
)

var ErrInvalidKeybinding = errors.New("invalid keybinding")

type Binding struct {
	Action    Action
	Keys      []string
	Help      string
	Scopes    []string
	CommandID string
}

// KeybindingConfig overrides the keys of the binding for Action (or for
// CommandID when Action is "command") in Scope.
type KeybindingConfig struct {
	Scope     string
	Action    string
	CommandID string
	Keys      []string
}

// KeyRegistry indexes bindings per scope. A key is bound at most once per
// scope; the first registration wins.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

func NewKeyRegistry(bindings []Binding) *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}
	for _, b := range bindings {
		r.Register(b)
	}
	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	keys := normalizeKeyList(b.Keys)
	if len(keys) == 0 {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || r.scopeHasAnyKey(scope, keys) {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		cp := b
		cp.Keys = slices.Clone(keys)
		cp.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &cp)
		for _, k := range cp.Keys {
			r.indexByScope[scope][k] = &cp
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup finds the binding for keyName in scope, falling back to the global
// scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != ScopeGlobal {
		return r.lookupInScope(keyName, ScopeGlobal)
	}
	return nil
}

func (r *KeyRegistry) LookupMsg(msg tea.KeyMsg, scope string) *Binding {
	return r.Lookup(msg.String(), scope)
}

// HelpBindings converts the bindings of scope and the global scope to bubbles
// key bindings. enabled decides each binding's enabled state so help views
// hide shortcuts whose command cannot run.
func (r *KeyRegistry) HelpBindings(scope string, enabled func(Binding) bool) []key.Binding {
	items := r.BindingsForScope(scope)
	if scope != ScopeGlobal {
		items = append(items, r.BindingsForScope(ScopeGlobal)...)
	}
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help))
		if enabled != nil {
			kb.SetEnabled(enabled(b))
		}
		out = append(out, kb)
	}
	return out
}

func (r *KeyRegistry) ApplyKeybindingConfig(items []KeybindingConfig) error {
	if r == nil || len(items) == 0 {
		return nil
	}
	type pair struct {
		scope  string
		action Action
		id     string
	}
	seen := make(map[pair]bool)
	for _, o := range items {
		scope := strings.TrimSpace(o.Scope)
		if scope == "" {
			return fmt.Errorf("%w: scope is required", ErrInvalidKeybinding)
		}
		action := Action(strings.TrimSpace(o.Action))
		if action == "" {
			return fmt.Errorf("%w: scope=%q: action is required", ErrInvalidKeybinding, scope)
		}
		id := strings.TrimSpace(o.CommandID)
		keys := normalizeKeyList(o.Keys)
		if len(keys) == 0 {
			return fmt.Errorf("%w: scope=%q action=%q: keys are required", ErrInvalidKeybinding, scope, action)
		}
		bindings := r.bindingsByScope[scope]
		if len(bindings) == 0 {
			return fmt.Errorf("%w: scope=%q: unknown scope", ErrInvalidKeybinding, scope)
		}
		i := slices.IndexFunc(bindings, func(b *Binding) bool {
			return b.Action == action && (action != ActionCommand || b.CommandID == id)
		})
		if i < 0 {
			return fmt.Errorf("%w: scope=%q action=%q: unknown action in scope", ErrInvalidKeybinding, scope, action)
		}
		p := pair{scope: scope, action: action, id: id}
		if seen[p] {
			return fmt.Errorf("%w: scope=%q action=%q: duplicated override entry", ErrInvalidKeybinding, scope, action)
		}
		seen[p] = true
		bindings[i].Keys = keys
	}

	r.rebuildIndex()
	for scope, bindings := range r.bindingsByScope {
		owner := make(map[string]Action)
		for _, b := range bindings {
			for _, k := range b.Keys {
				if prev, ok := owner[k]; ok {
					return fmt.Errorf("%w: scope=%q key=%q bound to both %q and %q", ErrInvalidKeybinding, scope, k, prev, b.Action)
				}
				owner[k] = b.Action
			}
		}
	}
	return nil
}

func (r *KeyRegistry) rebuildIndex() {
	r.indexByScope = make(map[string]map[string]*Binding, len(r.bindingsByScope))
	for scope, bindings := range r.bindingsByScope {
		idx := make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				if _, exists := idx[k]; !exists {
					idx[k] = b
				}
			}
		}
		r.indexByScope[scope] = idx
	}
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	return r.indexByScope[scope][keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != " " && strings.TrimSpace(k) == "" {
			continue
		}
		n := normalizeKeyName(k)
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

// scopeMatch reports whether an entry restricted to scopes is available in
// scope. No scopes, "*" and the global scope mean everywhere.
func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		s = strings.TrimSpace(s)
		if s == "*" || strings.EqualFold(s, ScopeGlobal) || strings.EqualFold(s, strings.TrimSpace(scope)) {
			return true
		}
	}
	return false
}
