package core

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/bindcmd/command"
	"github.com/jask/bindcmd/event"
)

var (
	ErrCommandInvalid    = errors.New("invalid command")
	ErrDuplicateCommand  = errors.New("duplicate command")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrCommandOutOfScope = errors.New("command unavailable in scope")
	ErrCommandDisabled   = errors.New("command is disabled")
)

// maxSuggestDistance bounds "did you mean" suggestions.
const maxSuggestDistance = 3

// Entry registers a command under an ID for the palette and key bindings.
type Entry struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Command     command.Executable
	// Parameter supplies the value passed to Execute and CanExecute.
	// Nil passes an absent parameter.
	Parameter func() any
}

func (e Entry) parameter() any {
	if e.Parameter == nil {
		return nil
	}
	return e.Parameter()
}

func (e Entry) label() string {
	if strings.TrimSpace(e.Name) != "" {
		return e.Name
	}
	return e.ID
}

type CommandMatch struct {
	Entry   Entry
	Score   int
	Enabled bool
}

type RegistryOption func(r *CommandRegistry)

func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *CommandRegistry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// CommandRegistry stores heterogeneous commands behind command.Executable.
// It is not safe for concurrent use; bubbletea drives it from Update.
type CommandRegistry struct {
	entries []Entry
	byID    map[string]Entry
	subs    []event.Subscription
	changed bool
	lastID  string
	logger  *slog.Logger
}

func NewCommandRegistry(opts ...RegistryOption) *CommandRegistry {
	r := &CommandRegistry{
		byID:   make(map[string]Entry),
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Register adds e. Commands that implement command.Notifier are observed so
// Changed reports when any of them may have flipped executability.
func (r *CommandRegistry) Register(e Entry) error {
	e.ID = strings.TrimSpace(e.ID)
	if e.ID == "" {
		return fmt.Errorf("%w: missing id", ErrCommandInvalid)
	}
	if e.Command == nil {
		return fmt.Errorf("%w: %s: missing command", ErrCommandInvalid, e.ID)
	}
	if _, ok := r.byID[e.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, e.ID)
	}
	r.entries = append(r.entries, e)
	r.byID[e.ID] = e
	if n, ok := e.Command.(command.Notifier); ok {
		r.subs = append(r.subs, n.CanExecuteChanged().Subscribe(func() { r.changed = true }))
	}
	return nil
}

func (r *CommandRegistry) Lookup(id string) (Entry, bool) {
	e, ok := r.byID[strings.TrimSpace(id)]
	return e, ok
}

func (r *CommandRegistry) All() []Entry {
	return slices.Clone(r.entries)
}

// Enabled reports whether the command registered as id can execute now.
func (r *CommandRegistry) Enabled(id string) bool {
	e, ok := r.Lookup(id)
	if !ok {
		return false
	}
	return e.Command.CanExecute(e.parameter())
}

// LastExecuted returns the ID of the most recently executed command.
func (r *CommandRegistry) LastExecuted() string {
	return r.lastID
}

// TakeChanged reports whether any observed command announced a change since
// the previous call, and resets the flag.
func (r *CommandRegistry) TakeChanged() bool {
	c := r.changed
	r.changed = false
	return c
}

// Close unsubscribes from every observed command.
func (r *CommandRegistry) Close() {
	for _, s := range r.subs {
		s.Cancel()
	}
	r.subs = nil
}

// Search returns the commands available in scope that fuzzy-match query.
// Enabled commands sort first, then the last executed one, then by score.
func (r *CommandRegistry) Search(query, scope string) []CommandMatch {
	if r == nil {
		return nil
	}
	q := strings.TrimSpace(query)
	out := make([]CommandMatch, 0, len(r.entries))
	for _, e := range r.entries {
		if !scopeMatch(scope, e.Scopes) {
			continue
		}
		matched, score := entryMatchScore(e, q)
		if !matched {
			continue
		}
		out = append(out, CommandMatch{
			Entry:   e,
			Score:   score,
			Enabled: e.Command.CanExecute(e.parameter()),
		})
	}
	slices.SortStableFunc(out, func(a, b CommandMatch) int {
		if a.Enabled != b.Enabled {
			if a.Enabled {
				return -1
			}
			return 1
		}
		aMRU := r.lastID != "" && a.Entry.ID == r.lastID
		bMRU := r.lastID != "" && b.Entry.ID == r.lastID
		if aMRU != bMRU {
			if aMRU {
				return -1
			}
			return 1
		}
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		if c := cmp.Compare(strings.ToLower(a.Entry.label()), strings.ToLower(b.Entry.label())); c != 0 {
			return c
		}
		return cmp.Compare(a.Entry.ID, b.Entry.ID)
	})
	return out
}

// Execute runs the command registered as id. The command itself fails
// silently, so disabled and out-of-scope calls are reported here instead.
func (r *CommandRegistry) Execute(id, scope string) error {
	if r == nil {
		return fmt.Errorf("command registry is not initialized")
	}
	e, ok := r.Lookup(id)
	if !ok {
		r.logger.Debug("unknown command", "id", id)
		if s, found := r.Suggest(id); found {
			return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownCommand, id, s)
		}
		return fmt.Errorf("%w %q", ErrUnknownCommand, id)
	}
	if !scopeMatch(scope, e.Scopes) {
		return fmt.Errorf("%w: %s in %s", ErrCommandOutOfScope, e.ID, scope)
	}
	p := e.parameter()
	if !e.Command.CanExecute(p) {
		r.logger.Debug("command disabled", "id", e.ID, "scope", scope)
		return fmt.Errorf("%w: %s", ErrCommandDisabled, e.label())
	}
	e.Command.Execute(p)
	r.lastID = e.ID
	r.logger.Debug("command executed", "id", e.ID, "scope", scope)
	return nil
}

// Suggest returns the registered ID closest to id by edit distance.
func (r *CommandRegistry) Suggest(id string) (string, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return "", false
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, e := range r.entries {
		d := levenshtein.ComputeDistance(id, strings.ToLower(e.ID))
		if d < bestDist || (d == bestDist && e.ID < best) {
			best, bestDist = e.ID, d
		}
	}
	return best, best != ""
}

func entryMatchScore(e Entry, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	best := -1
	for _, field := range []string{e.Name, e.ID, e.Description} {
		matched, score := fuzzyMatchScore(field, query)
		if matched && score > best {
			best = score
		}
	}
	if best < 0 {
		return false, 0
	}
	return true, best
}

func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	from := 0
	for i := 0; i < len(queryLower); i++ {
		j := strings.IndexByte(labelLower[from:], queryLower[i])
		if j < 0 {
			return false, 0
		}
		matchIdx = append(matchIdx, from+j)
		from += j + 1
	}

	score := len(queryLower)
	if matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}
