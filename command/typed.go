package command

import "weak"

// ExecuteFunc performs the command on its owner.
type ExecuteFunc[T, P any] func(target *T, parameter P)

// CanExecuteFunc is the guard predicate of a Command.
type CanExecuteFunc[T, P any] func(target *T, parameter P) bool

type commandOptions[T, P any] struct {
	canExecute CanExecuteFunc[T, P]
}

// Option configures a Command.
type Option[T, P any] func(o *commandOptions[T, P])

// WithCanExecute sets the guard predicate. Without one, every call with a
// matching parameter is allowed.
func WithCanExecute[T, P any](fn CanExecuteFunc[T, P]) Option[T, P] {
	return func(o *commandOptions[T, P]) {
		o.canExecute = fn
	}
}

// Command binds an operation taking a P to a weakly held *T.
type Command[T, P any] struct {
	notifier

	target     weak.Pointer[T]
	execute    ExecuteFunc[T, P]
	canExecute CanExecuteFunc[T, P]
	match      matcher[P]
}

// New binds execute to target. It panics if execute is nil.
//
// The operations receive the target as an argument and must not capture it,
// otherwise the command keeps its owner alive. Method expressions such as
// (*Editor).Save fit this shape directly.
func New[T, P any](target *T, execute ExecuteFunc[T, P], opts ...Option[T, P]) *Command[T, P] {
	if execute == nil {
		panic("command: nil execute func")
	}
	var o commandOptions[T, P]
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Command[T, P]{
		notifier:   notifier{changed: newChanged()},
		target:     weak.Make(target),
		execute:    execute,
		canExecute: o.canExecute,
		match:      newMatcher[P](),
	}
}

func (c *Command[T, P]) CanExecute(parameter any) bool {
	target := c.target.Value()
	if target == nil {
		return false
	}
	if c.canExecute == nil {
		return true
	}
	p, ok := c.match.match(parameter)
	if !ok {
		return false
	}
	return c.canExecute(target, p)
}

func (c *Command[T, P]) Execute(parameter any) {
	target := c.target.Value()
	if target == nil {
		return
	}
	p, ok := c.match.match(parameter)
	if !ok {
		return
	}
	if c.canExecute != nil && !c.canExecute(target, p) {
		return
	}
	c.execute(target, p)
}

// Alive reports whether the target is still reachable.
func (c *Command[T, P]) Alive() bool {
	return c.target.Value() != nil
}

// Run executes a Unit command.
func Run[T any](c *Command[T, Unit]) {
	c.Execute(Unit{})
}

// Enabled reports whether a Unit command can execute.
func Enabled[T any](c *Command[T, Unit]) bool {
	return c.CanExecute(Unit{})
}
