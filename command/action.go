package command

import (
	"weak"

	"github.com/jask/bindcmd/event"
)

type actionOptions[T any] struct {
	canExecute func(target *T) bool
}

// ActionOption configures an Action.
type ActionOption[T any] func(o *actionOptions[T])

func WithActionCanExecute[T any](fn func(target *T) bool) ActionOption[T] {
	return func(o *actionOptions[T]) {
		o.canExecute = fn
	}
}

// Action is a command without a parameter. The parameter passed to Execute
// and CanExecute is ignored; only target liveness and the guard decide.
type Action[T any] struct {
	notifier

	target     weak.Pointer[T]
	execute    func(target *T)
	canExecute func(target *T) bool
}

// NewAction binds execute to target. It panics if execute is nil.
func NewAction[T any](target *T, execute func(target *T), opts ...ActionOption[T]) *Action[T] {
	if execute == nil {
		panic("command: nil execute func")
	}
	var o actionOptions[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Action[T]{
		notifier:   notifier{changed: newChanged()},
		target:     weak.Make(target),
		execute:    execute,
		canExecute: o.canExecute,
	}
}

func (a *Action[T]) CanExecute(any) bool {
	return a.Enabled()
}

func (a *Action[T]) Execute(any) {
	a.Run()
}

// Enabled reports whether Run would execute.
func (a *Action[T]) Enabled() bool {
	target := a.target.Value()
	if target == nil {
		return false
	}
	return a.canExecute == nil || a.canExecute(target)
}

func (a *Action[T]) Run() {
	target := a.target.Value()
	if target == nil {
		return
	}
	if a.canExecute != nil && !a.canExecute(target) {
		return
	}
	a.execute(target)
}

func (a *Action[T]) Alive() bool {
	return a.target.Value() != nil
}

func newChanged() *event.Event {
	return event.New()
}
