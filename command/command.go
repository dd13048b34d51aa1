// Package command binds UI actions to a weakly held owner.
//
// A view model owns its commands; a view (key binding, button, palette)
// invokes them through the Executable interface without knowing the concrete
// parameter type. Commands never keep their owner alive: once the owner is
// garbage collected, the command reports itself as not executable and
// Execute does nothing.
//
// Failures are silent. A dead owner, a parameter of the wrong type,
// a missing required parameter and a guard that returns false all collapse to
// CanExecute returning false and Execute being a no-op.
package command

import "github.com/jask/bindcmd/event"

// Executable is the capability set hosts depend on.
type Executable interface {
	// Execute runs the command with parameter if it can be executed.
	Execute(parameter any)
	// CanExecute reports whether Execute(parameter) would run.
	CanExecute(parameter any) bool
}

// Notifier is an Executable that announces when its executability may have
// changed.
type Notifier interface {
	Executable
	CanExecuteChanged() *event.Event
	InvokeCanExecuteChanged()
}

var (
	_ Notifier = (*Command[struct{}, int])(nil)
	_ Notifier = (*Action[struct{}])(nil)
)

// notifier is embedded by both command variants.
type notifier struct {
	changed *event.Event
}

// CanExecuteChanged returns the event observers subscribe to in order to
// re-query CanExecute.
func (n notifier) CanExecuteChanged() *event.Event {
	return n.changed
}

// InvokeCanExecuteChanged notifies subscribers synchronously.
func (n notifier) InvokeCanExecuteChanged() {
	n.changed.Invoke()
}
