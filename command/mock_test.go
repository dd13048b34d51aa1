package command

import "runtime"

// targetMock records what the bound operations received. The slice field
// keeps it off the tiny allocator so collection in tests is prompt.
type targetMock[P any] struct {
	calls []P

	canExecuteResult bool
	canExecuteCalls  []P
}

func newTargetMock[P any]() *targetMock[P] {
	return &targetMock[P]{canExecuteResult: true}
}

func (t *targetMock[P]) execute(p P) {
	t.calls = append(t.calls, p)
}

func (t *targetMock[P]) canExecute(p P) bool {
	t.canExecuteCalls = append(t.canExecuteCalls, p)
	return t.canExecuteResult
}

func (t *targetMock[P]) invoked() bool {
	return len(t.calls) > 0
}

type parameterMock struct {
	value int
}

type secondParameterMock struct {
	value int
}

// collect drops every strong reference to a fresh target, runs the collector
// and returns the command still bound to the dead target. counter records
// executions without referencing the target.
func collectedCommand[P any](counter *int, guard bool) *Command[targetMock[P], P] {
	c := func() *Command[targetMock[P], P] {
		t := newTargetMock[P]()
		opts := []Option[targetMock[P], P]{}
		if guard {
			opts = append(opts, WithCanExecute(func(*targetMock[P], P) bool { return true }))
		}
		return New(t, func(_ *targetMock[P], _ P) { *counter++ }, opts...)
	}()
	runtime.GC()
	runtime.GC()
	return c
}
