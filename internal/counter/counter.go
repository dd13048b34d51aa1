// Package counter is a small view model whose commands are bound to itself.
package counter

import (
	"fmt"
	"strings"

	"github.com/jask/bindcmd/command"
)

const (
	IDIncrement = "counter:increment"
	IDDecrement = "counter:decrement"
	IDAdd       = "counter:add"
	IDReset     = "counter:reset"
	IDLabel     = "counter:label"
)

type Counter struct {
	value int
	start int
	step  int
	max   int
	label *string

	Increment *command.Action[Counter]
	Decrement *command.Action[Counter]
	Reset     *command.Action[Counter]
	Add       *command.Command[Counter, int]
	SetLabel  *command.Command[Counter, *string]
}

// New returns a counter in [0, max] starting at start. step must be positive.
func New(start, step, max int) *Counter {
	c := &Counter{value: start, start: start, step: step, max: max}

	c.Increment = command.NewAction(c, (*Counter).increment, command.WithActionCanExecute((*Counter).canIncrement))
	c.Decrement = command.NewAction(c, (*Counter).decrement, command.WithActionCanExecute((*Counter).canDecrement))
	c.Reset = command.NewAction(c, (*Counter).reset, command.WithActionCanExecute((*Counter).canReset))
	c.Add = command.New(c, (*Counter).add, command.WithCanExecute((*Counter).canAdd))
	c.SetLabel = command.New(c, (*Counter).setLabel)
	return c
}

func (c *Counter) Value() int { return c.value }

func (c *Counter) Step() int { return c.step }

// Label returns the label and whether one is set.
func (c *Counter) Label() (string, bool) {
	if c.label == nil {
		return "", false
	}
	return *c.label, true
}

func (c *Counter) String() string {
	if l, ok := c.Label(); ok {
		return fmt.Sprintf("%s: %d / %d", l, c.value, c.max)
	}
	return fmt.Sprintf("%d / %d", c.value, c.max)
}

func (c *Counter) increment() { c.set(c.value + c.step) }

func (c *Counter) canIncrement() bool { return c.value+c.step <= c.max }

func (c *Counter) decrement() { c.set(c.value - c.step) }

func (c *Counter) canDecrement() bool { return c.value-c.step >= 0 }

func (c *Counter) reset() { c.set(c.start) }

func (c *Counter) canReset() bool { return c.value != c.start }

func (c *Counter) add(n int) { c.set(c.value + n) }

func (c *Counter) canAdd(n int) bool {
	v := c.value + n
	return n != 0 && v >= 0 && v <= c.max
}

// setLabel clears the label on nil.
func (c *Counter) setLabel(l *string) {
	if l == nil || strings.TrimSpace(*l) == "" {
		c.label = nil
		return
	}
	s := strings.TrimSpace(*l)
	c.label = &s
}

func (c *Counter) set(v int) {
	if v == c.value {
		return
	}
	c.value = v
	// Every value-dependent guard may have flipped.
	c.Increment.InvokeCanExecuteChanged()
	c.Decrement.InvokeCanExecuteChanged()
	c.Reset.InvokeCanExecuteChanged()
	c.Add.InvokeCanExecuteChanged()
}
