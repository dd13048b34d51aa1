package counter

import (
	"runtime"
	"testing"
)

func TestIncrementGuard(t *testing.T) {
	c := New(0, 4, 10)

	c.Increment.Run()
	c.Increment.Run()
	if c.Value() != 8 {
		t.Fatalf("value = %d, want 8", c.Value())
	}
	if c.Increment.Enabled() {
		t.Fatal("increment past max should be disabled")
	}
	c.Increment.Execute(nil)
	if c.Value() != 8 {
		t.Fatalf("value = %d after disabled increment, want 8", c.Value())
	}
}

func TestDecrementGuard(t *testing.T) {
	c := New(0, 1, 10)
	if c.Decrement.CanExecute(nil) {
		t.Fatal("decrement below zero should be disabled")
	}
	c.Increment.Run()
	c.Decrement.Run()
	if c.Value() != 0 {
		t.Fatalf("value = %d, want 0", c.Value())
	}
}

func TestAddMatchesIntOnly(t *testing.T) {
	c := New(0, 1, 10)

	c.Add.Execute("3")
	c.Add.Execute(int64(3))
	c.Add.Execute(nil)
	if c.Value() != 0 {
		t.Fatalf("value = %d, non-int parameters must not add", c.Value())
	}

	n := 3
	c.Add.Execute(&n)
	c.Add.Execute(3)
	if c.Value() != 6 {
		t.Fatalf("value = %d, want 6", c.Value())
	}
	if c.Add.CanExecute(5) {
		t.Fatal("adding past max should be disabled")
	}
	if c.Add.CanExecute(0) {
		t.Fatal("adding zero should be disabled")
	}
}

func TestResetGuard(t *testing.T) {
	c := New(2, 1, 10)
	if c.Reset.Enabled() {
		t.Fatal("reset at start should be disabled")
	}
	c.Add.Execute(5)
	c.Reset.Run()
	if c.Value() != 2 {
		t.Fatalf("value = %d, want 2", c.Value())
	}
}

func TestSetLabelOptional(t *testing.T) {
	c := New(0, 1, 10)

	c.SetLabel.Execute("clicks")
	if l, ok := c.Label(); !ok || l != "clicks" {
		t.Fatalf("label = %q %v", l, ok)
	}
	if c.String() != "clicks: 0 / 10" {
		t.Fatalf("string = %q", c.String())
	}

	c.SetLabel.Execute(5)
	if l, _ := c.Label(); l != "clicks" {
		t.Fatalf("int must not replace the label, got %q", l)
	}

	c.SetLabel.Execute(nil)
	if _, ok := c.Label(); ok {
		t.Fatal("nil should clear the label")
	}
}

func TestChangeNotifications(t *testing.T) {
	c := New(0, 5, 5)
	var seen []bool
	c.Increment.CanExecuteChanged().Subscribe(func() { seen = append(seen, c.Increment.Enabled()) })

	c.Increment.Run()
	c.Increment.Run()
	c.Reset.Run()

	if len(seen) != 2 || seen[0] || !seen[1] {
		t.Fatalf("seen = %v, want [false true]", seen)
	}
}

func TestCommandsOutliveCounter(t *testing.T) {
	inc := func() *Counter {
		return New(0, 1, 10)
	}().Increment
	runtime.GC()
	runtime.GC()

	if inc.Alive() || inc.Enabled() {
		t.Fatal("commands must not keep their counter alive")
	}
	inc.Run()
}
