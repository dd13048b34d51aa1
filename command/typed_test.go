package command

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func intPtr(v int) *int { return &v }

func TestExecuteValueParameter(t *testing.T) {
	target := newTargetMock[int]()
	c := New(target, (*targetMock[int]).execute)

	c.Execute(5)

	if d := cmp.Diff([]int{5}, target.calls); d != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", d)
	}
}

func TestExecuteValueParameterOptionalDeclared(t *testing.T) {
	target := newTargetMock[*int]()
	c := New(target, (*targetMock[*int]).execute)

	c.Execute(5)

	if len(target.calls) != 1 || target.calls[0] == nil || *target.calls[0] != 5 {
		t.Fatalf("expected one call with 5, got %v", target.calls)
	}
}

func TestExecuteWrongValueType(t *testing.T) {
	target := newTargetMock[string]()
	c := New(target, (*targetMock[string]).execute)

	c.Execute(5)

	if target.invoked() {
		t.Fatalf("int must not match string, got %v", target.calls)
	}
}

func TestExecuteWrongOptionalValueType(t *testing.T) {
	target := newTargetMock[*string]()
	c := New(target, (*targetMock[*string]).execute)

	c.Execute(5)

	if target.invoked() {
		t.Fatalf("int must not match *string, got %v", target.calls)
	}
}

func TestExecuteNoNumericCoercion(t *testing.T) {
	target := newTargetMock[int64]()
	c := New(target, (*targetMock[int64]).execute)

	c.Execute(5)
	c.Execute(int32(5))

	if target.invoked() {
		t.Fatalf("int and int32 must not match int64, got %v", target.calls)
	}
}

func TestExecuteOptionalValueUnwraps(t *testing.T) {
	target := newTargetMock[int]()
	c := New(target, (*targetMock[int]).execute)

	c.Execute(intPtr(5))

	if d := cmp.Diff([]int{5}, target.calls); d != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", d)
	}
}

func TestExecuteNilOptionalValue(t *testing.T) {
	target := newTargetMock[int]()
	c := New(target, (*targetMock[int]).execute)

	c.Execute((*int)(nil))
	c.Execute(nil)

	if target.invoked() {
		t.Fatalf("absent value must not match int, got %v", target.calls)
	}
}

func TestExecuteNilForOptionalDeclared(t *testing.T) {
	target := newTargetMock[*int]()
	c := New(target, (*targetMock[*int]).execute)

	c.Execute(nil)

	if len(target.calls) != 1 || target.calls[0] != nil {
		t.Fatalf("expected one call with nil, got %v", target.calls)
	}
}

func TestExecuteDoubleOptionalUnwrapsOneLevel(t *testing.T) {
	inner := intPtr(5)

	optional := newTargetMock[*int]()
	New(optional, (*targetMock[*int]).execute).Execute(&inner)
	if len(optional.calls) != 1 || optional.calls[0] != inner {
		t.Fatalf("**int should unwrap once into *int, got %v", optional.calls)
	}

	value := newTargetMock[int]()
	New(value, (*targetMock[int]).execute).Execute(&inner)
	if value.invoked() {
		t.Fatalf("**int must not unwrap twice into int, got %v", value.calls)
	}
}

func TestExecuteReferenceParameter(t *testing.T) {
	target := newTargetMock[*parameterMock]()
	c := New(target, (*targetMock[*parameterMock]).execute)
	p := &parameterMock{value: 5}

	c.Execute(p)

	if len(target.calls) != 1 || target.calls[0] != p {
		t.Fatalf("expected the same pointer, got %v", target.calls)
	}
}

func TestExecuteStructParameterPromotedToPointer(t *testing.T) {
	target := newTargetMock[*parameterMock]()
	c := New(target, (*targetMock[*parameterMock]).execute)

	c.Execute(parameterMock{value: 5})

	if len(target.calls) != 1 || target.calls[0].value != 5 {
		t.Fatalf("expected promoted value 5, got %v", target.calls)
	}
}

func TestExecuteWrongReferenceType(t *testing.T) {
	tests := []struct {
		name  string
		param any
	}{
		{"pointer", &parameterMock{value: 5}},
		{"value", parameterMock{value: 5}},
		{"int", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			byValue := newTargetMock[secondParameterMock]()
			New(byValue, (*targetMock[secondParameterMock]).execute).Execute(tt.param)
			if byValue.invoked() {
				t.Fatalf("%T must not match secondParameterMock", tt.param)
			}

			byPointer := newTargetMock[*secondParameterMock]()
			New(byPointer, (*targetMock[*secondParameterMock]).execute).Execute(tt.param)
			if byPointer.invoked() {
				t.Fatalf("%T must not match *secondParameterMock", tt.param)
			}
		})
	}
}

func TestExecuteGuardRejects(t *testing.T) {
	target := newTargetMock[int]()
	target.canExecuteResult = false
	c := New(target, (*targetMock[int]).execute, WithCanExecute((*targetMock[int]).canExecute))

	c.Execute(5)

	if target.invoked() {
		t.Fatalf("guard returned false but execute ran: %v", target.calls)
	}
	if d := cmp.Diff([]int{5}, target.canExecuteCalls); d != "" {
		t.Fatalf("guard calls mismatch (-want +got):\n%s", d)
	}
}

func TestExecuteGuardAllows(t *testing.T) {
	target := newTargetMock[int]()
	c := New(target, (*targetMock[int]).execute, WithCanExecute((*targetMock[int]).canExecute))

	c.Execute(5)

	if d := cmp.Diff([]int{5}, target.calls); d != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", d)
	}
}

func TestExecuteSkipsGuardOnMismatch(t *testing.T) {
	target := newTargetMock[int]()
	c := New(target, (*targetMock[int]).execute, WithCanExecute((*targetMock[int]).canExecute))

	c.Execute("5")

	if len(target.canExecuteCalls) != 0 || target.invoked() {
		t.Fatalf("mismatched parameter reached the operations: guard=%v exec=%v", target.canExecuteCalls, target.calls)
	}
}

func TestCanExecuteWithoutGuard(t *testing.T) {
	target := newTargetMock[int]()
	c := New(target, (*targetMock[int]).execute)

	for _, p := range []any{5, 0, -1} {
		if !c.CanExecute(p) {
			t.Fatalf("CanExecute(%v) = false, want true", p)
		}
	}
}

func TestCanExecuteWithGuard(t *testing.T) {
	tests := []struct {
		name   string
		param  any
		result bool
		want   bool
	}{
		{"match allowed", 5, true, true},
		{"match rejected", 5, false, false},
		{"optional unwraps", intPtr(5), true, true},
		{"nil optional", (*int)(nil), true, false},
		{"absent", nil, true, false},
		{"wrong type", "5", true, false},
		{"wrong numeric type", int64(5), true, false},
		{"reference type", &parameterMock{value: 5}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := newTargetMock[int]()
			target.canExecuteResult = tt.result
			c := New(target, (*targetMock[int]).execute, WithCanExecute((*targetMock[int]).canExecute))

			if got := c.CanExecute(tt.param); got != tt.want {
				t.Fatalf("CanExecute(%#v) = %v, want %v", tt.param, got, tt.want)
			}
		})
	}
}

func TestCanExecuteOptionalDeclared(t *testing.T) {
	target := newTargetMock[*parameterMock]()
	c := New(target, (*targetMock[*parameterMock]).execute, WithCanExecute((*targetMock[*parameterMock]).canExecute))

	if !c.CanExecute(nil) {
		t.Fatal("nil should match an optional parameter")
	}
	if !c.CanExecute(&parameterMock{value: 5}) {
		t.Fatal("*parameterMock should match")
	}
	if c.CanExecute(&secondParameterMock{value: 5}) {
		t.Fatal("*secondParameterMock must not match *parameterMock")
	}
	if c.CanExecute(5) {
		t.Fatal("int must not match *parameterMock")
	}
}

func TestInterfaceParameter(t *testing.T) {
	type stringer interface{ String() string }
	target := newTargetMock[stringer]()
	c := New(target, (*targetMock[stringer]).execute)

	c.Execute(5)
	if target.invoked() {
		t.Fatal("int does not implement stringer")
	}

	c.Execute(nil)
	if len(target.calls) != 1 || target.calls[0] != nil {
		t.Fatalf("nil should match an interface parameter, got %v", target.calls)
	}
}

func TestUnitParameter(t *testing.T) {
	target := newTargetMock[Unit]()
	c := New(target, (*targetMock[Unit]).execute, WithCanExecute((*targetMock[Unit]).canExecute))

	if !c.CanExecute(nil) {
		t.Fatal("absent parameter should match Unit")
	}
	if !Enabled(c) {
		t.Fatal("Enabled should report true")
	}
	if c.CanExecute(5) {
		t.Fatal("int must not match Unit")
	}

	c.Execute(nil)
	Run(c)
	c.Execute(5)

	if len(target.calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(target.calls))
	}
}

func TestCollectedTarget(t *testing.T) {
	for _, guard := range []bool{false, true} {
		calls := 0
		c := collectedCommand[int](&calls, guard)

		if c.Alive() {
			t.Fatalf("guard=%v: target was not collected", guard)
		}
		for _, p := range []any{5, nil, "5", intPtr(5)} {
			if c.CanExecute(p) {
				t.Fatalf("guard=%v: CanExecute(%v) = true on collected target", guard, p)
			}
			c.Execute(p)
		}
		if calls != 0 {
			t.Fatalf("guard=%v: execute ran %d times on collected target", guard, calls)
		}
	}
}

func TestNilTargetIsInert(t *testing.T) {
	calls := 0
	c := New[targetMock[int], int](nil, func(*targetMock[int], int) { calls++ })

	if c.CanExecute(5) {
		t.Fatal("nil target should not be executable")
	}
	c.Execute(5)
	if calls != 0 {
		t.Fatalf("calls = %d, want 0", calls)
	}
}

func TestNewPanicsOnNilExecute(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New[targetMock[int], int](newTargetMock[int](), nil)
}

func TestCommandDoesNotKeepTargetAlive(t *testing.T) {
	calls := 0
	c := collectedCommand[string](&calls, false)
	if c.Alive() {
		t.Fatal("command kept its target alive")
	}
}

func TestInvokeCanExecuteChanged(t *testing.T) {
	target := newTargetMock[int]()
	c := New(target, (*targetMock[int]).execute)

	c.InvokeCanExecuteChanged()

	notified := 0
	c.CanExecuteChanged().Subscribe(func() { notified++ })
	c.InvokeCanExecuteChanged()

	if notified != 1 {
		t.Fatalf("notified = %d, want 1", notified)
	}
}
