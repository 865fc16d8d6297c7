package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionFlag)

	if !f.Has(ActionLeft) || !f.Has(ActionFlag) {
		t.Error("Has should report actions that were set")
	}
	if f.Has(ActionReveal) {
		t.Error("Has(ActionReveal) = true, never set")
	}

	f.Clear()
	if !f.Empty() || f.Has(ActionLeft) {
		t.Error("Clear should drop every action")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	f.SetPointer(12, 7, ActionReveal)

	if !f.HasPointer || f.Pointer != (Point{12, 7}) {
		t.Errorf("pointer = %+v (set=%v), expected (12, 7)", f.Pointer, f.HasPointer)
	}
	if !f.Has(ActionReveal) {
		t.Error("SetPointer should record its action")
	}

	f.Clear()
	if f.HasPointer {
		t.Error("Clear should drop the pointer")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionReveal, "Reveal"},
		{ActionFlag, "Flag"},
		{ActionRight, "Right"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
