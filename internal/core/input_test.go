package core

import "testing"

func TestInputFrameLastDirectionWins(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionConfirm)
	f.Set(ActionLeft)

	if f.Direction != ActionLeft {
		t.Errorf("Direction = %v, expected Left", f.Direction)
	}
	if !f.Has(ActionUp) || !f.Has(ActionLeft) || !f.Has(ActionConfirm) {
		t.Error("all set actions should be reported by Has")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)
	f.Set(ActionQuit)

	f.Clear()

	if f.Has(ActionDown) || f.Has(ActionQuit) {
		t.Error("Clear should remove all actions")
	}
	if f.Direction != ActionNone {
		t.Errorf("Clear should reset Direction, got %v", f.Direction)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionRight)
	if !f.Has(ActionRight) || f.Direction != ActionRight {
		t.Error("Set on zero frame should allocate and record")
	}
}

func TestActionIsDirectional(t *testing.T) {
	tests := []struct {
		a    Action
		want bool
	}{
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionConfirm, false},
		{ActionQuit, false},
		{ActionNone, false},
	}
	for _, tc := range tests {
		if got := tc.a.IsDirectional(); got != tc.want {
			t.Errorf("%v.IsDirectional() = %v, expected %v", tc.a, got, tc.want)
		}
	}
}
