package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNoImmediateReversal(t *testing.T) {
	a := NewActor(core.Vec{X: 50, Y: 100}, 7, 8)

	if a.SetDirection(DirLeft) {
		t.Error("reversing right to left should be rejected")
	}
	if a.Direction() != DirRight {
		t.Errorf("direction = %v, want right", a.Direction())
	}

	if !a.SetDirection(DirUp) {
		t.Fatal("turning up should be accepted")
	}
	if a.SetDirection(DirDown) {
		t.Error("reversing up to down should be rejected")
	}
	if !a.SetDirection(DirUp) {
		t.Error("repeating the current direction should be accepted")
	}
	if !a.SetDirection(DirLeft) {
		t.Error("turning left from up should be accepted")
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		dir  Direction
		want core.Vec
	}{
		{DirRight, core.Vec{X: 5}},
		{DirLeft, core.Vec{X: -5}},
		{DirUp, core.Vec{Y: -5}},
		{DirDown, core.Vec{Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			a := NewActor(core.Vec{X: 50, Y: 100}, 7, 8)
			a.dir = tt.dir
			start := a.Position()

			if got := a.Advance(5); got != tt.want {
				t.Errorf("Advance(5) = %v, want %v", got, tt.want)
			}
			if a.Position() != start {
				t.Error("Advance must not move the actor")
			}
			if a.Velocity() != tt.want {
				t.Errorf("Velocity() = %v, want %v", a.Velocity(), tt.want)
			}
		})
	}
}

func TestBodyNeverExceedsTarget(t *testing.T) {
	a := NewActor(core.Vec{}, 7, 3)

	for i := 1; i <= 5; i++ {
		a.RecordPosition(core.Vec{X: i * 5})
		if n := len(a.Body()); n > 3 {
			t.Fatalf("body length %d exceeds target 3", n)
		}
	}

	want := []core.Vec{{X: 15}, {X: 20}, {X: 25}}
	body := a.Body()
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, body[i], want[i])
		}
	}
	if head, _ := a.Head(); head != (core.Vec{X: 25}) {
		t.Errorf("head = %v, want (25,0)", head)
	}
}

func TestGrowRaisesTarget(t *testing.T) {
	a := NewActor(core.Vec{}, 7, 8)
	a.Grow(5, 1)
	a.Grow(0, 5)

	if a.TargetLength() != 13 {
		t.Errorf("TargetLength() = %d, want 13", a.TargetLength())
	}
	if a.Score() != 6 {
		t.Errorf("Score() = %d, want 6", a.Score())
	}

	a.Grow(-3, -1)
	if a.TargetLength() != 13 || a.Score() != 6 {
		t.Error("negative growth must not shrink the actor")
	}
}

func TestSelfCollision(t *testing.T) {
	a := NewActor(core.Vec{}, 7, 8)
	for _, p := range []core.Vec{{X: 10, Y: 10}, {X: 15, Y: 10}, {X: 20, Y: 10}} {
		a.RecordPosition(p)
	}
	if a.HitsSelf() {
		t.Fatal("distinct positions should not collide")
	}

	a.RecordPosition(core.Vec{X: 20, Y: 10})
	if !a.HitsSelf() {
		t.Error("head duplicating an earlier segment should collide")
	}
}

func TestSelfCollisionAfterTrim(t *testing.T) {
	a := NewActor(core.Vec{}, 7, 2)
	a.RecordPosition(core.Vec{X: 10})
	a.RecordPosition(core.Vec{X: 15})
	a.RecordPosition(core.Vec{X: 10})

	// (10,0) was trimmed before the check.
	if a.HitsSelf() {
		t.Error("an evicted segment must not count as a collision")
	}
}

func TestBodyIsCopy(t *testing.T) {
	a := NewActor(core.Vec{}, 7, 8)
	a.RecordPosition(core.Vec{X: 1})

	body := a.Body()
	body[0] = core.Vec{X: 99}

	if head, _ := a.Head(); head != (core.Vec{X: 1}) {
		t.Error("Body() must return a copy")
	}
}

func TestCountFoodWraps(t *testing.T) {
	a := NewActor(core.Vec{}, 7, 8)
	for i := 0; i < 10; i++ {
		a.countFood(10)
	}
	if a.FoodCount() != 10 {
		t.Fatalf("FoodCount() = %d, want 10", a.FoodCount())
	}

	a.countFood(10)
	if a.FoodCount() != 1 {
		t.Errorf("FoodCount() after threshold = %d, want 1", a.FoodCount())
	}
}
