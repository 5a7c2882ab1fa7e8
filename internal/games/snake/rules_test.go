package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestRules() (*Rules, Params) {
	p := DefaultParams()
	return NewRules(p, rand.New(rand.NewSource(3))), p
}

func actorAt(p Params, head core.Vec) *Actor {
	a := NewActor(p.Start, p.ActorRadius, p.InitialLength)
	a.RecordPosition(head)
	return a
}

func hasEvent(events []core.Event, e core.Event) bool {
	for _, got := range events {
		if got == e {
			return true
		}
	}
	return false
}

func TestEvaluateFood(t *testing.T) {
	r, p := newTestRules()
	head := core.Vec{X: 100, Y: 100}
	a := actorAt(p, head)

	out := r.Evaluate(a, Food{Pos: head, Radius: 5}, BonusFood{Pos: core.Vec{X: 400, Y: 400}, Radius: 15})

	if len(out.Events) != 1 || out.Events[0] != core.EventFoodEaten {
		t.Fatalf("events = %v, want [food_eaten]", out.Events)
	}
	if a.Score() != 1 || a.TargetLength() != 13 || a.FoodCount() != 1 {
		t.Errorf("score=%d target=%d count=%d, want 1/13/1", a.Score(), a.TargetLength(), a.FoodCount())
	}
	if !p.Board.Contains(out.Food.Pos) || out.Food.Radius != 5 {
		t.Errorf("respawned food %+v invalid", out.Food)
	}
	if out.Bonus.Pos != (core.Vec{X: 400, Y: 400}) {
		t.Error("bonus must not move when not eaten")
	}
}

func TestEvaluateMiss(t *testing.T) {
	r, p := newTestRules()
	a := actorAt(p, core.Vec{X: 100, Y: 100})
	food := Food{Pos: core.Vec{X: 200, Y: 200}, Radius: 5}

	out := r.Evaluate(a, food, BonusFood{Pos: core.Vec{X: 100, Y: 100}, Radius: 15})

	if len(out.Events) != 0 {
		t.Errorf("events = %v, want none", out.Events)
	}
	if out.Food != food {
		t.Error("uneaten food must be kept")
	}
	if a.Score() != 0 {
		t.Error("closed bonus gate must not score")
	}
}

func TestBonusGate(t *testing.T) {
	r, p := newTestRules()
	head := core.Vec{X: 100, Y: 100}
	bonus := BonusFood{Pos: head, Radius: 15}
	far := Food{Pos: core.Vec{X: 400, Y: 50}, Radius: 5}

	a := actorAt(p, head)
	a.foodCount = p.BonusThreshold - 1
	if r.BonusActive(a) {
		t.Fatal("gate should be closed below threshold")
	}
	if out := r.Evaluate(a, far, bonus); hasEvent(out.Events, core.EventBonusEaten) {
		t.Fatal("bonus eaten while gate closed")
	}

	a.foodCount = p.BonusThreshold
	if !r.BonusActive(a) {
		t.Fatal("gate should be open at threshold")
	}
	out := r.Evaluate(a, far, bonus)
	if !hasEvent(out.Events, core.EventBonusEaten) {
		t.Fatalf("events = %v, want bonus_eaten", out.Events)
	}
	if a.Score() != 5 || a.TargetLength() != p.InitialLength {
		t.Errorf("score=%d target=%d, want 5/%d", a.Score(), a.TargetLength(), p.InitialLength)
	}
	if a.FoodCount() != 0 || r.BonusActive(a) {
		t.Error("eating the bonus should reset the gate")
	}
}

func TestFoodOpensGateSameTick(t *testing.T) {
	r, p := newTestRules()
	head := core.Vec{X: 100, Y: 100}
	a := actorAt(p, head)
	a.foodCount = p.BonusThreshold - 1

	out := r.Evaluate(a, Food{Pos: head, Radius: 5}, BonusFood{Pos: head, Radius: 15})

	if !hasEvent(out.Events, core.EventFoodEaten) || !hasEvent(out.Events, core.EventBonusEaten) {
		t.Fatalf("events = %v, want food then bonus", out.Events)
	}
	if out.Events[0] != core.EventFoodEaten {
		t.Error("food must be evaluated before the bonus")
	}
	if a.Score() != 6 {
		t.Errorf("Score() = %d, want 6", a.Score())
	}
}

func TestFoodAtThresholdWrapsCounter(t *testing.T) {
	r, p := newTestRules()
	head := core.Vec{X: 100, Y: 100}
	a := actorAt(p, head)
	a.foodCount = p.BonusThreshold

	r.Evaluate(a, Food{Pos: head, Radius: 5}, BonusFood{Pos: core.Vec{X: 400, Y: 400}, Radius: 15})

	if a.FoodCount() != 1 {
		t.Errorf("FoodCount() = %d, want 1", a.FoodCount())
	}
	if r.BonusActive(a) {
		t.Error("gate should close after the counter wraps")
	}
}

func TestEvaluateSelfHitAfterFood(t *testing.T) {
	r, p := newTestRules()
	head := core.Vec{X: 20, Y: 10}
	a := NewActor(p.Start, p.ActorRadius, p.InitialLength)
	for _, pos := range []core.Vec{{X: 10, Y: 10}, {X: 15, Y: 10}, head, head} {
		a.RecordPosition(pos)
	}

	out := r.Evaluate(a, Food{Pos: head, Radius: 5}, BonusFood{Pos: core.Vec{X: 400, Y: 400}, Radius: 15})

	if !out.SelfHit {
		t.Fatal("expected self hit")
	}
	want := []core.Event{core.EventFoodEaten, core.EventGameOver}
	if len(out.Events) != len(want) {
		t.Fatalf("events = %v, want %v", out.Events, want)
	}
	for i := range want {
		if out.Events[i] != want[i] {
			t.Errorf("events[%d] = %v, want %v", i, out.Events[i], want[i])
		}
	}
}

func TestEvaluateEmptyBody(t *testing.T) {
	r, p := newTestRules()
	a := NewActor(p.Start, p.ActorRadius, p.InitialLength)

	out := r.Evaluate(a, Food{Pos: p.Start, Radius: 5}, BonusFood{})
	if len(out.Events) != 0 || out.SelfHit {
		t.Error("an actor without a recorded head cannot collide")
	}
}
