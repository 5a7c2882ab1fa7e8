package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot is a read-only copy of the round used for drawing, determinism
// checks and replay verification.
type Snapshot struct {
	State State
	Tick  uint64
	Speed int

	BoardW int
	BoardH int

	Body         []core.Vec // Oldest first, head last
	ActorRadius  int
	Dir          Direction
	TargetLength int
	Score        int
	FoodCount    int

	Food        Food
	Bonus       BonusFood
	BonusActive bool
}

// Head returns the last body entry.
func (s Snapshot) Head() (core.Vec, bool) {
	if len(s.Body) == 0 {
		return core.Vec{}, false
	}
	return s.Body[len(s.Body)-1], true
}

// Snapshot returns the current round snapshot.
func (r *Round) Snapshot() Snapshot {
	return Snapshot{
		State:        r.state,
		Tick:         r.tick,
		Speed:        r.speed,
		BoardW:       r.params.Board.Width,
		BoardH:       r.params.Board.Height,
		Body:         r.actor.Body(),
		ActorRadius:  r.actor.Radius(),
		Dir:          r.actor.Direction(),
		TargetLength: r.actor.TargetLength(),
		Score:        r.actor.Score(),
		FoodCount:    r.actor.FoodCount(),
		Food:         r.food,
		Bonus:        r.bonus,
		BonusActive:  r.state == StatePlaying && r.actor.FoodCount() == r.params.BonusThreshold,
	}
}
