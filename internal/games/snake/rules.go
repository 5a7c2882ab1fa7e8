package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Outcome is the result of one rules pass.
type Outcome struct {
	Events  []core.Event
	Food    Food
	Bonus   BonusFood
	SelfHit bool
}

// Rules evaluates collisions for the head the actor recorded this tick and
// applies growth and scoring. It is the only place that spawns replacement
// collectibles.
type Rules struct {
	params Params
	rng    *rand.Rand
}

// NewRules creates a rules engine drawing spawn positions from rng.
func NewRules(p Params, rng *rand.Rand) *Rules {
	return &Rules{params: p, rng: rng}
}

// BonusActive reports whether the bonus gate is open for the actor.
func (r *Rules) BonusActive(a *Actor) bool {
	return a.FoodCount() == r.params.BonusThreshold
}

// Evaluate checks food, then bonus, then self-collision. The actor must have
// recorded its position for this tick.
func (r *Rules) Evaluate(a *Actor, food Food, bonus BonusFood) Outcome {
	out := Outcome{Food: food, Bonus: bonus}

	head, ok := a.Head()
	if !ok {
		return out
	}

	if Touches(head, a.Radius(), food.Pos, food.Radius) {
		out.Food = SpawnFood(r.params.Board, r.rng, r.params.FoodRadius)
		a.countFood(r.params.BonusThreshold)
		a.Grow(r.params.FoodGrowth, r.params.FoodReward)
		out.Events = append(out.Events, core.EventFoodEaten)
	}

	if r.BonusActive(a) && Touches(head, a.Radius(), bonus.Pos, bonus.Radius) {
		a.resetFoodCount()
		out.Bonus = SpawnBonus(r.params.Board, r.rng, r.params.BonusRadius)
		a.Grow(0, r.params.BonusReward)
		out.Events = append(out.Events, core.EventBonusEaten)
	}

	if a.HitsSelf() {
		out.SelfHit = true
		out.Events = append(out.Events, core.EventGameOver)
	}

	return out
}
