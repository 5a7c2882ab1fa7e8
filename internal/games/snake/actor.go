package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Actor is the player-controlled snake.
//
// The body is an ordered position history, oldest first; the last entry is
// the head. Its length never exceeds targetLen.
type Actor struct {
	pos       core.Vec
	dir       Direction
	velocity  core.Vec
	body      []core.Vec
	targetLen int
	score     int
	radius    int
	foodCount int // Food eaten since the last bonus, gates BonusFood
}

// NewActor creates an actor at start, heading right, with an empty body.
func NewActor(start core.Vec, radius, targetLen int) *Actor {
	return &Actor{
		pos:       start,
		dir:       DirRight,
		body:      make([]core.Vec, 0, targetLen+1),
		targetLen: targetLen,
		radius:    radius,
	}
}

// SetDirection changes the heading unless the request reverses it.
// Reports whether the request was applied.
func (a *Actor) SetDirection(d Direction) bool {
	if d == a.dir.Opposite() {
		return false
	}
	a.dir = d
	return true
}

// Advance recomputes the velocity from the heading and speed and returns it.
// It does not move the actor.
func (a *Actor) Advance(speed int) core.Vec {
	a.velocity = a.dir.Velocity(speed)
	return a.velocity
}

// MoveTo sets the actor's position.
func (a *Actor) MoveTo(p core.Vec) {
	a.pos = p
}

// RecordPosition appends p as the new head and evicts the oldest entries
// beyond the target length. Called exactly once per tick.
func (a *Actor) RecordPosition(p core.Vec) {
	a.body = append(a.body, p)
	if over := len(a.body) - a.targetLen; over > 0 {
		a.body = append(a.body[:0], a.body[over:]...)
	}
}

// Grow raises the target length and the score.
func (a *Actor) Grow(length, reward int) {
	if length > 0 {
		a.targetLen += length
	}
	if reward > 0 {
		a.score += reward
	}
}

// HitsSelf reports whether the head coordinate occurs anywhere else in the body.
func (a *Actor) HitsSelf() bool {
	n := len(a.body)
	if n < 2 {
		return false
	}
	head := a.body[n-1]
	for _, seg := range a.body[:n-1] {
		if seg == head {
			return true
		}
	}
	return false
}

// Head returns the most recently recorded position.
func (a *Actor) Head() (core.Vec, bool) {
	if len(a.body) == 0 {
		return core.Vec{}, false
	}
	return a.body[len(a.body)-1], true
}

// Body returns a copy of the body, oldest segment first.
func (a *Actor) Body() []core.Vec {
	out := make([]core.Vec, len(a.body))
	copy(out, a.body)
	return out
}

// Position returns the current, already wrapped, position.
func (a *Actor) Position() core.Vec { return a.pos }

func (a *Actor) Direction() Direction { return a.dir }

// Velocity returns the vector computed by the last Advance call.
func (a *Actor) Velocity() core.Vec { return a.velocity }

func (a *Actor) TargetLength() int { return a.targetLen }

func (a *Actor) Score() int { return a.score }

// Radius is the draw and pickup radius of each segment.
func (a *Actor) Radius() int { return a.radius }

// FoodCount returns the number of food items eaten since the gate last reset.
func (a *Actor) FoodCount() int { return a.foodCount }

func (a *Actor) resetFoodCount() { a.foodCount = 0 }

// countFood increments the gate counter, wrapping back to 1 when a regular
// food is eaten while the counter already sits at threshold.
func (a *Actor) countFood(threshold int) {
	if a.foodCount >= threshold {
		a.foodCount = 0
	}
	a.foodCount++
}
