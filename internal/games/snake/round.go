package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidSpeed is returned when a round is started with a speed below 1.
var ErrInvalidSpeed = errors.New("snake: speed must be a positive integer")

// State is the phase of a round.
type State int

const (
	StateConfiguring State = iota
	StatePlaying
	StateGameOver
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateConfiguring:
		return "configuring"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// TickResult reports the state after a tick and the events it produced.
type TickResult struct {
	State  State
	Events []core.Event
}

// Round drives play sessions through CONFIGURING, PLAYING and GAME_OVER.
//
// It is the single owner of the actor and both collectibles; all mutation
// happens inside Tick. A Round is not safe for concurrent use.
type Round struct {
	params Params
	rng    *rand.Rand // Derives per-session seeds

	state       State
	speed       int
	tick        uint64
	overTicks   int
	sessionSeed int64

	actor   *Actor
	rules   *Rules
	food    Food
	bonus   BonusFood
	journal *Journal
}

// NewRound validates p and returns a round waiting for a speed.
func NewRound(p Params, seed int64) (*Round, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Round{
		params:  p,
		rng:     rand.New(rand.NewSource(seed)),
		state:   StateConfiguring,
		actor:   NewActor(p.Start, p.ActorRadius, p.InitialLength),
		journal: NewJournal(),
	}, nil
}

// Start begins a session at the given speed with a seed drawn from the
// round's own generator.
func (r *Round) Start(speed int) error {
	return r.StartSeeded(speed, r.rng.Int63())
}

// StartSeeded begins a session with an explicit spawn seed. Replays use it
// to reproduce a recorded session.
func (r *Round) StartSeeded(speed int, seed int64) error {
	if speed < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidSpeed, speed)
	}
	if r.state != StateConfiguring {
		return fmt.Errorf("snake: cannot start a session while %s", r.state)
	}

	sessionRng := rand.New(rand.NewSource(seed))
	r.sessionSeed = seed
	r.speed = speed
	r.tick = 0
	r.overTicks = 0
	r.actor = NewActor(r.params.Start, r.params.ActorRadius, r.params.InitialLength)
	r.rules = NewRules(r.params, sessionRng)
	r.food = SpawnFood(r.params.Board, sessionRng, r.params.FoodRadius)
	r.bonus = SpawnBonus(r.params.Board, sessionRng, r.params.BonusRadius)
	r.journal = NewJournal()
	r.state = StatePlaying
	return nil
}

// Tick advances the round by one frame.
func (r *Round) Tick(in Input) TickResult {
	if in.Quit {
		r.state = StateQuit
		return TickResult{State: r.state}
	}

	switch r.state {
	case StatePlaying:
		return TickResult{State: r.state, Events: r.play(in)}
	case StateGameOver:
		r.overTicks++
		if r.overTicks >= r.params.GameOverTicks {
			r.discard()
		}
	}
	return TickResult{State: r.state}
}

// Step pulls the next input from src and runs one tick.
func (r *Round) Step(src InputSource) TickResult {
	return r.Tick(src.Next(r.tick + 1))
}

func (r *Round) play(in Input) []core.Event {
	r.tick++

	if in.HasDirection && in.Direction != r.actor.Direction() && r.actor.SetDirection(in.Direction) {
		r.journal.Record(r.tick, in.Direction)
	}

	vel := r.actor.Advance(r.speed)
	pos := r.params.Board.Wrap(r.actor.Position().Add(vel))
	r.actor.MoveTo(pos)
	r.actor.RecordPosition(pos)

	out := r.rules.Evaluate(r.actor, r.food, r.bonus)
	r.food = out.Food
	r.bonus = out.Bonus
	if out.SelfHit {
		r.state = StateGameOver
		r.overTicks = 0
	}
	return out.Events
}

// discard drops the finished session and returns to CONFIGURING.
func (r *Round) discard() {
	r.state = StateConfiguring
	r.overTicks = 0
	r.actor = NewActor(r.params.Start, r.params.ActorRadius, r.params.InitialLength)
	r.rules = nil
	r.food = Food{}
	r.bonus = BonusFood{}
}

// State returns the current phase.
func (r *Round) State() State {
	return r.state
}

// Speed returns the speed of the current or last session.
func (r *Round) Speed() int {
	return r.speed
}

// TickCount returns the number of PLAYING ticks in the current session.
func (r *Round) TickCount() uint64 {
	return r.tick
}

// SessionSeed returns the spawn seed of the current or last session.
func (r *Round) SessionSeed() int64 {
	return r.sessionSeed
}

// Journal returns the direction journal of the current or last session.
// It is kept after the session is discarded so callers can persist it.
func (r *Round) Journal() *Journal {
	return r.journal
}

// Params returns the round's parameters.
func (r *Round) Params() Params {
	return r.params
}

// Score returns the actor's score. It reads 0 while configuring.
func (r *Round) Score() int {
	return r.actor.Score()
}
