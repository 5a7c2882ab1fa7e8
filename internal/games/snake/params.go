package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Params holds every tunable of a round. The config package builds it from
// YAML; DefaultParams mirrors the classic desktop game.
type Params struct {
	Board         Board
	Start         core.Vec
	ActorRadius   int
	InitialLength int

	FoodRadius int
	FoodGrowth int // Target length added per food
	FoodReward int // Score added per food

	BonusRadius    int
	BonusReward    int
	BonusThreshold int // Food count that opens the bonus gate

	GameOverTicks int // Ticks spent in GAME_OVER before returning to CONFIGURING
}

// DefaultParams returns the parameters of the classic 490x420 board at 50
// ticks per second.
func DefaultParams() Params {
	return Params{
		Board:          Board{Width: 490, Height: 420, Margin: 10},
		Start:          core.Vec{X: 50, Y: 100},
		ActorRadius:    7,
		InitialLength:  8,
		FoodRadius:     5,
		FoodGrowth:     5,
		FoodReward:     1,
		BonusRadius:    15,
		BonusReward:    5,
		BonusThreshold: 10,
		GameOverTicks:  3 * 50,
	}
}

// Validate checks the preconditions a round relies on.
func (p Params) Validate() error {
	if _, err := NewBoard(p.Board.Width, p.Board.Height, p.Board.Margin); err != nil {
		return err
	}
	if !p.Board.Contains(p.Start) {
		return fmt.Errorf("snake: start %v outside %dx%d board", p.Start, p.Board.Width, p.Board.Height)
	}
	if p.ActorRadius < 1 || p.FoodRadius < 1 || p.BonusRadius < 1 {
		return fmt.Errorf("snake: radii must be at least 1, got actor %d food %d bonus %d",
			p.ActorRadius, p.FoodRadius, p.BonusRadius)
	}
	if p.InitialLength < 1 {
		return fmt.Errorf("snake: initial length must be at least 1, got %d", p.InitialLength)
	}
	if p.FoodGrowth < 0 || p.FoodReward < 0 || p.BonusReward < 0 {
		return fmt.Errorf("snake: growth and rewards must not be negative")
	}
	if p.BonusThreshold < 1 {
		return fmt.Errorf("snake: bonus threshold must be at least 1, got %d", p.BonusThreshold)
	}
	if p.GameOverTicks < 0 {
		return fmt.Errorf("snake: negative game over delay")
	}
	return nil
}
