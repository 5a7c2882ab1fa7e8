// Package config provides YAML-based configuration loading and speed
// presets for the snake game.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Actor    ActorConfig    `yaml:"actor"`
	Food     FoodConfig     `yaml:"food"`
	Bonus    BonusConfig    `yaml:"bonus"`
	Timing   TimingConfig   `yaml:"timing"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// BoardConfig defines the play field.
type BoardConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	SpawnMargin int `yaml:"spawn_margin"`
}

// ActorConfig defines the snake's starting state.
type ActorConfig struct {
	StartX        int `yaml:"start_x"`
	StartY        int `yaml:"start_y"`
	Radius        int `yaml:"radius"`
	InitialLength int `yaml:"initial_length"`
}

// FoodConfig defines the regular collectible.
type FoodConfig struct {
	Radius int `yaml:"radius"`
	Growth int `yaml:"growth"`
	Reward int `yaml:"reward"`
}

// BonusConfig defines the gated bonus collectible.
type BonusConfig struct {
	Radius    int `yaml:"radius"`
	Reward    int `yaml:"reward"`
	Threshold int `yaml:"threshold"`
}

// TimingConfig defines the frame clock.
type TimingConfig struct {
	TickRate        int `yaml:"tick_rate"`         // Ticks per second
	GameOverSeconds int `yaml:"game_over_seconds"` // Time on the game over screen
}

// GameplayConfig holds session defaults.
type GameplayConfig struct {
	DefaultSpeed int  `yaml:"default_speed"`
	Sound        bool `yaml:"sound"`
}

// Params converts the configuration into round parameters.
func (c SnakeConfig) Params() snake.Params {
	return snake.Params{
		Board: snake.Board{
			Width:  c.Board.Width,
			Height: c.Board.Height,
			Margin: c.Board.SpawnMargin,
		},
		Start:          core.Vec{X: c.Actor.StartX, Y: c.Actor.StartY},
		ActorRadius:    c.Actor.Radius,
		InitialLength:  c.Actor.InitialLength,
		FoodRadius:     c.Food.Radius,
		FoodGrowth:     c.Food.Growth,
		FoodReward:     c.Food.Reward,
		BonusRadius:    c.Bonus.Radius,
		BonusReward:    c.Bonus.Reward,
		BonusThreshold: c.Bonus.Threshold,
		GameOverTicks:  c.Timing.GameOverSeconds * c.Timing.TickRate,
	}
}

// Validate checks the configuration before any round is built from it.
func (c SnakeConfig) Validate() error {
	if c.Timing.TickRate < 1 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Timing.TickRate)
	}
	if c.Timing.GameOverSeconds < 0 {
		return fmt.Errorf("config: game_over_seconds must not be negative, got %d", c.Timing.GameOverSeconds)
	}
	if c.Gameplay.DefaultSpeed < MinSpeed || c.Gameplay.DefaultSpeed > MaxSpeed {
		return fmt.Errorf("config: default_speed must be in [%d, %d], got %d", MinSpeed, MaxSpeed, c.Gameplay.DefaultSpeed)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// RuntimeConfig returns the platform settings derived from this config.
func (c SnakeConfig) RuntimeConfig(screenW, screenH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: c.Timing.TickRate,
		Seed:     seed,
	}
}
