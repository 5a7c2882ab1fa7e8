package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the classic configuration: a 490x420 board at
// 50 ticks per second.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:       490,
			Height:      420,
			SpawnMargin: 10,
		},
		Actor: ActorConfig{
			StartX:        50,
			StartY:        100,
			Radius:        7,
			InitialLength: 8,
		},
		Food: FoodConfig{
			Radius: 5,
			Growth: 5,
			Reward: 1,
		},
		Bonus: BonusConfig{
			Radius:    15,
			Reward:    5,
			Threshold: 10,
		},
		Timing: TimingConfig{
			TickRate:        50,
			GameOverSeconds: 3,
		},
		Gameplay: GameplayConfig{
			DefaultSpeed: 5,
			Sound:        true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
