package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Speed bounds accepted on the configure screen.
const (
	MinSpeed = 1
	MaxSpeed = 10

	// SpeedInputLimit is the width of the speed text box.
	SpeedInputLimit = 2
)

// SpeedPreset names a commonly used speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// AllPresets returns all available presets.
func AllPresets() []SpeedPreset {
	return []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast}
}

// ParsePreset converts a string to a SpeedPreset.
func ParsePreset(s string) (SpeedPreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "slow":
		return SpeedSlow, nil
	case "normal", "":
		return SpeedNormal, nil
	case "fast":
		return SpeedFast, nil
	default:
		return SpeedNormal, fmt.Errorf("config: unknown speed preset %q (want slow, normal or fast)", s)
	}
}

// Speed returns the speed a preset stands for.
func (p SpeedPreset) Speed() int {
	switch p {
	case SpeedSlow:
		return 3
	case SpeedFast:
		return 8
	default:
		return 5
	}
}

// ClampSpeed limits a speed to [MinSpeed, MaxSpeed].
func ClampSpeed(speed int) int {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}

// ParseSpeed validates the text typed on the configure screen. Values above
// MaxSpeed are lowered to MaxSpeed; empty, non-numeric and zero input is
// rejected with snake.ErrInvalidSpeed.
func ParseSpeed(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("config: %w: empty input", snake.ErrInvalidSpeed)
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("config: %w: %q is not a number", snake.ErrInvalidSpeed, text)
		}
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		// Only overflow gets here; treat it as a very large speed.
		return MaxSpeed, nil
	}
	if n < MinSpeed {
		return 0, fmt.Errorf("config: %w: got %d", snake.ErrInvalidSpeed, n)
	}
	return ClampSpeed(n), nil
}
