package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Velocity returns the displacement for one tick at the given speed.
// Screen coordinates grow downward, so up is negative y.
func (d Direction) Velocity(speed int) core.Vec {
	switch d {
	case DirRight:
		return core.Vec{X: speed}
	case DirLeft:
		return core.Vec{X: -speed}
	case DirDown:
		return core.Vec{Y: speed}
	default:
		return core.Vec{Y: -speed}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// code is the single-letter form used by the journal encoding.
func (d Direction) code() byte {
	switch d {
	case DirUp:
		return 'U'
	case DirDown:
		return 'D'
	case DirLeft:
		return 'L'
	default:
		return 'R'
	}
}

func directionFromCode(c byte) (Direction, error) {
	switch c {
	case 'U':
		return DirUp, nil
	case 'D':
		return DirDown, nil
	case 'L':
		return DirLeft, nil
	case 'R':
		return DirRight, nil
	}
	return DirRight, fmt.Errorf("snake: unknown direction code %q", c)
}

// DirectionFromAction maps a directional platform action to a Direction.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirRight, false
}
