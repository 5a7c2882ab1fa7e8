package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Input is what an input source supplies for one tick.
type Input struct {
	Direction    Direction
	HasDirection bool // False means keep the current heading
	Quit         bool
}

// InputSource supplies the input for the given round tick, once per tick.
type InputSource interface {
	Next(tick uint64) Input
}

// InputFromFrame converts a platform input frame. The frame's last
// directional action wins.
func InputFromFrame(f core.InputFrame) Input {
	in := Input{Quit: f.Has(core.ActionQuit)}
	if d, ok := DirectionFromAction(f.Direction); ok {
		in.Direction = d
		in.HasDirection = true
	}
	return in
}
