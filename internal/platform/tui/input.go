package tui

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// keyBuffer collects the actions pressed between two ticks and hands them
// to the round as one input. The last direction pressed wins.
type keyBuffer struct {
	frame core.InputFrame
}

func newKeyBuffer() *keyBuffer {
	return &keyBuffer{frame: core.NewInputFrame()}
}

// Press records an action for the coming tick.
func (b *keyBuffer) Press(a core.Action) {
	if a != core.ActionNone {
		b.frame.Set(a)
	}
}

// Next implements snake.InputSource and empties the buffer.
func (b *keyBuffer) Next(uint64) snake.Input {
	in := snake.InputFromFrame(b.frame)
	b.frame.Clear()
	return in
}
