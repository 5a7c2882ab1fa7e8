package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardTooSmall is returned when a board cannot hold a collectible
// inside its spawn margin.
var ErrBoardTooSmall = errors.New("snake: board too small for spawn margin")

// Board is the bounded plane the actor moves on. Coordinates are in board
// units (490x420 by default); the renderer scales them to the terminal.
type Board struct {
	Width  int
	Height int
	Margin int // Collectibles spawn in [Margin, size-Margin] on both axes
}

// NewBoard validates the dimensions and returns a Board.
func NewBoard(width, height, margin int) (Board, error) {
	if margin < 0 {
		return Board{}, fmt.Errorf("snake: negative spawn margin %d", margin)
	}
	if width <= 0 || height <= 0 || width < 2*margin || height < 2*margin {
		return Board{}, fmt.Errorf("%w: %dx%d with margin %d", ErrBoardTooSmall, width, height, margin)
	}
	return Board{Width: width, Height: height, Margin: margin}, nil
}

// Wrap moves a position that left the board to the opposite edge.
//
// The checks form a single else-if chain in the order x-high, x-low,
// y-high, y-low, so at most one axis is corrected per call. A position out
// of range on both axes keeps its y excursion until a later call.
func (b Board) Wrap(p core.Vec) core.Vec {
	switch {
	case p.X > b.Width-1:
		p.X = 0
	case p.X < 1:
		p.X = b.Width
	case p.Y > b.Height-1:
		p.Y = 0
	case p.Y < 1:
		p.Y = b.Height
	}
	return p
}

// Contains reports whether p lies in [0, Width] x [0, Height], the range
// Wrap can produce.
func (b Board) Contains(p core.Vec) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// RandomPoint returns a uniformly random point inside the spawn margin.
func (b Board) RandomPoint(rng *rand.Rand) core.Vec {
	return core.Vec{
		X: b.Margin + rng.Intn(b.Width-2*b.Margin+1),
		Y: b.Margin + rng.Intn(b.Height-2*b.Margin+1),
	}
}
