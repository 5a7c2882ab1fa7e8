package snake

import (
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// discs caches the integer offsets within each radius. Rounds run
// concurrently in SSH sessions, hence the lock.
var discs = struct {
	sync.Mutex
	byRadius map[int]map[core.Vec]struct{}
}{byRadius: make(map[int]map[core.Vec]struct{})}

// disc returns the set of integer offsets (dx, dy) with dx²+dy² <= r².
func disc(r int) map[core.Vec]struct{} {
	discs.Lock()
	defer discs.Unlock()

	if d, ok := discs.byRadius[r]; ok {
		return d
	}

	d := make(map[core.Vec]struct{})
	for dx := -r - 1; dx <= r+1; dx++ {
		for dy := -r - 1; dy <= r+1; dy++ {
			if dx*dx+dy*dy <= r*r {
				d[core.Vec{X: dx, Y: dy}] = struct{}{}
			}
		}
	}
	discs.byRadius[r] = d
	return d
}

// Touches runs the two-phase pickup test: the bounding boxes of both circles
// must overlap, and the target's exact coordinate must lie inside the disc
// of radius headRadius+targetRadius around the head.
func Touches(head core.Vec, headRadius int, target core.Vec, targetRadius int) bool {
	if !core.RectAround(head, headRadius).Intersects(core.RectAround(target, targetRadius)) {
		return false
	}
	offset := core.Vec{X: target.X - head.X, Y: target.Y - head.Y}
	_, ok := disc(headRadius + targetRadius)[offset]
	return ok
}
