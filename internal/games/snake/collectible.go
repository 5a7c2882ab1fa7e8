package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is a regular collectible. Values are immutable; eating one replaces
// it with a freshly spawned value.
type Food struct {
	Pos    core.Vec
	Radius int
}

// BonusFood is the larger collectible that only collides while the gate is open.
type BonusFood struct {
	Pos    core.Vec
	Radius int
}

// SpawnFood returns a new Food at a random point inside the board margin.
func SpawnFood(b Board, rng *rand.Rand, radius int) Food {
	return Food{Pos: b.RandomPoint(rng), Radius: radius}
}

// SpawnBonus returns a new BonusFood at a random point inside the board margin.
func SpawnBonus(b Board, rng *rand.Rand, radius int) BonusFood {
	return BonusFood{Pos: b.RandomPoint(rng), Radius: radius}
}
