package snake

import "fmt"

// Replay re-runs a recorded session from its seed, speed and journal. It
// stops when the session leaves PLAYING or after endTick ticks, whichever
// comes first, and returns the snapshot at that point.
func Replay(p Params, seed int64, speed int, j *Journal, endTick uint64) (Snapshot, error) {
	if endTick == 0 {
		return Snapshot{}, fmt.Errorf("snake: replay needs a positive end tick")
	}
	r, err := NewRound(p, 0)
	if err != nil {
		return Snapshot{}, err
	}
	if err := r.StartSeeded(speed, seed); err != nil {
		return Snapshot{}, err
	}

	j.Rewind()
	for r.State() == StatePlaying && r.TickCount() < endTick {
		r.Step(j)
	}
	return r.Snapshot(), nil
}
