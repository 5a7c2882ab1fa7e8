package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a wave whose frequency moves linearly from one value
// to another over its duration. Equal frequencies give a plain tone.
type oscillator struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewTone creates a fixed-frequency oscillator.
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(max(o.duration, 1))
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which must last at least duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release && e.release > 0 {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain. Zero or negative gain is silent,
// since effects.Volume works in log space.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

const (
	blipDuration   = 60 * time.Millisecond
	arpNote        = 70 * time.Millisecond
	sweepDuration  = 600 * time.Millisecond
	attackDuration = 5 * time.Millisecond
)

// arpeggio notes: C5 E5 G5 C6.
var arpeggio = []float64{523.25, 659.25, 783.99, 1046.50}

// FoodSound is a short sine blip.
func FoodSound(rate beep.SampleRate, gain float64) beep.Streamer {
	blip := NewEnvelope(NewTone(880, blipDuration, WaveSine, rate), blipDuration, attackDuration, 30*time.Millisecond, rate)
	return newVolume(blip, gain)
}

// BonusSound is a rising four-note arpeggio.
func BonusSound(rate beep.SampleRate, gain float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(arpeggio))
	for _, f := range arpeggio {
		notes = append(notes, NewEnvelope(NewTone(f, arpNote, WaveSine, rate), arpNote, attackDuration, 20*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(notes...), gain)
}

// GameOverSound is a falling square-wave sweep.
func GameOverSound(rate beep.SampleRate, gain float64) beep.Streamer {
	sweep := NewEnvelope(NewSweep(440, 110, sweepDuration, WaveSquare, rate), sweepDuration, attackDuration, 200*time.Millisecond, rate)
	// Square waves are loud; keep them under the sine effects.
	return newVolume(sweep, gain*0.4)
}

// SoundFor returns the effect for a game event, or nil for events without one.
func SoundFor(e core.Event, rate beep.SampleRate, gain float64) beep.Streamer {
	switch e {
	case core.EventFoodEaten:
		return FoodSound(rate, gain)
	case core.EventBonusEaten:
		return BonusSound(rate, gain)
	case core.EventGameOver:
		return GameOverSound(rate, gain)
	default:
		return nil
	}
}
