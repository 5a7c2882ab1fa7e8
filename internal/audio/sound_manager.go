// Package audio plays the game's sound effects through the local speaker.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player consumes game events and plays the matching effect.
type Player interface {
	Play(e core.Event)
	Cleanup()
}

// Nop is a Player that stays silent. It is used with --mute and for SSH
// sessions, which have no local speaker.
type Nop struct{}

func (Nop) Play(core.Event) {}

func (Nop) Cleanup() {}

// SoundManager mixes effects onto the speaker. The speaker is opened on the
// first Play; if that fails, the manager disables itself and logs once.
type SoundManager struct {
	mu          sync.Mutex
	logger      *log.Logger
	gain        float64
	mixer       *beep.Mixer
	initialized bool
	disabled    bool

	initSpeaker func(beep.SampleRate, int) error
	startMixer  func(beep.Streamer)
}

// NewSoundManager creates a sound manager with the given linear gain in [0, 1].
func NewSoundManager(logger *log.Logger, gain float64) *SoundManager {
	return &SoundManager{
		logger:      logger,
		gain:        gain,
		mixer:       &beep.Mixer{},
		initSpeaker: speaker.Init,
		startMixer:  func(s beep.Streamer) { speaker.Play(s) },
	}
}

// Initialize opens the speaker. It is safe to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initLocked()
}

func (sm *SoundManager) initLocked() error {
	if sm.initialized || sm.disabled {
		return nil
	}

	if err := sm.initSpeaker(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		sm.disabled = true
		if sm.logger != nil {
			sm.logger.Warn("audio disabled", "err", err)
		}
		return err
	}

	sm.startMixer(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether effects can still be heard.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return !sm.disabled
}

// Play queues the effect for e. Events without an effect are ignored.
func (sm *SoundManager) Play(e core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initLocked() != nil || sm.disabled {
		return
	}

	s := SoundFor(e, sampleRate, sm.gain)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// A cleaned up manager stays silent.
	sm.initialized = false
	sm.disabled = true
}
