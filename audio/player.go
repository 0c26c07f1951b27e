// Package audio plays short cues when a search finishes
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues into the speaker. A Player that failed or was never
// initialized ignores every Play call.
type Player struct {
	mu          sync.Mutex
	enabled     bool
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player; volume is 0.0 to 1.0
func NewPlayer(enabled bool, volume float64) *Player {
	return &Player{
		enabled: enabled,
		volume:  volume,
		mixer:   &beep.Mixer{},
	}
}

// Initialize opens the speaker. Errors are non-fatal, callers keep running silent.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayFound plays the path-found bell
func (p *Player) PlayFound() {
	p.play(CreateFoundSound(sampleRate, p.volume))
}

// PlayNoPath plays the no-path buzz
func (p *Player) PlayNoPath() {
	p.play(CreateNoPathSound(sampleRate, p.volume))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Active reports whether cues reach the speaker
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Cleanup silences pending cues and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
