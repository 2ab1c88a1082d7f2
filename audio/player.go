// Package audio plays short procedural cues through beep. A nil *Player
// is a valid silent player, so games run unchanged on machines without
// an audio device.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player owns the speaker. Cues are fire-and-forget; the speaker mixes
// overlapping ones.
type Player struct {
	mu     sync.Mutex
	inited bool
}

// NewPlayer opens the speaker. Callers that treat audio as optional can
// ignore the error and use the returned nil player as a silent fallback.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("open speaker: %w", err)
	}
	return &Player{inited: true}, nil
}

// Play mixes s into the output until it drains
func (p *Player) Play(s beep.Streamer) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.inited {
		return
	}
	speaker.Play(s)
}

// PlayTone plays a plain sine tone at freq for d
func (p *Player) PlayTone(freq float64, d time.Duration) {
	if p == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	p.Play(beep.Take(sampleRate.N(d), sine))
}

// PlayChime plays a decaying ping at freq for d
func (p *Player) PlayChime(freq float64, d time.Duration) {
	if p == nil {
		return
	}
	p.Play(NewChime(sampleRate, freq, d))
}

// Close silences everything. The speaker itself stays open; beep has no
// close, clearing the streamers is the shutdown it supports.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.inited {
		return
	}
	speaker.Clear()
	p.inited = false
}
