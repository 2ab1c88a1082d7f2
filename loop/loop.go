// Package loop runs a fixed-timestep frame loop. Observed frame time
// accumulates and drains in whole steps of 1/FPS, so update logic sees a
// constant dt however the wall clock jitters. Render runs once per frame
// after the steps.
package loop

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/glint/event"
)

const (
	// DefaultFPS is the fixed step rate when Config leaves FPS zero
	DefaultFPS = 60.0

	// DefaultMaxFrameTime caps a single observed frame delta, so a
	// suspended process or a debugger stop does not burst thousands of
	// catch-up steps
	DefaultMaxFrameTime = 0.1
)

// Config wires a Loop. Update and Render may be nil; Bus is optional.
type Config struct {
	// Bus receives event.Init once at start and event.Tick before
	// every update step
	Bus *event.Bus

	// Update runs once per fixed step with dt = 1/FPS
	Update func(dt float64)

	// Render runs once per frame after the steps
	Render func()

	// FPS is the fixed step rate, DefaultFPS when zero
	FPS float64

	// MaxFrameTime caps one frame's observed delta in seconds,
	// DefaultMaxFrameTime when zero
	MaxFrameTime float64

	// Time is the frame clock, the real monotonic clock when nil
	Time TimeProvider
}

// Loop drives updates at a fixed timestep. Start blocks the calling
// goroutine; Stop is safe from handlers and from other goroutines. A
// stopped loop stays stopped; make a new one to run again.
type Loop struct {
	bus    *event.Bus
	update func(dt float64)
	render func()

	step     float64
	maxDelta float64
	clock    TimeProvider

	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	acc    float64
	last   time.Time
	ticks  uint64
	inited bool
}

// New builds a loop from cfg, applying defaults to zero fields
func New(cfg Config) *Loop {
	fps := cfg.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	maxDelta := cfg.MaxFrameTime
	if maxDelta <= 0 {
		maxDelta = DefaultMaxFrameTime
	}
	clock := cfg.Time
	if clock == nil {
		clock = Monotonic{}
	}
	return &Loop{
		bus:      cfg.Bus,
		update:   cfg.Update,
		render:   cfg.Render,
		step:     1.0 / fps,
		maxDelta: maxDelta,
		clock:    clock,
		stopChan: make(chan struct{}),
	}
}

// Start runs the loop on the calling goroutine until Stop
func (l *Loop) Start() {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	defer l.running.Store(false)
	select {
	case <-l.stopChan:
		return
	default:
	}
	l.emitInit()
	l.last = l.clock.Now()

	ticker := time.NewTicker(time.Duration(float64(time.Second) * l.step))
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-ticker.C:
			l.frame()
			select {
			case <-l.stopChan:
				return
			default:
			}
		}
	}
}

// Stop halts the loop before its next frame. Idempotent.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.running.Store(false)
		close(l.stopChan)
	})
}

// IsRunning reports whether Start is active
func (l *Loop) IsRunning() bool {
	return l.running.Load()
}

// Step drives n fixed steps synchronously without the clock, then
// renders once. It serves tests and turn-based callers; do not mix with
// a concurrently running Start.
func (l *Loop) Step(n int) {
	if n <= 0 {
		return
	}
	l.emitInit()
	for i := 0; i < n; i++ {
		l.tick()
	}
	if l.render != nil {
		l.render()
	}
}

// Ticks reports how many fixed steps have run
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

func (l *Loop) emitInit() {
	if l.inited {
		return
	}
	l.inited = true
	if l.bus != nil {
		l.bus.Emit(event.Init)
	}
}

func (l *Loop) frame() {
	now := l.clock.Now()
	delta := now.Sub(l.last).Seconds()
	l.last = now
	if delta > l.maxDelta {
		delta = l.maxDelta
	}
	if delta < 0 {
		delta = 0
	}

	l.acc += delta
	for l.acc >= l.step {
		l.acc -= l.step
		l.tick()
	}
	if l.render != nil {
		l.render()
	}
}

func (l *Loop) tick() {
	l.ticks++
	if l.bus != nil {
		l.bus.Emit(event.Tick)
	}
	if l.update != nil {
		l.update(l.step)
	}
}
