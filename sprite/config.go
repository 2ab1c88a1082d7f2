package sprite

import (
	"github.com/lixenwraith/glint/render"
	"github.com/lixenwraith/glint/vmath"
)

// Updater replaces a sprite's default per-step behavior. The strategy
// runs instead of Advance and may call it.
type Updater interface {
	Update(s *Sprite, dt float64)
}

// UpdaterFunc adapts a plain func to Updater
type UpdaterFunc func(s *Sprite, dt float64)

func (f UpdaterFunc) Update(s *Sprite, dt float64) { f(s, dt) }

// Renderer replaces a sprite's default drawing. The strategy runs
// instead of Draw and may call it.
type Renderer interface {
	Render(s *Sprite)
}

// RendererFunc adapts a plain func to Renderer
type RendererFunc func(s *Sprite)

func (f RendererFunc) Render(s *Sprite) { f(s) }

// Config carries every recognized construction field for Init. The zero
// value is a valid config: a static, invisible, immortal sprite at the
// origin.
type Config struct {
	// Position
	X, Y float64
	// Velocity, world units per second
	DX, DY float64
	// Acceleration, world units per second squared
	DDX, DDY float64

	// Fill color for the default draw; empty means no fill is set
	Color string
	// Rect extent for the default draw
	Width, Height float64

	// Lifetime in update steps. Zero means unlimited; negative means
	// already expired.
	TTL float64

	// Rotation in radians around the anchor
	Rotation float64
	// Anchor as a fraction of the extent, {0,0} top-left through {1,1}
	// bottom-right
	Anchor vmath.Vec2

	// Context overrides the package default drawing surface
	Context render.Context

	// Image and Animations ride along for callers that draw them from a
	// Renderer strategy; the default draw ignores them
	Image      any
	Animations any

	// Strategy overrides
	Update Updater
	Render Renderer

	// Data holds any extra fields a game wants on the sprite
	Data map[string]any
}
