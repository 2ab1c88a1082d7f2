// Package sprite implements the game object at the center of the
// library: a positioned, colored rect with velocity, acceleration, a
// frame-counted lifetime, and strategy hooks for custom behavior.
// Sprites and pools are owned by the frame loop goroutine.
package sprite

import (
	"math"

	"github.com/lixenwraith/glint/render"
	"github.com/lixenwraith/glint/vmath"
)

// Sprite is a 2D game object. Create with New or reuse with Init; the
// vector fields are exported for bulk math, the scalar accessors mirror
// their components.
type Sprite struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Accel    vmath.Vec2

	Color         string
	Width, Height float64

	// TTL counts down by 1 per update step; the sprite is alive while
	// it stays positive
	TTL float64

	Rotation float64
	Anchor   vmath.Vec2

	Context render.Context

	Image      any
	Animations any

	Updater  Updater
	Renderer Renderer

	Data map[string]any
}

// New returns a sprite initialized from cfg
func New(cfg Config) *Sprite {
	s := &Sprite{}
	s.Init(cfg)
	return s
}

// Init resets every field to its default and merges cfg over the
// defaults. When cfg carries no context the package default is acquired
// here. A recycled sprite keeps nothing from its previous life.
func (s *Sprite) Init(cfg Config) {
	*s = Sprite{
		Position: vmath.Vec2{X: cfg.X, Y: cfg.Y},
		Velocity: vmath.Vec2{X: cfg.DX, Y: cfg.DY},
		Accel:    vmath.Vec2{X: cfg.DDX, Y: cfg.DDY},

		Color:  cfg.Color,
		Width:  cfg.Width,
		Height: cfg.Height,

		TTL: cfg.TTL,

		Rotation: cfg.Rotation,
		Anchor:   cfg.Anchor,

		Context: cfg.Context,

		Image:      cfg.Image,
		Animations: cfg.Animations,

		Updater:  cfg.Update,
		Renderer: cfg.Render,

		Data: cfg.Data,
	}
	if cfg.TTL == 0 {
		s.TTL = math.Inf(1)
	}
	if s.Context == nil {
		s.Context = render.Default()
	}
}

// Position accessors

func (s *Sprite) X() float64     { return s.Position.X }
func (s *Sprite) Y() float64     { return s.Position.Y }
func (s *Sprite) SetX(v float64) { s.Position.X = v }
func (s *Sprite) SetY(v float64) { s.Position.Y = v }

// Velocity accessors

func (s *Sprite) DX() float64     { return s.Velocity.X }
func (s *Sprite) DY() float64     { return s.Velocity.Y }
func (s *Sprite) SetDX(v float64) { s.Velocity.X = v }
func (s *Sprite) SetDY(v float64) { s.Velocity.Y = v }

// Acceleration accessors

func (s *Sprite) DDX() float64     { return s.Accel.X }
func (s *Sprite) DDY() float64     { return s.Accel.Y }
func (s *Sprite) SetDDX(v float64) { s.Accel.X = v }
func (s *Sprite) SetDDY(v float64) { s.Accel.Y = v }

// IsAlive reports whether the sprite's lifetime has steps left
func (s *Sprite) IsAlive() bool {
	return s.TTL > 0
}

// Update runs the Updater strategy when one is set, otherwise Advance
func (s *Sprite) Update(dt float64) {
	if s.Updater != nil {
		s.Updater.Update(s, dt)
		return
	}
	s.Advance(dt)
}

// Advance applies acceleration to velocity and ages the sprite by one
// step. Position is not integrated here; an Updater strategy or the
// caller decides how velocity moves the sprite.
func (s *Sprite) Advance(dt float64) {
	s.Velocity = s.Velocity.AddScaled(s.Accel, dt)
	s.TTL--
}

// Render runs the Renderer strategy when one is set, otherwise Draw
func (s *Sprite) Render() {
	if s.Renderer != nil {
		s.Renderer.Render(s)
		return
	}
	s.Draw()
}

// Draw fills the sprite's rect on its context. A sprite that acquired
// no context at Init retries the package default here and is a no-op
// when there is still none. The drawing is bracketed by exactly one
// save/restore pair: translate to the position, rotate when there is a
// rotation, and fill the anchor-adjusted rect when a color is set. A
// colorless sprite issues the transform calls but no fill.
func (s *Sprite) Draw() {
	ctx := s.Context
	if ctx == nil {
		ctx = render.Default()
	}
	if ctx == nil {
		return
	}

	ctx.Save()
	ctx.Translate(s.Position.X, s.Position.Y)
	if s.Rotation != 0 {
		ctx.Rotate(s.Rotation)
	}
	if s.Color != "" {
		ctx.SetFill(s.Color)
		ctx.FillRect(-s.Anchor.X*s.Width, -s.Anchor.Y*s.Height, s.Width, s.Height)
	}
	ctx.Restore()
}

// Bounds returns the anchor-adjusted rect in world coordinates,
// ignoring rotation. Spatial indexing uses it for broad-phase queries.
func (s *Sprite) Bounds() vmath.Rect {
	return vmath.RectAt(
		s.Position.X-s.Anchor.X*s.Width,
		s.Position.Y-s.Anchor.Y*s.Height,
		s.Width,
		s.Height,
	)
}
