package sprite

// DefaultPoolMax caps pools created with a non-positive max
const DefaultPoolMax = 1024

// Pool recycles dead sprites instead of allocating new ones. Slot order
// is stable: a recycled sprite keeps its position in the update and
// render walk.
type Pool struct {
	max     int
	sprites []*Sprite
}

// NewPool returns an empty pool holding at most max sprites; max <= 0
// means DefaultPoolMax
func NewPool(max int) *Pool {
	if max <= 0 {
		max = DefaultPoolMax
	}
	return &Pool{max: max}
}

// Get returns a sprite initialized from cfg, recycling the first dead
// slot. When every slot is alive and the pool is at capacity, Get
// returns nil.
func (p *Pool) Get(cfg Config) *Sprite {
	for _, s := range p.sprites {
		if !s.IsAlive() {
			s.Init(cfg)
			return s
		}
	}
	if len(p.sprites) >= p.max {
		return nil
	}
	s := New(cfg)
	p.sprites = append(p.sprites, s)
	return s
}

// Update steps every live sprite in slot order
func (p *Pool) Update(dt float64) {
	for _, s := range p.sprites {
		if s.IsAlive() {
			s.Update(dt)
		}
	}
}

// Render draws every live sprite in slot order
func (p *Pool) Render() {
	for _, s := range p.sprites {
		if s.IsAlive() {
			s.Render()
		}
	}
}

// Each calls fn for every live sprite in slot order
func (p *Pool) Each(fn func(*Sprite)) {
	for _, s := range p.sprites {
		if s.IsAlive() {
			fn(s)
		}
	}
}

// Alive counts the live sprites
func (p *Pool) Alive() int {
	n := 0
	for _, s := range p.sprites {
		if s.IsAlive() {
			n++
		}
	}
	return n
}

// Size reports how many slots the pool has allocated
func (p *Pool) Size() int {
	return len(p.sprites)
}

// Max reports the slot capacity
func (p *Pool) Max() int {
	return p.max
}

// Clear drops every slot
func (p *Pool) Clear() {
	p.sprites = nil
}
