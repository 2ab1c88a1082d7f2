package vmath

// Rect is an axis-aligned rectangle, X0/Y0 inclusive min corner and
// X1/Y1 exclusive max corner
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// RectAt builds a rect from an origin and size
func RectAt(x, y, w, h float64) Rect {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

func (r Rect) W() float64 {
	return r.X1 - r.X0
}

func (r Rect) H() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

func (r Rect) Intersects(o Rect) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

// ContainsRect reports whether o lies entirely inside r
func (r Rect) ContainsRect(o Rect) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// Center returns the rect's midpoint
func (r Rect) Center() Vec2 {
	return Vec2{(r.X0 + r.X1) / 2, (r.Y0 + r.Y1) / 2}
}
