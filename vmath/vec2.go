// Package vmath provides the float64 2D math used by sprites and spatial
// queries: vectors, rects, scalar helpers, and a fast xorshift RNG.
package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector. Methods take value receivers and return new
// vectors; the receiver is never mutated.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// AddScaled returns v + o*s in one step, the usual integration form
// v.AddScaled(accel, dt)
func (v Vec2) AddScaled(o Vec2, s float64) Vec2 {
	return Vec2{v.X + o.X*s, v.Y + o.Y*s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns the unit vector; the zero vector normalizes to zero
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	inv := 1.0 / l
	return Vec2{v.X * inv, v.Y * inv}
}

// ClampLen caps the vector's length at max, preserving direction
func (v Vec2) ClampLen(max float64) Vec2 {
	if max <= 0 {
		return Vec2{}
	}
	sq := v.LenSq()
	if sq <= max*max {
		return v
	}
	scale := max / math.Sqrt(sq)
	return Vec2{v.X * scale, v.Y * scale}
}

// Rotate returns v rotated by rad radians counterclockwise
func (v Vec2) Rotate(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Lerp interpolates from v toward o, t in [0,1]
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
	}
}

// Perp returns the counterclockwise perpendicular
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Angle returns the vector's direction in radians
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
