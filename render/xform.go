package render

import "math"

// xform is a 2D affine transform in column basis form:
// x' = A*x + C*y + E, y' = B*x + D*y + F
type xform struct {
	a, b, c, d, e, f float64
}

func identity() xform {
	return xform{a: 1, d: 1}
}

func (m xform) translate(x, y float64) xform {
	m.e += m.a*x + m.c*y
	m.f += m.b*x + m.d*y
	return m
}

func (m xform) rotate(rad float64) xform {
	sin, cos := math.Sincos(rad)
	return xform{
		a: m.a*cos + m.c*sin,
		b: m.b*cos + m.d*sin,
		c: -m.a*sin + m.c*cos,
		d: -m.b*sin + m.d*cos,
		e: m.e,
		f: m.f,
	}
}

func (m xform) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

// axisAligned reports whether the transform has no rotation component,
// the fast path for cell fills
func (m xform) axisAligned() bool {
	return m.b == 0 && m.c == 0
}

// invert returns the inverse transform, ok=false when degenerate
func (m xform) invert() (xform, bool) {
	det := m.a*m.d - m.b*m.c
	if det == 0 {
		return xform{}, false
	}
	inv := 1.0 / det
	out := xform{
		a: m.d * inv,
		b: -m.b * inv,
		c: -m.c * inv,
		d: m.a * inv,
	}
	out.e = -(out.a*m.e + out.c*m.f)
	out.f = -(out.b*m.e + out.d*m.f)
	return out, true
}
