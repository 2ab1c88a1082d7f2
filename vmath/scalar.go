package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates from a to b, t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach moves cur toward target by at most step, never overshooting
func Approach(cur, target, step float64) float64 {
	if cur < target {
		cur += step
		if cur > target {
			return target
		}
		return cur
	}
	cur -= step
	if cur < target {
		return target
	}
	return cur
}

// AngDiff returns the shortest signed difference from a to b in radians,
// result in (-Pi, Pi]
func AngDiff(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
