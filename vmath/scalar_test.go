package vmath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"below", -1, 0, 10, 0},
		{"inside", 5, 0, 10, 5},
		{"above", 11, 0, 10, 10},
		{"at low edge", 0, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestApproach(t *testing.T) {
	tests := []struct {
		name              string
		cur, target, step float64
		want              float64
	}{
		{"toward above", 0, 10, 3, 3},
		{"toward below", 10, 0, 3, 7},
		{"no overshoot up", 9, 10, 3, 10},
		{"no overshoot down", 1, 0, 3, 0},
		{"already there", 5, 5, 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Approach(tt.cur, tt.target, tt.step); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAngDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"quarter turn", 0, math.Pi / 2, math.Pi / 2},
		{"wraps short way", 0.1, 2*math.Pi - 0.1, -0.2},
		{"negative quarter", math.Pi / 2, 0, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AngDiff(tt.a, tt.b); !almostEq(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLerpScalar(t *testing.T) {
	if got := Lerp(0, 10, 0.25); !almostEq(got, 2.5) {
		t.Errorf("Expected 2.5, got %v", got)
	}
}

func TestRect(t *testing.T) {
	r := RectAt(10, 20, 5, 8)
	if r.W() != 5 || r.H() != 8 {
		t.Errorf("Expected 5x8, got %vx%v", r.W(), r.H())
	}
	if !r.Contains(10, 20) {
		t.Error("Expected min corner to be contained")
	}
	if r.Contains(15, 20) {
		t.Error("Expected max x edge to be exclusive")
	}
	if !r.Intersects(RectAt(14, 27, 10, 10)) {
		t.Error("Expected overlapping rects to intersect")
	}
	if r.Intersects(RectAt(15, 20, 1, 1)) {
		t.Error("Expected edge-touching rects not to intersect")
	}
	c := r.Center()
	if !vecEq(c, Vec2{12.5, 24}) {
		t.Errorf("Expected center {12.5 24}, got %v", c)
	}
	if !r.ContainsRect(RectAt(11, 21, 2, 2)) {
		t.Error("Expected inner rect to be contained")
	}
	if r.ContainsRect(RectAt(11, 21, 10, 2)) {
		t.Error("Expected overhanging rect not to be contained")
	}
}

func TestFastRandDeterminism(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		if n := r.Intn(10); n < 0 || n >= 10 {
			t.Fatalf("Expected Intn in [0,10), got %d", n)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Expected Float64 in [0,1), got %v", f)
		}
		if v := r.Range(-2, 3); v < -2 || v >= 3 {
			t.Fatalf("Expected Range in [-2,3), got %v", v)
		}
	}
	if NewFastRand(0).Next() == 0 {
		t.Error("Expected zero seed to be remapped, got zero state")
	}
}
