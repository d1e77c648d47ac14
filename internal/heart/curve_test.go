package heart

import (
	"math"
	"testing"
)

func TestOutlineCount(t *testing.T) {
	tests := []struct {
		steps    int
		expected int
	}{
		{300, 300},
		{8, 8},
		{0, 0},
		{-5, 0},
	}

	for _, tt := range tests {
		pts := Outline(1.0, tt.steps)
		if len(pts) != tt.expected {
			t.Errorf("steps %d: expected %d points, got %d", tt.steps, tt.expected, len(pts))
		}
	}
}

func TestOutlineSymmetry(t *testing.T) {
	steps := 240
	pts := Outline(1.0, steps)

	// t and 2pi-t mirror across the y axis
	for i := 1; i < steps; i++ {
		a, b := pts[i], pts[steps-i]
		if math.Abs(a.X+b.X) > 1e-9 {
			t.Errorf("point %d: X not mirrored: %f vs %f", i, a.X, b.X)
		}
		if math.Abs(a.Y-b.Y) > 1e-9 {
			t.Errorf("point %d: Y differs across mirror: %f vs %f", i, a.Y, b.Y)
		}
	}
}

func TestOutlineScaling(t *testing.T) {
	base := Outline(1.0, 100)
	scaled := Outline(2.5, 100)

	for i := range base {
		if math.Abs(scaled[i].X-base[i].X*2.5) > 1e-9 {
			t.Errorf("point %d: X scaling wrong", i)
		}
		if math.Abs(scaled[i].Y-base[i].Y*2.5) > 1e-9 {
			t.Errorf("point %d: Y scaling wrong", i)
		}
	}
}

func TestOutlineUpright(t *testing.T) {
	pts := Outline(1.0, 300)
	min, max := Bounds(pts)

	// Bottom tip (y=17 after negation) sits below the lobes (y around -12)
	if max.Y < 16.9 || max.Y > 17.1 {
		t.Errorf("expected bottom tip near 17, got %f", max.Y)
	}
	if min.Y > -11 {
		t.Errorf("expected lobes above -11, got %f", min.Y)
	}
	if math.Abs(min.X+max.X) > 0.5 {
		t.Errorf("expected horizontal symmetry, got [%f, %f]", min.X, max.X)
	}
}

func TestColorRedAtZeroHue(t *testing.T) {
	c := Color(0)
	if math.Abs(c.R-1.0) > 1e-9 {
		t.Errorf("expected full red channel, got %f", c.R)
	}
	if c.G > 0.2 || c.B > 0.2 {
		t.Errorf("expected low green/blue, got %f %f", c.G, c.B)
	}
}

func TestGlowClamped(t *testing.T) {
	g := Glow(Color(0))
	for _, ch := range []float64{g.R, g.G, g.B} {
		if ch > 1.0 {
			t.Errorf("glow channel exceeds 1: %f", ch)
		}
	}
	if g.G <= Color(0).G {
		t.Error("glow should lift dim channels")
	}
}
