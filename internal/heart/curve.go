package heart

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// Fixed saturation/value for the fill color; only hue animates.
	saturation = 0.85
	value      = 1.0

	glowLift = 0.35
)

// Point is a 2D point in curve coordinates. Y grows downward so the
// heart is upright on a screen without further flipping.
type Point struct {
	X, Y float64
}

// Outline samples the parametric heart curve
//
//	x = 16 sin^3 t
//	y = 13 cos t - 5 cos 2t - 2 cos 3t - cos 4t
//
// over [0, 2pi) at the given number of steps, scaled and y-negated.
// Returns nil when steps is not positive.
func Outline(scale float64, steps int) []Point {
	if steps <= 0 {
		return nil
	}
	pts := make([]Point, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps) * 2 * math.Pi
		s := math.Sin(t)
		x := 16 * s * s * s
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		pts[i] = Point{X: x * scale, Y: -y * scale}
	}
	return pts
}

// Bounds returns the min/max corners of a point set.
func Bounds(pts []Point) (min, max Point) {
	if len(pts) == 0 {
		return
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return
}

// Color returns the fill color for hue h in [0, 1).
func Color(h float64) colorful.Color {
	return colorful.Hsv(wrap01(h)*360, saturation, value)
}

// Glow lifts every channel of c by a fixed amount, clamped to 1. Drawn
// under and slightly larger than the fill, it reads as a soft halo.
func Glow(c colorful.Color) colorful.Color {
	return colorful.Color{
		R: math.Min(1, c.R+glowLift),
		G: math.Min(1, c.G+glowLift),
		B: math.Min(1, c.B+glowLift),
	}
}

func wrap01(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	return h
}
