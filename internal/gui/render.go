package gui

import (
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/pulse/internal/heart"
)

const glowExtra = 1.06 // glow polygon is slightly larger than the fill

func (a *App) drawHeart() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	cx := float64(w) / 2
	cy := float64(h)/2 + 30

	// Base scale tuned for a 700px window, proportional otherwise
	unit := a.cfg.Scale * float64(minInt(w, h)) / 700.0
	scale := unit * a.osc.Scale()

	fill := heart.Color(a.osc.Hue())

	if a.cfg.Glow {
		glow := toRL(heart.Glow(fill), 255)
		fillPolygon(a.screenPoints(cx, cy, scale*glowExtra), glow)
	}

	pts := a.screenPoints(cx, cy, scale)
	fillPolygon(pts, toRL(fill, 255))
	rl.DrawLineStrip(append(pts, pts[0]), rl.NewColor(255, 255, 255, 40))
}

// screenPoints maps the unit outline to screen space at the given
// pixel scale.
func (a *App) screenPoints(cx, cy, scale float64) []rl.Vector2 {
	out := make([]rl.Vector2, len(a.outline))
	for i, p := range a.outline {
		out[i] = rl.NewVector2(float32(cx+p.X*scale), float32(cy+p.Y*scale))
	}
	return out
}

// fillPolygon rasterizes a closed polygon with even-odd scanlines.
// The heart is concave at the dip, so a triangle fan would overfill;
// scanlines handle any simple polygon.
func fillPolygon(pts []rl.Vector2, col rl.Color) {
	if len(pts) < 3 {
		return
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	xs := make([]float64, 0, 8)
	for y := math.Floor(float64(minY)); y <= math.Ceil(float64(maxY)); y++ {
		sy := y + 0.5
		xs = xs[:0]

		for i := range pts {
			p0, p1 := pts[i], pts[(i+1)%len(pts)]
			y0, y1 := float64(p0.Y), float64(p1.Y)
			if (y0 <= sy) == (y1 <= sy) {
				continue
			}
			t := (sy - y0) / (y1 - y0)
			xs = append(xs, float64(p0.X)+t*(float64(p1.X)-float64(p0.X)))
		}

		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			rl.DrawLineV(
				rl.NewVector2(float32(xs[i]), float32(sy)),
				rl.NewVector2(float32(xs[i+1]), float32(sy)),
				col)
		}
	}
}

func toRL(c colorful.Color, alpha uint8) rl.Color {
	c = c.Clamped()
	return rl.NewColor(uint8(c.R*255), uint8(c.G*255), uint8(c.B*255), alpha)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
