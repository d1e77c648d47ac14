package viz

import (
	"math"

	"github.com/san-kum/pulse/internal/heart"
)

const (
	frameWidth  = 44 // chars
	frameHeight = 16

	frameSteps = 240

	// The two fixed pulse scales the terminal animation alternates
	// between.
	SmallScale = 0.78
	LargeScale = 1.0
)

// Frame is one immutable text rendering of the heart, tagged with the
// pulse scale it was drawn at.
type Frame struct {
	Scale float64
	Art   string
}

// Frames returns the small and large heart frames, in that order.
func Frames() [2]Frame {
	return [2]Frame{
		{Scale: SmallScale, Art: RenderFrame(SmallScale)},
		{Scale: LargeScale, Art: RenderFrame(LargeScale)},
	}
}

// RenderFrame rasterizes the heart outline at the given pulse scale.
// Output is deterministic for a given scale.
func RenderFrame(scale float64) string {
	return FrameCanvas(scale).String()
}

// FrameCanvas draws the outline onto a fresh Braille canvas. Exposed
// so the exporter can reuse the same rasterization.
func FrameCanvas(scale float64) *Canvas {
	c := NewCanvas(frameWidth, frameHeight)
	pts := heart.Outline(1.0, frameSteps)
	if len(pts) == 0 {
		return c
	}

	min, max := heart.Bounds(pts)
	midY := (min.Y + max.Y) / 2

	subW := float64(frameWidth * 2)
	subH := float64(frameHeight * 4)

	// Fit the full-size heart with a small margin; smaller scales
	// shrink inside the same box so both frames share a center.
	unit := math.Min((subW-4)/(max.X-min.X), (subH-4)/(max.Y-min.Y)) * scale

	px := func(p heart.Point) (int, int) {
		x := subW/2 + p.X*unit
		y := subH/2 + (p.Y-midY)*unit
		return int(math.Round(x)), int(math.Round(y))
	}

	x0, y0 := px(pts[0])
	for i := 1; i <= len(pts); i++ {
		x1, y1 := px(pts[i%len(pts)])
		c.DrawLine(x0, y0, x1, y1)
		x0, y0 = x1, y1
	}
	return c
}
