package export

import (
	"strings"
	"testing"

	"github.com/san-kum/pulse/internal/heart"
	"github.com/san-kum/pulse/internal/viz"
)

func TestHeartToSVG(t *testing.T) {
	pts := heart.Outline(1.0, 120)
	svg := HeartToSVG(pts, 700, 700, "#ff2244", "#ff7799")

	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("expected XML header")
	}
	if !strings.Contains(svg, `width="700" height="700"`) {
		t.Error("expected viewport dimensions")
	}
	if strings.Count(svg, "<path") != 2 {
		t.Errorf("expected glow and fill paths, got %d", strings.Count(svg, "<path"))
	}
	if !strings.Contains(svg, "#ff2244") || !strings.Contains(svg, "#ff7799") {
		t.Error("expected both colors in output")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("expected closing tag")
	}
}

func TestHeartToSVG_NoGlow(t *testing.T) {
	pts := heart.Outline(1.0, 120)
	svg := HeartToSVG(pts, 400, 400, "#ffffff", "")

	if strings.Count(svg, "<path") != 1 {
		t.Error("expected a single path without glow")
	}
}

func TestHeartToSVG_Degenerate(t *testing.T) {
	if HeartToSVG(nil, 100, 100, "#fff", "") != "" {
		t.Error("expected empty output for no points")
	}
	flat := []heart.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	if HeartToSVG(flat, 100, 100, "#fff", "") != "" {
		t.Error("expected empty output for a degenerate curve")
	}
}

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 4)
	c.Set(0, 0)
	c.Set(3, 7)

	svg := CanvasToSVG(c, 4.0, "#00ff00")
	if strings.Count(svg, "<circle") != 2 {
		t.Errorf("expected 2 dots, got %d", strings.Count(svg, "<circle"))
	}
	if !strings.Contains(svg, "#00ff00") {
		t.Error("expected fill color")
	}
}

func TestCanvasToSVG_Nil(t *testing.T) {
	if CanvasToSVG(nil, 4.0, "#fff") != "" {
		t.Error("expected empty output for nil canvas")
	}
}
