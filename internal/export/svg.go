package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/pulse/internal/heart"
	"github.com/san-kum/pulse/internal/viz"
)

// HeartToSVG renders one heart frame as a filled SVG path. The curve
// is fit into the given viewport with a 10% margin; glowHex may be
// empty to skip the glow underlay.
func HeartToSVG(pts []heart.Point, width, height int, fillHex, glowHex string) string {
	if len(pts) < 3 {
		return ""
	}

	min, max := heart.Bounds(pts)
	rangeX := max.X - min.X
	rangeY := max.Y - min.Y
	if rangeX == 0 || rangeY == 0 {
		return ""
	}

	inner := 0.8 * minF(float64(width)/rangeX, float64(height)/rangeY)
	cx := float64(width) / 2
	cy := float64(height) / 2
	midX := (min.X + max.X) / 2
	midY := (min.Y + max.Y) / 2

	path := func(scale float64) string {
		var b strings.Builder
		for i, p := range pts {
			x := cx + (p.X-midX)*scale
			y := cy + (p.Y-midY)*scale
			if i == 0 {
				fmt.Fprintf(&b, "M%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&b, " L%.1f,%.1f", x, y)
			}
		}
		b.WriteString(" Z")
		return b.String()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#111111"/>
`, width, height, width, height)

	if glowHex != "" {
		fmt.Fprintf(&sb, "<path fill=\"%s\" d=\"%s\"/>\n", glowHex, path(inner*1.06))
	}
	fmt.Fprintf(&sb, "<path fill=\"%s\" d=\"%s\"/>\n", fillHex, path(inner))

	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG, one dot per lit
// sub-pixel. Used to export the terminal frames.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fillHex string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#111111"/>
<g fill="%s">
`, width, height, width, height, fillHex)

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
