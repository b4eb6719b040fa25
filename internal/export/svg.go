package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/arcsim/internal/arc"
)

const (
	arcStroke    = "#1f77b4"
	flightStroke = "#d62728"
	detachFill   = "#2ca02c"
)

type bounds struct {
	minX, maxX, minY, maxY float64
}

func boundsOf(sets ...[]arc.Point) bounds {
	b := bounds{minX: 0, maxX: 0, minY: 0, maxY: 0}
	for _, pts := range sets {
		for _, p := range pts {
			b.minX = min(b.minX, p.X)
			b.maxX = max(b.maxX, p.X)
			b.minY = min(b.minY, p.Y)
			b.maxY = max(b.maxY, p.Y)
		}
	}

	rangeX := b.maxX - b.minX
	rangeY := b.maxY - b.minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	b.minX -= rangeX * 0.1
	b.maxX += rangeX * 0.1
	b.minY -= rangeY * 0.1
	b.maxY += rangeY * 0.1
	return b
}

func (b bounds) project(p arc.Point, width, height int) (float64, float64) {
	x := (p.X - b.minX) / (b.maxX - b.minX) * float64(width)
	y := float64(height) - (p.Y-b.minY)/(b.maxY-b.minY)*float64(height)
	return x, y
}

func writePath(sb *strings.Builder, pts []arc.Point, b bounds, width, height int, stroke string) {
	if len(pts) < 2 {
		return
	}
	fmt.Fprintf(sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke)
	for i, p := range pts {
		x, y := b.project(p, width, height)
		if i == 0 {
			fmt.Fprintf(sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString("\"/>\n")
}

// SVG draws the arc path, the flight path, the ground line and the
// detachment point. Both paths share one coordinate frame.
func SVG(traj *arc.Trajectory, width, height int) string {
	arcPts := traj.ArcPoints()
	flightPts := traj.FlightPoints()
	if len(arcPts) == 0 {
		return ""
	}
	b := boundsOf(arcPts, flightPts)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height)

	gx0, gy := b.project(arc.Point{X: b.minX, Y: 0}, width, height)
	gx1, _ := b.project(arc.Point{X: b.maxX, Y: 0}, width, height)
	fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#999999" stroke-dasharray="4 4"/>
`, gx0, gy, gx1, gy)

	writePath(&sb, arcPts, b, width, height, arcStroke)
	writePath(&sb, flightPts, b, width, height, flightStroke)

	dx, dy := b.project(traj.Detachment.Point, width, height)
	fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="4" fill="%s"/>
`, dx, dy, detachFill)

	sb.WriteString("</svg>")
	return sb.String()
}
