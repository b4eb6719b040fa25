package viz

import (
	"math"
	"strings"

	"github.com/san-kum/arcsim/internal/arc"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// Set lights a dot at (x, y) in sub-pixel coordinates. The canvas is
// (Width*2) x (Height*4) sub-pixels, origin top left.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Frame maps world coordinates (metres, y up) onto a canvas.
type Frame struct {
	MinX, MaxX, MinY, MaxY float64
}

// FrameOf returns a frame enclosing every point and the origin, padded by
// five percent on each side.
func FrameOf(sets ...[]arc.Point) Frame {
	f := Frame{}
	for _, pts := range sets {
		for _, p := range pts {
			f.MinX = math.Min(f.MinX, p.X)
			f.MaxX = math.Max(f.MaxX, p.X)
			f.MinY = math.Min(f.MinY, p.Y)
			f.MaxY = math.Max(f.MaxY, p.Y)
		}
	}
	padX := math.Max((f.MaxX-f.MinX)*0.05, 0.5)
	padY := math.Max((f.MaxY-f.MinY)*0.05, 0.5)
	f.MinX -= padX
	f.MaxX += padX
	f.MinY -= padY
	f.MaxY += padY
	return f
}

func (c *Canvas) project(f Frame, p arc.Point) (int, int) {
	w := float64(c.Width*2 - 1)
	h := float64(c.Height*4 - 1)
	x := (p.X - f.MinX) / (f.MaxX - f.MinX) * w
	y := h - (p.Y-f.MinY)/(f.MaxY-f.MinY)*h
	return int(math.Round(x)), int(math.Round(y))
}

// Polyline connects consecutive points with straight segments.
func (c *Canvas) Polyline(f Frame, pts []arc.Point) {
	for i := 1; i < len(pts); i++ {
		x0, y0 := c.project(f, pts[i-1])
		x1, y1 := c.project(f, pts[i])
		c.DrawLine(x0, y0, x1, y1)
	}
	if len(pts) == 1 {
		x, y := c.project(f, pts[0])
		c.Set(x, y)
	}
}

// Marker draws a small cross centred on p.
func (c *Canvas) Marker(f Frame, p arc.Point) {
	x, y := c.project(f, p)
	c.DrawLine(x-2, y-2, x+2, y+2)
	c.DrawLine(x-2, y+2, x+2, y-2)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
