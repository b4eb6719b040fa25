// Package plot renders trajectories to PNG with gonum/plot.
package plot

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/arcsim/internal/arc"
)

var (
	arcColor    = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	flightColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	detachColor = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

var errEmpty = errors.New("plot: trajectory has no arc samples")

func toXYs(pts []arc.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i].X = p.X
		xys[i].Y = p.Y
	}
	return xys
}

func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Title.Padding = vg.Points(8)

	p.X.Label.TextStyle.Font.Size = vg.Points(13)
	p.Y.Label.TextStyle.Font.Size = vg.Points(13)
	p.X.Label.Padding = vg.Points(6)
	p.Y.Label.Padding = vg.Points(6)

	p.X.Tick.Label.Font.Size = vg.Points(11)
	p.Y.Tick.Label.Font.Size = vg.Points(11)

	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(11)
}

// Trajectory builds the x-y plot: arc in blue, flight in red, and the
// detachment point as a green marker.
func Trajectory(traj *arc.Trajectory, title string) (*plot.Plot, error) {
	if traj == nil || len(traj.Arc) == 0 {
		return nil, errEmpty
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"
	stylePlot(p)
	p.Add(plotter.NewGrid())

	arcLine, err := plotter.NewLine(toXYs(traj.ArcPoints()))
	if err != nil {
		return nil, fmt.Errorf("arc line: %w", err)
	}
	arcLine.LineStyle.Color = arcColor
	arcLine.LineStyle.Width = vg.Points(2)
	p.Add(arcLine)
	p.Legend.Add("arc", arcLine)

	if len(traj.Flight) > 0 {
		flightLine, err := plotter.NewLine(toXYs(traj.FlightPoints()))
		if err != nil {
			return nil, fmt.Errorf("flight line: %w", err)
		}
		flightLine.LineStyle.Color = flightColor
		flightLine.LineStyle.Width = vg.Points(2)
		p.Add(flightLine)
		p.Legend.Add("flight", flightLine)
	}

	d := traj.Detachment.Point
	marker, err := plotter.NewScatter(plotter.XYs{{X: d.X, Y: d.Y}})
	if err != nil {
		return nil, fmt.Errorf("detach marker: %w", err)
	}
	marker.GlyphStyle.Color = detachColor
	marker.GlyphStyle.Radius = vg.Points(5)
	marker.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marker)
	p.Legend.Add("detach", marker)

	return p, nil
}

// WritePNG draws the trajectory plot into w.
func WritePNG(w io.Writer, traj *arc.Trajectory, title string, widthIn, heightIn float64) error {
	p, err := Trajectory(traj, title)
	if err != nil {
		return err
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(150),
	)
	p.Draw(draw.New(c))

	bw := bufio.NewWriter(w)
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(bw); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return bw.Flush()
}

func SavePNG(path string, traj *arc.Trajectory, title string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := WritePNG(f, traj, title, 8, 6); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
