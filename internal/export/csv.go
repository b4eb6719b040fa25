package export

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/arcsim/internal/arc"
)

var csvHeader = []string{"phase", "t", "x", "y", "vx", "vy", "speed", "angle"}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// WriteCSV writes one row per recorded point, arc first, then flight.
// Flight rows leave the angle column empty.
func WriteCSV(w io.Writer, traj *arc.Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, s := range traj.Arc {
		row := []string{
			"arc",
			formatFloat(s.Time),
			formatFloat(s.X),
			formatFloat(s.Y),
			formatFloat(s.Speed * math.Cos(s.Angle)),
			formatFloat(s.Speed * math.Sin(s.Angle)),
			formatFloat(s.Speed),
			formatFloat(s.Angle),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	for _, fs := range traj.Flight {
		row := []string{
			"flight",
			formatFloat(fs.Time),
			formatFloat(fs.Pos.X),
			formatFloat(fs.Pos.Y),
			formatFloat(fs.VX),
			formatFloat(fs.VY),
			formatFloat(fs.Speed()),
			"",
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
