package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/arcsim/internal/arc"
	"github.com/san-kum/arcsim/internal/experiment"
)

type Bundle struct {
	Name       string             `json:"name"`
	Params     arc.Params         `json:"params"`
	Solution   arc.Solution       `json:"solution"`
	Analytic   float64            `json:"frictionless_reference"`
	Detachment *arc.Detachment    `json:"detachment,omitempty"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
	Arc        []arc.ArcSample    `json:"arc,omitempty"`
	Flight     []arc.FlightState  `json:"flight,omitempty"`
}

func NewBundle(res *experiment.Result, withPoints bool) Bundle {
	b := Bundle{
		Name:     res.Name,
		Params:   res.Params,
		Solution: res.Solution,
		Analytic: res.Analytic,
		Metrics:  res.Metrics,
	}
	if res.Trajectory != nil {
		d := res.Trajectory.Detachment
		b.Detachment = &d
		if withPoints {
			b.Arc = res.Trajectory.Arc
			b.Flight = res.Trajectory.Flight
		}
	}
	return b
}

func WriteJSON(w io.Writer, res *experiment.Result, withPoints bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewBundle(res, withPoints))
}
