package metrics

import (
	"math"

	"github.com/san-kum/arcsim/internal/arc"
)

// NormalMargin is the smallest normal force seen on the track. It drops
// towards zero as the launch speed approaches the critical speed.
type NormalMargin struct {
	name   string
	params arc.Params
	min    float64
}

func NewNormalMargin(p arc.Params) *NormalMargin {
	return &NormalMargin{
		name:   "min_normal_force",
		params: p,
		min:    math.Inf(1),
	}
}

func (n *NormalMargin) Name() string { return n.name }

func (n *NormalMargin) Observe(s arc.ArcSample) {
	n.min = math.Min(n.min, arc.NormalForce(n.params, s.Speed, s.Angle))
}

func (n *NormalMargin) Value() float64 {
	if math.IsInf(n.min, 1) {
		return 0
	}
	return n.min
}

func (n *NormalMargin) Reset() {
	n.min = math.Inf(1)
}

type PeakSpeed struct {
	max float64
}

func NewPeakSpeed() *PeakSpeed { return &PeakSpeed{} }

func (p *PeakSpeed) Name() string { return "peak_arc_speed" }

func (p *PeakSpeed) Observe(s arc.ArcSample) {
	p.max = math.Max(p.max, s.Speed)
}

func (p *PeakSpeed) Value() float64 { return p.max }

func (p *PeakSpeed) Reset() { p.max = 0 }
