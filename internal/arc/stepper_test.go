package arc_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/arcsim/internal/arc"
)

var _ = Describe("Step", func() {
	var p arc.Params

	BeforeEach(func() {
		p = arc.DefaultParams()
	})

	It("computes the normal force from speed and angle", func() {
		Expect(arc.NormalForce(p, 0, 0)).To(BeNumerically("~", p.Mass*p.Gravity, 1e-12))
		Expect(arc.NormalForce(p, 2, math.Pi/2)).To(BeNumerically("~", p.Mass*4/p.Radius, 1e-12))
	})

	It("advances the path with the pre-step speed", func() {
		next := arc.Step(p, arc.ArcState{Speed: 10})
		Expect(next.Path).To(Equal(10 * p.Dt))
		Expect(next.Angle).To(BeNumerically("~", 10*p.Dt/p.Radius, 1e-15))
		Expect(next.Speed).To(BeNumerically("<", 10.0))
	})

	It("never lets speed go negative", func() {
		p.Friction = 1
		next := arc.Step(p, arc.ArcState{Speed: 0.01})
		Expect(next.Speed).To(Equal(0.0))
		Expect(next.Path).To(BeNumerically("~", 1e-4, 1e-15))
	})

	It("clamps the angle at the end of the arc", func() {
		p.TotalAngle = 0.1
		next := arc.Step(p, arc.ArcState{Speed: 10, Angle: 0.099, Path: 0.396})
		Expect(next.Angle).To(Equal(0.1))
		Expect(next.Path).To(BeNumerically(">", p.TotalAngle*p.Radius))
	})

	It("derives the position from the angle", func() {
		pos := arc.ArcState{Angle: math.Pi}.Position(p.Radius)
		Expect(pos.X).To(BeNumerically("~", 0, 1e-12))
		Expect(pos.Y).To(BeNumerically("~", 2*p.Radius, 1e-12))
	})
})

var _ = Describe("Detach", func() {
	p := arc.DefaultParams()

	DescribeTable("causes",
		func(s arc.ArcState, want arc.Cause) {
			Expect(arc.Detach(p, s)).To(Equal(want))
		},
		Entry("on track", arc.ArcState{Speed: 10, Angle: 1}, arc.CauseNone),
		Entry("arc end", arc.ArcState{Speed: 10, Angle: math.Pi}, arc.CauseArcEnd),
		Entry("arc end wins over liftoff", arc.ArcState{Speed: 1, Angle: math.Pi}, arc.CauseArcEnd),
		Entry("liftoff", arc.ArcState{Speed: 1, Angle: 2.5}, arc.CauseLiftoff),
		Entry("liftoff wins over stall", arc.ArcState{Speed: 0, Angle: 2.5}, arc.CauseLiftoff),
		Entry("stall", arc.ArcState{Speed: 5e-4, Angle: 0.5}, arc.CauseStall),
	)

	It("names every cause", func() {
		Expect(arc.CauseArcEnd.String()).To(Equal("arc_end"))
		Expect(arc.CauseLiftoff.String()).To(Equal("liftoff"))
		Expect(arc.CauseStall.String()).To(Equal("stall"))
		Expect(arc.Cause(42).String()).To(Equal("cause(42)"))
	})
})
