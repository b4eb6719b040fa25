package arc_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/arcsim/internal/arc"
)

var _ = Describe("CanComplete", func() {
	var p arc.Params

	BeforeEach(func() {
		p = arc.DefaultParams()
	})

	It("is monotonic in launch speed", func() {
		seen := false
		for v := 0.0; v <= 30; v += 0.25 {
			ok, err := arc.CanComplete(p, v)
			Expect(err).NotTo(HaveOccurred())
			if seen {
				Expect(ok).To(BeTrue(), "v0=%.2f failed after a slower launch succeeded", v)
			}
			seen = seen || ok
		}
		Expect(seen).To(BeTrue())
	})

	It("succeeds immediately on an empty arc", func() {
		p.TotalAngle = 0
		Expect(arc.CanComplete(p, 0)).To(BeTrue())
	})

	It("surfaces the step cap instead of spinning", func() {
		p.MinSpeed = 0
		p.MaxArcSteps = 50
		ok, err := arc.CanComplete(p, 0)
		Expect(ok).To(BeFalse())
		Expect(err).To(MatchError(arc.ErrIterationLimit))

		var simErr *arc.SimulationError
		Expect(err).To(BeAssignableToTypeOf(simErr))
		Expect(err.(*arc.SimulationError).Phase).To(Equal(arc.PhaseArc))
		Expect(err.(*arc.SimulationError).Step).To(Equal(50))
	})
})

var _ = Describe("Solve", func() {
	var p arc.Params

	BeforeEach(func() {
		p = arc.DefaultParams()
	})

	It("finds a feasible speed for the reference track", func() {
		sol, err := arc.Solve(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(sol.Feasible).To(BeTrue())
		Expect(sol.Speed).To(BeNumerically("<", p.UpperBound))
		Expect(sol.Speed).To(BeNumerically("~", 14.505, 0.01))
		Expect(sol.High - sol.Low).To(BeNumerically("<=", p.Tolerance))
	})

	It("runs a fixed number of bisection rounds", func() {
		sol, err := arc.Solve(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(sol.Iterations).To(Equal(p.MaxIterations()))
		Expect(sol.Iterations).To(Equal(20))
	})

	It("brackets the critical speed within the tolerance", func() {
		sol, err := arc.Solve(p)
		Expect(err).NotTo(HaveOccurred())

		Expect(arc.CanComplete(p, sol.Speed+p.Tolerance)).To(BeTrue())
		Expect(arc.CanComplete(p, sol.Speed-p.Tolerance)).To(BeFalse())
	})

	It("matches the energy bound when friction is off", func() {
		p.Friction = 0
		sol, err := arc.Solve(p)
		Expect(err).NotTo(HaveOccurred())

		analytic := math.Sqrt(5 * p.Gravity * p.Radius)
		Expect(math.Abs(sol.Speed-analytic) / analytic).To(BeNumerically("<", 0.01))
	})

	It("needs less speed as the arc shrinks", func() {
		prev := math.Inf(1)
		for _, angle := range []float64{0.5, 0.1, 0.01, 0.001} {
			p.TotalAngle = angle
			sol, err := arc.Solve(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(sol.Feasible).To(BeTrue())
			Expect(sol.Speed).To(BeNumerically("<", prev))
			prev = sol.Speed
		}
		Expect(prev).To(BeNumerically("<", 0.05))
	})

	It("reports infeasibility once friction outgrows the search range", func() {
		p.Friction = 2
		sol, err := arc.Solve(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(sol.Feasible).To(BeFalse())
		Expect(sol.Speed).To(BeNumerically("~", p.UpperBound, 0.005))
	})

	It("rejects invalid parameters", func() {
		p.Radius = 0
		_, err := arc.Solve(p)
		Expect(err).To(MatchError(arc.ErrParameterBounds))
	})
})

var _ = Describe("Params", func() {
	DescribeTable("Validate",
		func(mutate func(*arc.Params), valid bool) {
			p := arc.DefaultParams()
			mutate(&p)
			if valid {
				Expect(p.Validate()).To(Succeed())
			} else {
				Expect(p.Validate()).To(MatchError(arc.ErrParameterBounds))
			}
		},
		Entry("defaults", func(p *arc.Params) {}, true),
		Entry("zero angle", func(p *arc.Params) { p.TotalAngle = 0 }, true),
		Entry("zero friction", func(p *arc.Params) { p.Friction = 0 }, true),
		Entry("zero mass", func(p *arc.Params) { p.Mass = 0 }, false),
		Entry("negative radius", func(p *arc.Params) { p.Radius = -1 }, false),
		Entry("negative friction", func(p *arc.Params) { p.Friction = -0.1 }, false),
		Entry("NaN gravity", func(p *arc.Params) { p.Gravity = math.NaN() }, false),
		Entry("infinite bound", func(p *arc.Params) { p.UpperBound = math.Inf(1) }, false),
		Entry("zero dt", func(p *arc.Params) { p.Dt = 0 }, false),
		Entry("no step cap", func(p *arc.Params) { p.MaxArcSteps = 0 }, false),
		Entry("negative min points", func(p *arc.Params) { p.MinFlightPoints = -1 }, false),
	)
})
