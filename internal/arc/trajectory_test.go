package arc_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/arcsim/internal/arc"
)

var _ = Describe("Flight", func() {
	var p arc.Params

	BeforeEach(func() {
		p = arc.DefaultParams()
	})

	collect := func(d arc.Detachment) ([]arc.FlightState, error) {
		var out []arc.FlightState
		for fs, err := range arc.Flight(p, d) {
			if err != nil {
				return out, err
			}
			out = append(out, fs)
		}
		return out, nil
	}

	It("falls to the ground and stays above it", func() {
		pts, err := collect(arc.Detachment{Point: arc.Point{X: 0, Y: 8}, VX: -6})
		Expect(err).NotTo(HaveOccurred())
		Expect(pts).NotTo(BeEmpty())
		for _, fs := range pts {
			Expect(fs.Pos.Y).To(BeNumerically(">=", 0))
		}
		Expect(pts[len(pts)-1].Pos.Y).To(Equal(0.0))
		Expect(pts[len(pts)-2].Pos.Y).To(BeNumerically(">", 0))
	})

	It("keeps horizontal velocity constant", func() {
		pts, err := collect(arc.Detachment{Point: arc.Point{Y: 2}, VX: 3, VY: 1})
		Expect(err).NotTo(HaveOccurred())
		for i, fs := range pts {
			Expect(fs.VX).To(Equal(3.0))
			Expect(fs.Pos.X).To(BeNumerically("~", 3*p.FlightDt*float64(i+1), 1e-9))
		}
	})

	It("yields the minimum number of points for a ground-level detachment", func() {
		pts, err := collect(arc.Detachment{VX: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(pts).To(HaveLen(p.MinFlightPoints))
		for _, fs := range pts {
			Expect(fs.Pos.Y).To(Equal(0.0))
		}
	})

	It("is reproducible", func() {
		d := arc.Detachment{Point: arc.Point{X: 1, Y: 3}, VX: 2, VY: 4}
		a, errA := collect(d)
		b, errB := collect(d)
		Expect(errA).NotTo(HaveOccurred())
		Expect(errB).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("stops early when the consumer does", func() {
		n := 0
		for range arc.Flight(p, arc.Detachment{Point: arc.Point{Y: 100}}) {
			n++
			if n == 3 {
				break
			}
		}
		Expect(n).To(Equal(3))
	})

	It("surfaces the step cap", func() {
		p.MaxFlightSteps = 5
		pts, err := collect(arc.Detachment{Point: arc.Point{Y: 1000}})
		Expect(pts).To(HaveLen(5))
		Expect(err).To(MatchError(arc.ErrIterationLimit))
	})
})

var _ = Describe("Run", func() {
	var p arc.Params

	BeforeEach(func() {
		p = arc.DefaultParams()
	})

	It("traverses the whole reference arc before detaching", func() {
		res, err := arc.Run(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Err()).To(Succeed())
		Expect(res.Solution.Feasible).To(BeTrue())

		traj := res.Trajectory
		Expect(traj).NotTo(BeNil())
		Expect(traj.Launch).To(Equal(res.Solution.Speed))
		Expect(traj.Arc).NotTo(BeEmpty())
		Expect(traj.Arc[len(traj.Arc)-1].Angle).To(Equal(p.TotalAngle))

		d := traj.Detachment
		Expect(d.Cause).To(Equal(arc.CauseArcEnd))
		Expect(d.Angle).To(Equal(p.TotalAngle))
		Expect(d.Point).To(Equal(traj.Arc[len(traj.Arc)-1].Point))
		Expect(d.Point.Y).To(BeNumerically("~", 2*p.Radius, 1e-9))
		Expect(d.VX).To(BeNumerically("<", 0))
		Expect(d.VY).To(BeNumerically("~", 0, 1e-9))
		Expect(d.Speed).To(BeNumerically(">=", math.Sqrt(p.Gravity*p.Radius)-0.05))
	})

	It("keeps the angle non-decreasing on the track", func() {
		res, err := arc.Run(p)
		Expect(err).NotTo(HaveOccurred())
		prev := 0.0
		for _, s := range res.Trajectory.Arc {
			Expect(s.Angle).To(BeNumerically(">=", prev))
			Expect(s.Speed).To(BeNumerically(">=", 0))
			prev = s.Angle
		}
	})

	It("lands on the ground", func() {
		res, err := arc.Run(p)
		Expect(err).NotTo(HaveOccurred())

		flight := res.Trajectory.Flight
		Expect(len(flight)).To(BeNumerically(">=", p.MinFlightPoints))
		for _, fs := range flight {
			Expect(fs.Pos.Y).To(BeNumerically(">=", 0))
		}
		Expect(res.Trajectory.Landing().Pos.Y).To(Equal(0.0))
		Expect(res.Trajectory.FlightPoints()).To(HaveLen(len(flight)))
		Expect(res.Trajectory.ArcPoints()).To(HaveLen(len(res.Trajectory.Arc)))
	})

	It("is deterministic", func() {
		a, err := arc.Run(p)
		Expect(err).NotTo(HaveOccurred())
		b, err := arc.Run(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("returns no trajectory when the speed is infeasible", func() {
		p.Friction = 2
		res, err := arc.Run(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Solution.Feasible).To(BeFalse())
		Expect(res.Trajectory).To(BeNil())
		Expect(res.Err()).To(MatchError(arc.ErrInfeasibleSpeed))
	})

	It("guards against an empty arc sequence", func() {
		p.TotalAngle = 0
		res, err := arc.Run(p)
		Expect(err).To(MatchError(arc.ErrDegenerateTrajectory))
		Expect(res.Trajectory).To(BeNil())
	})
})

var _ = Describe("AssembleFrom", func() {
	It("lifts off below the critical speed", func() {
		p := arc.DefaultParams()
		traj, err := arc.AssembleFrom(p, 12)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Detachment.Cause).To(Equal(arc.CauseLiftoff))
		Expect(traj.Detachment.Angle).To(BeNumerically("<", p.TotalAngle))
		Expect(traj.Detachment.Angle).To(BeNumerically(">", math.Pi/2))
	})

	It("stalls on a rough shallow arc", func() {
		p := arc.DefaultParams()
		p.TotalAngle = math.Pi / 4
		p.Friction = 0.5
		traj, err := arc.AssembleFrom(p, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Detachment.Cause).To(Equal(arc.CauseStall))
		Expect(traj.Detachment.Speed).To(BeNumerically("<", p.MinSpeed))
	})
})
