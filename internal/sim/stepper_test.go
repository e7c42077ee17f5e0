package sim_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/worksim/internal/sim"
)

var _ = Describe("Stepper", func() {
	var s *sim.Stepper

	BeforeEach(func() {
		s = sim.NewStepper(sim.PaceFrame, sim.DefaultIncrement, 0)
	})

	It("starts idle at zero", func() {
		Expect(s.Phase()).To(Equal(sim.Idle))
		Expect(s.Progress()).To(BeZero())
		Expect(s.Step(0)).To(BeFalse())
		Expect(s.Progress()).To(BeZero())
	})

	It("resets progress to zero on start", func() {
		s.Start()
		for i := 0; i < 30; i++ {
			s.Step(0)
		}
		s.Start()
		Expect(s.Progress()).To(BeZero())
		Expect(s.Phase()).To(Equal(sim.Running))
	})

	It("increases monotonically and saturates at exactly one", func() {
		s.Start()
		prev, steps := 0.0, 0
		for s.Step(0) {
			Expect(s.Progress()).To(BeNumerically(">", prev))
			Expect(s.Progress()).To(BeNumerically("<", 1))
			prev = s.Progress()
			steps++
			Expect(steps).To(BeNumerically("<", 200))
		}
		Expect(steps).To(BeNumerically("~", 100, 1))
		Expect(s.Progress()).To(Equal(1.0))
		Expect(s.Phase()).To(Equal(sim.Finished))
		Expect(s.Running()).To(BeFalse())

		Expect(s.Step(0)).To(BeFalse())
		Expect(s.Progress()).To(Equal(1.0))
	})

	It("preserves progress on pause", func() {
		s.Start()
		for i := 0; i < 25; i++ {
			s.Step(0)
		}
		p := s.Progress()
		s.Pause()
		Expect(s.Phase()).To(Equal(sim.Idle))
		Expect(s.Progress()).To(Equal(p))
		Expect(s.Step(0)).To(BeFalse())
		Expect(s.Progress()).To(Equal(p))
	})

	It("toggles between running and paused", func() {
		Expect(s.Toggle()).To(BeTrue())
		s.Step(0)
		Expect(s.Toggle()).To(BeFalse())
		Expect(s.Progress()).To(BeNumerically(">", 0))
		Expect(s.Toggle()).To(BeTrue())
		Expect(s.Progress()).To(BeZero())
	})

	DescribeTable("reset always yields idle at zero",
		func(prepare func(*sim.Stepper)) {
			prepare(s)
			s.Reset()
			Expect(s.Phase()).To(Equal(sim.Idle))
			Expect(s.Progress()).To(BeZero())
		},
		Entry("from idle", func(*sim.Stepper) {}),
		Entry("from running", func(st *sim.Stepper) { st.Start(); st.Step(0) }),
		Entry("from paused", func(st *sim.Stepper) { st.Start(); st.Step(0); st.Pause() }),
		Entry("from finished", func(st *sim.Stepper) {
			st.Start()
			for st.Step(0) {
			}
		}),
	)

	Context("with time pacing", func() {
		BeforeEach(func() {
			s = sim.NewStepper(sim.PaceTime, 0, time.Second)
		})

		It("advances by elapsed over duration", func() {
			s.Start()
			Expect(s.Step(250 * time.Millisecond)).To(BeTrue())
			Expect(s.Progress()).To(BeNumerically("~", 0.25, 1e-9))
			Expect(s.Step(0)).To(BeTrue())
			Expect(s.Progress()).To(BeNumerically("~", 0.25, 1e-9))
		})

		It("clamps a large step to one", func() {
			s.Start()
			Expect(s.Step(5 * time.Second)).To(BeFalse())
			Expect(s.Progress()).To(Equal(1.0))
			Expect(s.Phase()).To(Equal(sim.Finished))
		})
	})

	It("falls back to frame pacing for unknown modes", func() {
		st := sim.NewStepper(sim.Pacing("bogus"), -1, -1)
		Expect(st.Pacing).To(Equal(sim.PaceFrame))
		Expect(st.Increment).To(Equal(sim.DefaultIncrement))
		Expect(st.Duration).To(Equal(sim.DefaultDuration))
	})
})
