package sim_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/worksim/internal/sim"
)

var _ = Describe("Animator", func() {
	var (
		a      *sim.Animator
		sched  *sim.Scheduler
		frames []sim.Snapshot
		now    time.Time
	)

	tick := func(n int) {
		for i := 0; i < n; i++ {
			now = now.Add(16 * time.Millisecond)
			sched.Tick(now)
		}
	}

	BeforeEach(func() {
		frames = nil
		now = time.Unix(0, 0)
		sched = sim.NewScheduler()
		a = sim.NewAnimator(
			sim.Params{Force: 50, Angle: 0, Distance: 5},
			sim.NewStepper(sim.PaceFrame, sim.DefaultIncrement, 0),
			sched,
			sim.WithRenderer(sim.RenderFunc(func(s sim.Snapshot) { frames = append(frames, s) })),
		)
	})

	It("redraws every tick even when idle", func() {
		tick(3)
		Expect(frames).To(HaveLen(3))
		Expect(frames[2].Result.Work).To(BeNumerically("~", 250, 1e-9))
		Expect(frames[2].Progress).To(BeZero())
		Expect(sched.Names()).To(Equal([]string{"redraw"}))
	})

	It("recomputes immediately when an input changes", func() {
		r := a.SetAngle(90)
		Expect(r.Work).To(BeNumerically("~", 0, 1e-9))
		Expect(r.Fx).To(BeNumerically("~", 0, 1e-9))
		Expect(r.Fy).To(BeNumerically("~", 50, 1e-9))

		r = a.SetForce(10)
		Expect(r.Fy).To(BeNumerically("~", 10, 1e-9))

		a.SetAngle(180)
		r = a.SetDistance(2)
		Expect(r.Work).To(BeNumerically("~", -20, 1e-9))
		Expect(a.Params()).To(Equal(sim.Params{Force: 10, Angle: 180, Distance: 2}))
	})

	It("animates to completion and stops scheduling steps", func() {
		Expect(a.Toggle()).To(Equal(sim.Running))
		Expect(a.Animating()).To(BeTrue())
		tick(150)
		snap := a.Snapshot()
		Expect(snap.Progress).To(Equal(1.0))
		Expect(snap.Phase).To(Equal(sim.Finished))
		Expect(snap.Animating).To(BeFalse())
		Expect(a.Animating()).To(BeFalse())
		Expect(sched.Names()).To(Equal([]string{"redraw"}))
		Expect(snap.Travelled()).To(BeNumerically("~", 5, 1e-9))
	})

	It("never reports progress outside [0,1]", func() {
		a.Start()
		for i := 0; i < 200; i++ {
			tick(1)
			p := a.Snapshot().Progress
			Expect(p).To(BeNumerically(">=", 0))
			Expect(p).To(BeNumerically("<=", 1))
		}
		for _, f := range frames {
			Expect(f.Animating && f.Progress >= 1).To(BeFalse())
		}
	})

	It("keeps redrawing while paused with progress preserved", func() {
		a.Start()
		tick(20)
		Expect(a.Toggle()).To(Equal(sim.Idle))
		p := a.Snapshot().Progress
		Expect(p).To(BeNumerically(">", 0))

		n := len(frames)
		tick(10)
		Expect(frames).To(HaveLen(n + 10))
		Expect(a.Snapshot().Progress).To(Equal(p))
		Expect(sched.Names()).To(Equal([]string{"redraw"}))
	})

	It("restarts from zero when toggled after a pause", func() {
		a.Start()
		tick(20)
		a.Pause()
		a.Toggle()
		Expect(a.Snapshot().Progress).To(BeZero())
		Expect(sched.Names()).To(Equal([]string{"redraw", "animate"}))
	})

	It("resets from any phase", func() {
		a.Start()
		tick(50)
		a.Reset()
		snap := a.Snapshot()
		Expect(snap.Progress).To(BeZero())
		Expect(snap.Phase).To(Equal(sim.Idle))
		tick(5)
		Expect(a.Snapshot().Progress).To(BeZero())
	})

	It("does not stack step loops on repeated starts", func() {
		a.Start()
		a.Start()
		a.Start()
		Expect(sched.Names()).To(Equal([]string{"redraw", "animate"}))
		tick(2)
		Expect(a.Snapshot().Progress).To(BeNumerically("~", 0.02, 1e-9))
	})

	It("toggles the info panel independently", func() {
		Expect(a.ToggleInfo()).To(BeTrue())
		Expect(a.Snapshot().InfoVisible).To(BeTrue())
		Expect(a.ToggleInfo()).To(BeFalse())
		Expect(a.Phase()).To(Equal(sim.Idle))
	})

	It("stops everything on close", func() {
		a.Start()
		a.Close()
		Expect(sched.Len()).To(BeZero())
	})

	It("freezes still frames that count as moving between the ends", func() {
		p := sim.Params{Force: 50, Angle: 30, Distance: 5}

		mid := sim.StillFrame(p, 0.5)
		Expect(mid.Animating).To(BeTrue())
		Expect(mid.Phase).To(Equal(sim.Running))
		Expect(mid.Travelled()).To(BeNumerically("~", 2.5, 1e-9))
		Expect(mid.Result).To(Equal(p.Result()))

		Expect(sim.StillFrame(p, 0).Animating).To(BeFalse())
		Expect(sim.StillFrame(p, 0).Phase).To(Equal(sim.Idle))
		Expect(sim.StillFrame(p, 1).Animating).To(BeFalse())
		Expect(sim.StillFrame(p, 1).Phase).To(Equal(sim.Finished))
	})

	It("accepts non-finite inputs without guarding", func() {
		r := a.SetForce(math.Inf(1))
		Expect(math.IsInf(r.Work, 1)).To(BeTrue())
	})
})
