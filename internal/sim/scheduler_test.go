package sim_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/worksim/internal/sim"
)

var _ = Describe("Scheduler", func() {
	var (
		s    *sim.Scheduler
		base time.Time
	)

	BeforeEach(func() {
		s = sim.NewScheduler()
		base = time.Unix(0, 0)
	})

	It("runs tasks in registration order", func() {
		var order []string
		s.Every("a", func(time.Time, time.Duration) bool { order = append(order, "a"); return true })
		s.Every("b", func(time.Time, time.Duration) bool { order = append(order, "b"); return true })
		s.Tick(base)
		s.Tick(base)
		Expect(order).To(Equal([]string{"a", "b", "a", "b"}))
		Expect(s.Names()).To(Equal([]string{"a", "b"}))
		Expect(s.Ticks()).To(BeEquivalentTo(2))
	})

	It("stops a task that returns false", func() {
		calls := 0
		h := s.Every("once", func(time.Time, time.Duration) bool { calls++; return false })
		s.Tick(base)
		s.Tick(base)
		Expect(calls).To(Equal(1))
		Expect(h.Active()).To(BeFalse())
		Expect(s.Len()).To(BeZero())
	})

	It("cancels through the handle", func() {
		calls := 0
		h := s.Every("loop", func(time.Time, time.Duration) bool { calls++; return true })
		s.Tick(base)
		h.Cancel()
		h.Cancel()
		s.Tick(base)
		Expect(calls).To(Equal(1))
		Expect(h.Active()).To(BeFalse())
	})

	It("skips a task canceled earlier in the same tick", func() {
		var second *sim.Handle
		calls := 0
		s.Every("first", func(time.Time, time.Duration) bool { second.Cancel(); return true })
		second = s.Every("second", func(time.Time, time.Duration) bool { calls++; return true })
		s.Tick(base)
		Expect(calls).To(BeZero())
	})

	It("defers tasks registered during a tick", func() {
		calls := 0
		s.Every("spawner", func(time.Time, time.Duration) bool {
			s.Every("child", func(time.Time, time.Duration) bool { calls++; return true })
			return false
		})
		s.Tick(base)
		Expect(calls).To(BeZero())
		s.Tick(base)
		Expect(calls).To(Equal(1))
	})

	It("passes elapsed time since the task's previous run", func() {
		var got []time.Duration
		s.Every("t", func(_ time.Time, d time.Duration) bool { got = append(got, d); return true })
		s.Tick(base)
		s.Tick(base.Add(16 * time.Millisecond))
		s.Tick(base.Add(50 * time.Millisecond))
		Expect(got).To(Equal([]time.Duration{0, 16 * time.Millisecond, 34 * time.Millisecond}))
	})

	It("treats a nil handle as inactive", func() {
		var h *sim.Handle
		Expect(h.Active()).To(BeFalse())
		h.Cancel()
	})

	It("runs until the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		s.Every("stop", func(time.Time, time.Duration) bool {
			cancel()
			close(done)
			return false
		})
		err := s.Run(ctx, time.Millisecond)
		Expect(err).To(MatchError(context.Canceled))
		Eventually(done).Should(BeClosed())
	})
})
