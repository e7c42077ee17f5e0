package metrics

import (
	"time"

	"github.com/san-kum/worksim/internal/sim"
)

// FrameRate is the mean observed frames per second. The first frame has
// no predecessor and is not counted.
type FrameRate struct {
	name    string
	total   time.Duration
	samples int
}

func NewFrameRate() *FrameRate {
	return &FrameRate{name: "fps"}
}

func (f *FrameRate) Name() string { return f.name }

func (f *FrameRate) Observe(s sim.Snapshot, elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	f.total += elapsed
	f.samples++
}

func (f *FrameRate) Value() float64 {
	if f.total <= 0 {
		return 0
	}
	return float64(f.samples) / f.total.Seconds()
}

func (f *FrameRate) Reset() {
	f.total = 0
	f.samples = 0
}

// Smoothness is the fraction of frames whose progress advanced no more
// than threshold over the previous frame.
type Smoothness struct {
	name       string
	threshold  float64
	last       float64
	violations int
	samples    int
}

func NewSmoothness(threshold float64) *Smoothness {
	return &Smoothness{
		name:      "smoothness",
		threshold: threshold,
	}
}

func (s *Smoothness) Name() string {
	return s.name
}

func (s *Smoothness) Observe(snap sim.Snapshot, elapsed time.Duration) {
	if s.samples > 0 && snap.Progress-s.last > s.threshold {
		s.violations++
	}
	s.last = snap.Progress
	s.samples++
}

func (s *Smoothness) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Smoothness) Reset() {
	s.last = 0
	s.violations = 0
	s.samples = 0
}
