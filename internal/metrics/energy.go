package metrics

import (
	"math"
	"time"

	"github.com/san-kum/worksim/internal/sim"
)

// WorkDone is the energy transferred so far: W scaled by progress.
type WorkDone struct {
	name    string
	current float64
	samples int
}

func NewWorkDone() *WorkDone {
	return &WorkDone{name: "work_done"}
}

func (w *WorkDone) Name() string { return w.name }

func (w *WorkDone) Observe(s sim.Snapshot, elapsed time.Duration) {
	w.current = s.Result.Work * s.Progress
	w.samples++
}

func (w *WorkDone) Value() float64 { return w.current }

func (w *WorkDone) Reset() {
	w.current = 0
	w.samples = 0
}

// Drift is the largest jump in transferred energy between consecutive
// frames, relative to |W|. Changing a slider mid-animation shows up here.
type Drift struct {
	name     string
	last     float64
	maxDrift float64
	samples  int
}

func NewDrift() *Drift {
	return &Drift{name: "energy_drift"}
}

func (d *Drift) Name() string { return d.name }

func (d *Drift) Observe(s sim.Snapshot, elapsed time.Duration) {
	done := s.Result.Work * s.Progress
	if d.samples > 0 && s.Result.Work != 0 {
		drift := math.Abs(done-d.last) / math.Abs(s.Result.Work)
		d.maxDrift = math.Max(d.maxDrift, drift)
	}
	d.last = done
	d.samples++
}

func (d *Drift) Value() float64 { return d.maxDrift }

func (d *Drift) Reset() {
	d.last = 0
	d.maxDrift = 0
	d.samples = 0
}
