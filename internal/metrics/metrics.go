package metrics

import (
	"sort"
	"time"

	"github.com/san-kum/worksim/internal/sim"
)

// Metric accumulates a figure over the frames of one animation.
type Metric interface {
	Name() string
	Observe(s sim.Snapshot, elapsed time.Duration)
	Value() float64
	Reset()
}

type Set []Metric

func (ms Set) Observe(s sim.Snapshot, elapsed time.Duration) {
	for _, m := range ms {
		m.Observe(s, elapsed)
	}
}

func (ms Set) Reset() {
	for _, m := range ms {
		m.Reset()
	}
}

func (ms Set) Values() map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

func (ms Set) Names() []string {
	names := make([]string, 0, len(ms))
	for _, m := range ms {
		names = append(names, m.Name())
	}
	sort.Strings(names)
	return names
}

// Observer returns a scheduler task feeding every tick's snapshot to ms.
// It keeps running until canceled.
func Observer(snapshot func() sim.Snapshot, ms Set) sim.Task {
	return func(now time.Time, elapsed time.Duration) bool {
		ms.Observe(snapshot(), elapsed)
		return true
	}
}
