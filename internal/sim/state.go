package sim

import "github.com/san-kum/worksim/internal/work"

// Params are the user-controlled inputs.
type Params struct {
	Force    float64 `yaml:"force" json:"force"`       // N
	Angle    float64 `yaml:"angle" json:"angle"`       // degrees
	Distance float64 `yaml:"distance" json:"distance"` // m
}

func (p Params) Result() work.Result {
	return work.Compute(p.Force, p.Angle, p.Distance)
}

// State is the full simulation state.
type State struct {
	Params
	Progress  float64
	Animating bool
}

// Snapshot is what renderers receive each tick.
type Snapshot struct {
	State
	Result      work.Result
	Phase       Phase
	InfoVisible bool
	Tick        uint64
}

// StillFrame is the snapshot of p frozen at progress. Between the ends the
// block counts as moving, so renderers draw it mid-animation.
func StillFrame(p Params, progress float64) Snapshot {
	phase := Running
	switch {
	case progress <= 0:
		phase = Idle
	case progress >= 1:
		phase = Finished
	}
	return Snapshot{
		State:  State{Params: p, Progress: progress, Animating: phase == Running},
		Result: p.Result(),
		Phase:  phase,
	}
}

// Travelled is the displacement covered so far, in metres.
func (s Snapshot) Travelled() float64 {
	return s.Progress * s.Distance
}

// Renderer consumes a snapshot once per tick.
type Renderer interface {
	Render(Snapshot)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(Snapshot)

func (f RenderFunc) Render(s Snapshot) { f(s) }
