package sim

import "time"

// Phase of the displacement animation.
type Phase int

const (
	Idle Phase = iota
	Running
	Finished
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "idle"
	}
}

// Pacing selects how progress advances on each step.
type Pacing string

const (
	// PaceFrame adds a fixed increment per step, so speed follows the refresh rate.
	PaceFrame Pacing = "frame"
	// PaceTime adds elapsed/Duration per step, independent of the refresh rate.
	PaceTime Pacing = "time"
)

const (
	DefaultIncrement = 0.01
	DefaultDuration  = 100 * time.Second / 60
)

// Stepper is a saturating progress counter in [0,1].
type Stepper struct {
	Increment float64
	Duration  time.Duration
	Pacing    Pacing

	progress float64
	phase    Phase
}

func NewStepper(pacing Pacing, increment float64, duration time.Duration) *Stepper {
	if increment <= 0 {
		increment = DefaultIncrement
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	if pacing != PaceTime {
		pacing = PaceFrame
	}
	return &Stepper{Increment: increment, Duration: duration, Pacing: pacing}
}

func (s *Stepper) Progress() float64 { return s.progress }
func (s *Stepper) Phase() Phase      { return s.phase }
func (s *Stepper) Running() bool     { return s.phase == Running }

// Start restarts the animation from zero.
func (s *Stepper) Start() {
	s.progress = 0
	s.phase = Running
}

// Pause stops a running animation and keeps its progress.
func (s *Stepper) Pause() {
	if s.phase == Running {
		s.phase = Idle
	}
}

// Toggle pauses a running animation, otherwise starts a new one.
// It reports whether the stepper is running afterwards.
func (s *Stepper) Toggle() bool {
	if s.phase == Running {
		s.Pause()
		return false
	}
	s.Start()
	return true
}

func (s *Stepper) Reset() {
	s.progress = 0
	s.phase = Idle
}

// Step advances progress once and reports whether another step should be scheduled.
// elapsed is only used with PaceTime.
func (s *Stepper) Step(elapsed time.Duration) bool {
	if s.phase != Running {
		return false
	}
	inc := s.Increment
	if s.Pacing == PaceTime {
		inc = float64(elapsed) / float64(s.Duration)
	}
	if inc < 0 {
		inc = 0
	}
	s.progress += inc
	if s.progress >= 1 {
		s.progress = 1
		s.phase = Finished
		return false
	}
	return true
}
