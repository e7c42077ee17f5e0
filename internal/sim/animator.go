package sim

import (
	"time"

	"github.com/san-kum/worksim/internal/work"
	"go.uber.org/zap"
)

const (
	redrawTask  = "redraw"
	animateTask = "animate"
)

// Animator owns the simulation state and schedules the redraw and animation loops.
type Animator struct {
	params  Params
	stepper *Stepper
	sched   *Scheduler
	render  Renderer
	log     *zap.Logger

	info    bool
	redraw  *Handle
	animate *Handle
}

type Option func(*Animator)

func WithLogger(l *zap.Logger) Option {
	return func(a *Animator) { a.log = l }
}

func WithRenderer(r Renderer) Option {
	return func(a *Animator) { a.render = r }
}

// NewAnimator registers the unconditional redraw loop on sched.
func NewAnimator(p Params, stepper *Stepper, sched *Scheduler, opts ...Option) *Animator {
	if stepper == nil {
		stepper = NewStepper(PaceFrame, DefaultIncrement, DefaultDuration)
	}
	if sched == nil {
		sched = NewScheduler()
	}
	a := &Animator{
		params:  p,
		stepper: stepper,
		sched:   sched,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.redraw = sched.Every(redrawTask, func(time.Time, time.Duration) bool {
		if a.render != nil {
			a.render.Render(a.Snapshot())
		}
		return true
	})
	return a
}

func (a *Animator) Scheduler() *Scheduler { return a.sched }
func (a *Animator) Params() Params        { return a.params }
func (a *Animator) Result() work.Result   { return a.params.Result() }
func (a *Animator) Phase() Phase          { return a.stepper.Phase() }

func (a *Animator) SetForce(f float64) work.Result {
	a.params.Force = f
	return a.changed("force", f)
}

func (a *Animator) SetAngle(deg float64) work.Result {
	a.params.Angle = deg
	return a.changed("angle", deg)
}

func (a *Animator) SetDistance(d float64) work.Result {
	a.params.Distance = d
	return a.changed("distance", d)
}

// SetParams replaces all inputs at once.
func (a *Animator) SetParams(p Params) work.Result {
	a.params = p
	r := p.Result()
	a.log.Debug("params replaced",
		zap.Float64("force", p.Force), zap.Float64("angle", p.Angle), zap.Float64("distance", p.Distance),
		zap.Float64("work", r.Work))
	return r
}

func (a *Animator) changed(name string, v float64) work.Result {
	r := a.params.Result()
	a.log.Debug("param changed", zap.String("param", name), zap.Float64("value", v),
		zap.Float64("work", r.Work), zap.Float64("fx", r.Fx), zap.Float64("fy", r.Fy))
	return r
}

// Toggle starts the animation from zero, or pauses it if running.
func (a *Animator) Toggle() Phase {
	if a.stepper.Toggle() {
		a.startLoop()
		a.log.Info("animation started")
	} else {
		a.stopLoop()
		a.log.Info("animation paused", zap.Float64("progress", a.stepper.Progress()))
	}
	return a.stepper.Phase()
}

func (a *Animator) Start() {
	a.stepper.Start()
	a.startLoop()
	a.log.Info("animation started")
}

func (a *Animator) Pause() {
	a.stepper.Pause()
	a.stopLoop()
}

func (a *Animator) Reset() {
	a.stepper.Reset()
	a.stopLoop()
	a.log.Info("animation reset")
}

func (a *Animator) ToggleInfo() bool {
	a.info = !a.info
	return a.info
}

func (a *Animator) startLoop() {
	a.stopLoop()
	a.animate = a.sched.Every(animateTask, func(_ time.Time, elapsed time.Duration) bool {
		more := a.stepper.Step(elapsed)
		if !more && a.stepper.Phase() == Finished {
			a.log.Info("animation finished", zap.Float64("distance", a.params.Distance))
		}
		return more
	})
}

func (a *Animator) stopLoop() {
	if a.animate != nil {
		a.animate.Cancel()
		a.animate = nil
	}
}

// Animating reports whether the step loop is scheduled.
func (a *Animator) Animating() bool {
	return a.stepper.Running() && a.animate.Active()
}

// Snapshot copies the current state with freshly derived values.
func (a *Animator) Snapshot() Snapshot {
	return Snapshot{
		State: State{
			Params:    a.params,
			Progress:  a.stepper.Progress(),
			Animating: a.stepper.Running(),
		},
		Result:      a.params.Result(),
		Phase:       a.stepper.Phase(),
		InfoVisible: a.info,
		Tick:        a.sched.Ticks(),
	}
}

// Close cancels both loops.
func (a *Animator) Close() {
	a.stopLoop()
	a.redraw.Cancel()
}
