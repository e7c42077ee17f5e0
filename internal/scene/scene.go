package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/worksim/internal/sim"
	"github.com/san-kum/worksim/internal/work"
)

// Reference layout in pixels; everything scales with Width/ReferenceWidth.
const (
	ReferenceWidth  = 800.0
	ReferenceHeight = 400.0

	boxSize       = 80.0
	startX        = 100.0
	groundOffset  = 100.0
	pxPerMeter    = 50.0
	forceScale    = 2.0
	arrowSize     = 15.0
	arcRadius     = 40.0
	hatchSpacing  = 40.0
	hatchLength   = 20.0
	particleCount = 5
)

type Point struct{ X, Y float64 }

type Segment struct{ A, B Point }

type Rect struct{ X, Y, W, H float64 }

func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

type Ellipse struct {
	C      Point
	RX, RY float64
}

type Label struct {
	Text string
	At   Point
}

// Arc sweeps from the positive x axis to Angle (radians, counter-clockwise on screen).
type Arc struct {
	C      Point
	Radius float64
	Angle  float64
}

// Points samples the arc with n+1 points in screen coordinates.
func (a Arc) Points(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		t := a.Angle * float64(i) / float64(n)
		pts[i] = Point{a.C.X + a.Radius*math.Cos(t), a.C.Y - a.Radius*math.Sin(t)}
	}
	return pts
}

type Particle struct {
	C     Point
	R     float64
	Alpha float64
}

// Scene is the geometry of one frame in screen coordinates (y grows downward).
type Scene struct {
	Width, Height float64
	Scale         float64

	GroundY float64
	Hatches []Segment

	Shadow Ellipse
	Box    Rect
	Inner  Rect

	Force      Segment
	Arrow      [3]Point
	ForceLabel Label

	Displacement  *Segment
	DistanceLabel *Label

	Arc        *Arc
	AngleLabel *Label

	Particles []Particle

	Snapshot sim.Snapshot
}

// Build lays out a frame of the given size. rng may be nil when particles are not needed.
func Build(snap sim.Snapshot, width, height float64, rng *rand.Rand) Scene {
	s := width / ReferenceWidth
	sc := Scene{Width: width, Height: height, Scale: s, Snapshot: snap}

	sc.GroundY = height - groundOffset*s
	for x := 0.0; x < width; x += hatchSpacing * s {
		sc.Hatches = append(sc.Hatches, Segment{
			A: Point{x, sc.GroundY},
			B: Point{x + hatchLength*s, sc.GroundY + hatchLength*s},
		})
	}

	size := boxSize * s
	x0 := startX * s
	boxY := sc.GroundY - size
	x := x0 + snap.Progress*snap.Distance*pxPerMeter*s

	sc.Box = Rect{x, boxY, size, size}
	sc.Inner = Rect{x + 10*s, boxY + 10*s, size - 20*s, size - 20*s}
	sc.Shadow = Ellipse{C: Point{x + size/2, sc.GroundY + 5*s}, RX: size / 2, RY: 10 * s}

	rad := work.Radians(snap.Angle)
	origin := sc.Box.Center()
	end := Point{
		origin.X + snap.Force*math.Cos(rad)*forceScale*s,
		origin.Y - snap.Force*math.Sin(rad)*forceScale*s,
	}
	sc.Force = Segment{origin, end}
	a := arrowSize * s
	sc.Arrow = [3]Point{
		end,
		{end.X - a*math.Cos(rad-math.Pi/6), end.Y + a*math.Sin(rad-math.Pi/6)},
		{end.X - a*math.Cos(rad+math.Pi/6), end.Y + a*math.Sin(rad+math.Pi/6)},
	}
	sc.ForceLabel = Label{fmt.Sprintf("F = %.0f N", snap.Force), Point{end.X + 10*s, end.Y - 10*s}}

	if snap.Progress > 0 {
		start := Point{x0 + size/2, origin.Y}
		sc.Displacement = &Segment{start, origin}
		sc.DistanceLabel = &Label{
			Text: fmt.Sprintf("d = %.2f m", snap.Travelled()),
			At:   Point{(x0+x)/2 + size/2, boxY + size + 30*s},
		}
	}

	if snap.Force > 0 && snap.Angle != 0 {
		sc.Arc = &Arc{C: origin, Radius: arcRadius * s, Angle: rad}
		sc.AngleLabel = &Label{fmt.Sprintf("%g°", snap.Angle), Point{origin.X + 50*s, origin.Y - 5*s}}
	}

	if snap.Animating && snap.Result.Work > 0 && rng != nil {
		sc.Particles = make([]Particle, particleCount)
		for i := range sc.Particles {
			sc.Particles[i] = Particle{
				C: Point{
					origin.X + (rng.Float64()-0.5)*size,
					origin.Y + (rng.Float64()-0.5)*size,
				},
				R:     (rng.Float64()*3 + 2) * s,
				Alpha: rng.Float64(),
			}
		}
	}

	return sc
}
