package work

import (
	"fmt"
	"math"
)

// Result holds the quantities derived from a force applied along a displacement.
type Result struct {
	Work float64 // joules
	Fx   float64 // newtons, along the displacement
	Fy   float64 // newtons, perpendicular to it
}

// Compute returns W = F·d·cos(θ) and the force components for an angle in degrees.
// Non-finite inputs propagate to the outputs.
func Compute(force, angleDeg, distance float64) Result {
	rad := Radians(angleDeg)
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Result{
		Work: force * distance * cos,
		Fx:   force * cos,
		Fy:   force * sin,
	}
}

func Radians(deg float64) float64 { return deg * math.Pi / 180 }

func (r Result) WorkString() string { return fmt.Sprintf("%.2f J", r.Work) }
func (r Result) FxString() string   { return fmt.Sprintf("Fx = %.2f N", r.Fx) }
func (r Result) FyString() string   { return fmt.Sprintf("Fy = %.2f N", r.Fy) }

// Sign reports whether the work is positive (+1), negative (-1) or zero within eps.
func (r Result) Sign(eps float64) int {
	switch {
	case r.Work > eps:
		return 1
	case r.Work < -eps:
		return -1
	}
	return 0
}
