package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/worksim/internal/scene"
	"github.com/san-kum/worksim/internal/sim"
)

var (
	colBgTop    = rl.NewColor(15, 23, 42, 255)
	colBgBottom = rl.NewColor(30, 41, 59, 255)
	colGround   = rl.NewColor(71, 85, 105, 255)
	colHatch    = rl.NewColor(51, 65, 85, 255)
	colBox      = rl.NewColor(59, 130, 246, 255)
	colBoxEdge  = rl.NewColor(96, 165, 250, 255)
	colBoxInner = rl.NewColor(30, 64, 175, 255)
	colForce    = rl.NewColor(239, 68, 68, 255)
	colDisp     = rl.NewColor(16, 185, 129, 255)
	colArc      = rl.NewColor(251, 191, 36, 255)
)

func v2(p scene.Point) rl.Vector2 { return rl.NewVector2(float32(p.X), float32(p.Y)) }

// Render draws one frame of the scene; it runs inside BeginDrawing/EndDrawing.
func (a *App) Render(s sim.Snapshot) {
	sc := scene.Build(s, sceneWidth, sceneHeight, a.rng)

	rl.DrawRectangleGradientV(0, 0, sceneWidth, sceneHeight, colBgTop, colBgBottom)

	rl.DrawLineEx(rl.NewVector2(0, float32(sc.GroundY)), rl.NewVector2(sceneWidth, float32(sc.GroundY)), 2, colGround)
	for _, h := range sc.Hatches {
		rl.DrawLineEx(v2(h.A), v2(h.B), 1, colHatch)
	}

	sh := sc.Shadow
	rl.DrawEllipse(int32(sh.C.X), int32(sh.C.Y), float32(sh.RX), float32(sh.RY), rl.Fade(rl.Black, 0.3))

	box := rl.Rectangle{X: float32(sc.Box.X), Y: float32(sc.Box.Y), Width: float32(sc.Box.W), Height: float32(sc.Box.H)}
	inner := rl.Rectangle{X: float32(sc.Inner.X), Y: float32(sc.Inner.Y), Width: float32(sc.Inner.W), Height: float32(sc.Inner.H)}
	rl.DrawRectangleGradientEx(box, colBox, colBoxInner, colBoxInner, colBox)
	rl.DrawRectangleLinesEx(box, 3, colBoxEdge)
	rl.DrawRectangleRec(inner, colBoxInner)
	rl.DrawRectangleLinesEx(inner, 2, colBoxEdge)

	// glow
	rl.DrawLineEx(v2(sc.Force.A), v2(sc.Force.B), 10, rl.Fade(colForce, 0.25))
	rl.DrawLineEx(v2(sc.Force.A), v2(sc.Force.B), 4, colForce)
	tip, l, r := v2(sc.Arrow[0]), v2(sc.Arrow[1]), v2(sc.Arrow[2])
	rl.DrawTriangle(tip, l, r, colForce)
	rl.DrawTriangle(tip, r, l, colForce)
	drawLabel(sc.ForceLabel, 16, rl.White)

	if d := sc.Displacement; d != nil {
		drawDashed(v2(d.A), v2(d.B), 10, 5, 3, colDisp)
		drawLabel(*sc.DistanceLabel, 16, rl.White)
	}

	if arc := sc.Arc; arc != nil {
		pts := arc.Points(32)
		for i := 1; i < len(pts); i++ {
			rl.DrawLineEx(v2(pts[i-1]), v2(pts[i]), 2, colArc)
		}
		drawLabel(*sc.AngleLabel, 14, colArc)
	}

	for _, p := range sc.Particles {
		rl.DrawCircleV(v2(p.C), float32(p.R), rl.Fade(colArc, float32(p.Alpha)))
	}
}

func drawLabel(l scene.Label, size int32, col rl.Color) {
	rl.DrawText(l.Text, int32(l.At.X)+1, int32(l.At.Y)-int32(size)+1, size, rl.Fade(rl.Black, 0.8))
	rl.DrawText(l.Text, int32(l.At.X), int32(l.At.Y)-int32(size), size, col)
}

func drawDashed(a, b rl.Vector2, on, off, thick float32, col rl.Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	for t := float32(0); t < length; t += on + off {
		e := t + on
		if e > length {
			e = length
		}
		rl.DrawLineEx(rl.NewVector2(a.X+ux*t, a.Y+uy*t), rl.NewVector2(a.X+ux*e, a.Y+uy*e), thick, col)
	}
}
