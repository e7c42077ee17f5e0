package viz

import (
	"math"

	"github.com/san-kum/worksim/internal/scene"
)

func ip(v float64) int { return int(math.Round(v)) }

// DrawScene rasterises sc onto c. sc must be built for c.SubWidth() x c.SubHeight().
func DrawScene(c *Canvas, sc scene.Scene) {
	c.Clear()

	c.Pen = InkGround
	c.DrawLine(0, ip(sc.GroundY), c.SubWidth()-1, ip(sc.GroundY))
	for _, h := range sc.Hatches {
		c.DrawLine(ip(h.A.X), ip(h.A.Y), ip(h.B.X), ip(h.B.Y))
	}

	c.Pen = InkBox
	b := sc.Box
	c.DrawRect(ip(b.X), ip(b.Y), ip(b.W), ip(b.H))
	in := sc.Inner
	if in.W >= 2 && in.H >= 2 {
		c.FillRect(ip(in.X), ip(in.Y), ip(in.W), ip(in.H))
	}

	if d := sc.Displacement; d != nil {
		c.Pen = InkDisplacement
		c.DrawDashed(ip(d.A.X), ip(d.A.Y), ip(d.B.X), ip(d.B.Y), 4, 2)
	}

	if a := sc.Arc; a != nil {
		c.Pen = InkArc
		pts := a.Points(24)
		xs, ys := make([]int, len(pts)), make([]int, len(pts))
		for i, p := range pts {
			xs[i], ys[i] = ip(p.X), ip(p.Y)
		}
		c.DrawPolyline(xs, ys)
	}

	c.Pen = InkForce
	f := sc.Force
	c.DrawLine(ip(f.A.X), ip(f.A.Y), ip(f.B.X), ip(f.B.Y))
	tip := sc.Arrow[0]
	for _, barb := range sc.Arrow[1:] {
		c.DrawLine(ip(tip.X), ip(tip.Y), ip(barb.X), ip(barb.Y))
	}
	c.DrawLine(ip(sc.Arrow[1].X), ip(sc.Arrow[1].Y), ip(sc.Arrow[2].X), ip(sc.Arrow[2].Y))

	c.Pen = InkParticle
	for _, p := range sc.Particles {
		c.DrawCircle(ip(p.C.X), ip(p.C.Y), p.R)
	}

	c.Pen = InkLabel
	c.PutText(ip(sc.ForceLabel.At.X), ip(sc.ForceLabel.At.Y), sc.ForceLabel.Text)
	if l := sc.AngleLabel; l != nil {
		c.Pen = InkArc
		c.PutText(ip(l.At.X), ip(l.At.Y), l.Text)
	}
	if l := sc.DistanceLabel; l != nil {
		c.Pen = InkDisplacement
		c.PutText(ip(l.At.X), ip(l.At.Y), l.Text)
	}
	c.Pen = InkNone
}
