package tui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/san-kum/worksim/internal/scene"
	"github.com/san-kum/worksim/internal/sim"
)

const (
	width       = 70
	height      = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints plain ASCII frames, throttled to frameRate.
type LiveRenderer struct {
	out       io.Writer
	frameRate int
	clear     bool
	lastFrame time.Time
	now       func() time.Time
	canvas    [][]rune
	frames    int
}

func NewLiveRenderer(out io.Writer, frameRate int, clear bool) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	if frameRate <= 0 {
		frameRate = 30
	}
	return &LiveRenderer{
		out:       out,
		frameRate: frameRate,
		clear:     clear,
		now:       time.Now,
		canvas:    canvas,
	}
}

// Frames returns how many frames have been written.
func (r *LiveRenderer) Frames() int { return r.frames }

func (r *LiveRenderer) Render(s sim.Snapshot) {
	now := r.now()
	if !r.lastFrame.IsZero() && now.Sub(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = now
	r.Draw(s)
}

// Draw writes a frame unconditionally.
func (r *LiveRenderer) Draw(s sim.Snapshot) {
	r.reset()
	r.drawScene(scene.Build(s, width, height, nil))
	r.render(s)
	r.frames++
}

func (r *LiveRenderer) reset() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

func (r *LiveRenderer) text(x, y int, s string) {
	for i, c := range []rune(s) {
		r.set(x+i, y, c)
	}
}

func (r *LiveRenderer) line(x1, y1, x2, y2 int, c rune) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		r.set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func round(v float64) int { return int(math.Round(v)) }

func (r *LiveRenderer) drawScene(sc scene.Scene) {
	gy := round(sc.GroundY)
	for i := 0; i < width; i++ {
		r.set(i, gy, '=')
	}

	b := sc.Box
	x0, y0, x1, y1 := round(b.X), round(b.Y), round(b.X+b.W), round(b.Y+b.H)-1
	for x := x0; x <= x1; x++ {
		r.set(x, y0, '#')
		r.set(x, y1, '#')
	}
	for y := y0; y <= y1; y++ {
		r.set(x0, y, '#')
		r.set(x1, y, '#')
	}

	if d := sc.Displacement; d != nil {
		r.line(round(d.A.X), round(d.A.Y), round(d.B.X), round(d.B.Y), '-')
	}
	if a := sc.Arc; a != nil {
		for _, p := range a.Points(12) {
			r.set(round(p.X), round(p.Y), '.')
		}
	}

	f := sc.Force
	r.line(round(f.A.X), round(f.A.Y), round(f.B.X), round(f.B.Y), forceRune(f))
	r.set(round(f.B.X), round(f.B.Y), '>')
	r.set(round(f.A.X), round(f.A.Y), 'o')

	r.text(round(sc.ForceLabel.At.X), round(sc.ForceLabel.At.Y), sc.ForceLabel.Text)
}

// forceRune picks a line character close to the vector's direction.
func forceRune(f scene.Segment) rune {
	dx, dy := f.B.X-f.A.X, f.A.Y-f.B.Y
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	switch a := math.Abs(math.Mod(deg+360, 180)); {
	case a < 22.5 || a >= 157.5:
		return '-'
	case a < 67.5:
		return '/'
	case a < 112.5:
		return '|'
	default:
		return '\\'
	}
}

func (r *LiveRenderer) render(s sim.Snapshot) {
	var b strings.Builder
	if r.clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(fmt.Sprintf("  F=%gN  θ=%g°  d=%gm  %s\n", s.Force, s.Angle, s.Distance, s.Phase))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	b.WriteString(fmt.Sprintf("  W=%s  %s  %s  progress=%3.0f%%  travelled=%.2fm\n",
		s.Result.WorkString(), s.Result.FxString(), s.Result.FyString(), s.Progress*100, s.Travelled()))

	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
