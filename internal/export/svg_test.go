package export

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/san-kum/worksim/internal/scene"
	"github.com/san-kum/worksim/internal/sim"
	"github.com/san-kum/worksim/internal/viz"
)

func build(angle, progress float64, animating bool) scene.Scene {
	p := sim.Params{Force: 50, Angle: angle, Distance: 5}
	snap := sim.Snapshot{State: sim.State{Params: p, Progress: progress, Animating: animating}, Result: p.Result()}
	return scene.Build(snap, scene.ReferenceWidth, scene.ReferenceHeight, rand.New(rand.NewSource(7)))
}

func TestSceneToSVG(t *testing.T) {
	out := SceneToSVG(build(30, 0.5, true), DefaultPalette)

	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatal("expected a complete svg document")
	}
	for _, want := range []string{
		`width="800" height="400"`,
		"F = 50 N",
		"d = 2.50 m",
		"30°",
		"stroke-dasharray",
		"<polygon",
		"<polyline",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if n := strings.Count(out, "rgba(251,191,36"); n != 5 {
		t.Errorf("expected 5 particles, got %d", n)
	}
}

func TestSceneToSVGStillFrameParticles(t *testing.T) {
	p := sim.Params{Force: 50, Angle: 30, Distance: 5}
	rng := rand.New(rand.NewSource(3))
	draw := func(progress float64) string {
		sc := scene.Build(sim.StillFrame(p, progress), scene.ReferenceWidth, scene.ReferenceHeight, rng)
		return SceneToSVG(sc, DefaultPalette)
	}
	if n := strings.Count(draw(0.5), "rgba(251,191,36"); n != 5 {
		t.Errorf("mid-way frame should carry 5 particles, got %d", n)
	}
	for _, progress := range []float64{0, 1} {
		if strings.Contains(draw(progress), "rgba(251,191,36") {
			t.Errorf("no particles at progress %v", progress)
		}
	}
}

func TestSceneToSVGAtRest(t *testing.T) {
	out := SceneToSVG(build(0, 0, false), DefaultPalette)
	if strings.Contains(out, "stroke-dasharray") {
		t.Error("no displacement before the block moves")
	}
	if strings.Contains(out, "<polyline") {
		t.Error("no arc at zero angle")
	}
}

func TestEscape(t *testing.T) {
	if got := escape("a<b & c>d"); got != "a&lt;b &amp; c&gt;d" {
		t.Errorf("unexpected escape %q", got)
	}
}

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 1, nil) != "" {
		t.Error("nil canvas should export nothing")
	}
	c := viz.NewCanvas(4, 2)
	c.Pen = viz.InkForce
	c.Set(0, 0)
	c.Pen = viz.InkBox
	c.Set(7, 7)
	c.Pen = viz.InkLabel
	c.PutText(0, 4, "Hi")
	out := CanvasToSVG(c, 2, map[viz.Ink]string{viz.InkForce: "#ff0000", viz.InkBox: "#0000ff", viz.InkLabel: "#ffffff"})
	if n := strings.Count(out, "<circle"); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
	if !strings.Contains(out, `width="16" height="16"`) {
		t.Error("unexpected dimensions")
	}
	for _, want := range []string{`fill="#ff0000"`, `fill="#0000ff"`, `fill="#ffffff"`, ">Hi</text>"} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestCanvasToSVGKeepsSceneLabels(t *testing.T) {
	c := viz.NewCanvas(60, 16)
	snap := build(30, 0.5, false).Snapshot
	viz.DrawScene(c, scene.Build(snap, float64(c.SubWidth()), float64(c.SubHeight()), nil))

	fills := viz.ThemeSlate.InkColors()
	out := CanvasToSVG(c, 4, fills)
	for _, want := range []string{"F = 50 N", "30°", "d = 2.50 m", "<text"} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	for _, ink := range []viz.Ink{viz.InkGround, viz.InkBox, viz.InkForce, viz.InkDisplacement, viz.InkArc} {
		if !strings.Contains(out, `fill="`+fills[ink]+`"`) {
			t.Errorf("no dots drawn in the colour of ink %d", ink)
		}
	}
}
