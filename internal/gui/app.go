package gui

import (
	"fmt"
	"math/rand"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/worksim/internal/config"
	"github.com/san-kum/worksim/internal/sim"
	"go.uber.org/zap"
)

const (
	windowWidth  = 1100
	windowHeight = 520
	sceneWidth   = 800
	sceneHeight  = 400
	panelX       = sceneWidth + 20
	panelWidth   = windowWidth - panelX - 20
)

var (
	ColBg      = rl.NewColor(15, 23, 42, 255)
	ColPanel   = rl.NewColor(30, 41, 59, 255)
	ColText    = rl.NewColor(226, 232, 240, 255)
	ColTextDim = rl.NewColor(100, 116, 139, 255)
	ColPos     = rl.NewColor(16, 185, 129, 255)
	ColNeg     = rl.NewColor(239, 68, 68, 255)
)

const infoText = "W = F * d * cos(theta)\n\n" +
	"Only the force component along the\n" +
	"motion does work. At 90 deg the force\n" +
	"is perpendicular and W = 0; past 90 deg\n" +
	"it opposes the motion and W < 0."

// App is the raylib window frontend.
type App struct {
	cfg  *config.Config
	anim *sim.Animator
	log  *zap.Logger
	rng  *rand.Rand
}

func NewApp(cfg *config.Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		cfg: cfg,
		log: log,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	a.anim = sim.NewAnimator(cfg.Params(), cfg.NewStepper(), sim.NewScheduler(),
		sim.WithRenderer(a), sim.WithLogger(log.Named("animator")))
	return a
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, log *zap.Logger) error {
	rl.InitWindow(windowWidth, windowHeight, "worksim")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Animation.FPS))

	app := NewApp(cfg, log)
	defer app.anim.Close()
	app.log.Info("window opened", zap.Int("fps", cfg.Animation.FPS))

	for !rl.WindowShouldClose() {
		app.handleKeys()

		rl.BeginDrawing()
		rl.ClearBackground(ColBg)
		// the animator's redraw task draws the scene
		app.anim.Scheduler().Tick(time.Now())
		app.drawPanel()
		rl.EndDrawing()
	}
	return nil
}

func (a *App) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.anim.Toggle()
	case rl.IsKeyPressed(rl.KeyR):
		a.anim.Reset()
	case rl.IsKeyPressed(rl.KeyI):
		a.anim.ToggleInfo()
	}
}

func (a *App) slider(y float32, label, unit string, r config.Range, v float64) float64 {
	rl.DrawText(label, int32(panelX), int32(y), 16, ColTextDim)
	rl.DrawText(fmt.Sprintf("%g %s", v, unit), int32(panelX+panelWidth-70), int32(y), 16, ColText)
	nv := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: y + 20, Width: panelWidth - 50, Height: 18},
		fmt.Sprintf("%g", r.Min), fmt.Sprintf("%g", r.Max),
		float32(v), float32(r.Min), float32(r.Max),
	)
	return r.Clamp(float64(nv))
}

func (a *App) drawPanel() {
	rl.DrawRectangle(sceneWidth+10, 0, windowWidth-sceneWidth-10, windowHeight, ColPanel)

	p := a.anim.Params()
	y := float32(20)
	rl.DrawText("Work = F x d x cos(theta)", int32(panelX), int32(y), 18, ColText)
	y += 40

	if v := a.slider(y, "Force", "N", a.cfg.Limits.Force, p.Force); v != p.Force {
		a.anim.SetForce(v)
	}
	y += 55
	if v := a.slider(y, "Angle", "deg", a.cfg.Limits.Angle, p.Angle); v != p.Angle {
		a.anim.SetAngle(v)
	}
	y += 55
	if v := a.slider(y, "Distance", "m", a.cfg.Limits.Distance, p.Distance); v != p.Distance {
		a.anim.SetDistance(v)
	}
	y += 60

	snap := a.anim.Snapshot()
	col := ColText
	switch snap.Result.Sign(0.005) {
	case 1:
		col = ColPos
	case -1:
		col = ColNeg
	}
	rl.DrawText(snap.Result.WorkString(), int32(panelX), int32(y), 28, col)
	y += 36
	rl.DrawText(snap.Result.FxString(), int32(panelX), int32(y), 16, ColText)
	y += 22
	rl.DrawText(snap.Result.FyString(), int32(panelX), int32(y), 16, ColText)
	y += 36

	label := "Start"
	if snap.Phase == sim.Running {
		label = "Pause"
	}
	if gui.Button(rl.Rectangle{X: panelX, Y: y, Width: 80, Height: 30}, label) {
		a.anim.Toggle()
	}
	if gui.Button(rl.Rectangle{X: panelX + 90, Y: y, Width: 80, Height: 30}, "Reset") {
		a.anim.Reset()
	}
	if gui.Button(rl.Rectangle{X: panelX + 180, Y: y, Width: 70, Height: 30}, "Info") {
		a.anim.ToggleInfo()
	}

	if snap.InfoVisible {
		rl.DrawRectangle(20, 20, 380, 130, rl.Fade(ColPanel, 0.9))
		rl.DrawText(infoText, 30, 30, 16, ColText)
	}
}
