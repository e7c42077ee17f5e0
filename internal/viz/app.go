package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/worksim/internal/config"
	"github.com/san-kum/worksim/internal/scene"
	"github.com/san-kum/worksim/internal/sim"
	"github.com/san-kum/worksim/internal/sweep"
	"go.uber.org/zap"
)

const (
	defaultCols = 60
	defaultRows = 16
	panelWidth  = 44
)

type TickMsg time.Time

type control int

const (
	ctrlForce control = iota
	ctrlAngle
	ctrlDistance
	numControls
)

var controlNames = [numControls]string{"Force", "Angle", "Distance"}

const infoText = `Work is the energy transferred by a force
acting along a displacement:

    W = F · d · cos(θ)

Only the component of the force along the
motion (Fx = F·cos θ) does work. At 90° the
force is perpendicular and W = 0; beyond 90°
the force opposes the motion and W < 0.`

// frame is the redraw target; the animator's redraw loop writes into it.
type frame struct {
	canvas *Canvas
	rng    *rand.Rand
	snap   sim.Snapshot
	drawn  uint64
}

func (f *frame) Render(s sim.Snapshot) {
	sc := scene.Build(s, float64(f.canvas.SubWidth()), float64(f.canvas.SubHeight()), f.rng)
	DrawScene(f.canvas, sc)
	f.snap = s
	f.drawn++
}

// Model is the bubbletea model for the interactive demonstration.
type Model struct {
	cfg      *config.Config
	anim     *sim.Animator
	frame    *frame
	log      *zap.Logger
	interval time.Duration

	selected      control
	presets       []string
	preset        int
	width, height int
}

func NewModel(cfg *config.Config, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	SetTheme(cfg.Theme)
	f := &frame{
		canvas: NewCanvas(defaultCols, defaultRows),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	anim := sim.NewAnimator(cfg.Params(), cfg.NewStepper(), sim.NewScheduler(),
		sim.WithRenderer(f), sim.WithLogger(log.Named("animator")))
	f.Render(anim.Snapshot())
	return Model{
		cfg:      cfg,
		anim:     anim,
		frame:    f,
		log:      log,
		interval: cfg.FrameInterval(),
		presets:  config.ListPresets(),
		preset:   -1,
		width:    defaultCols + panelWidth + 4,
		height:   defaultRows + 8,
	}
}

func (m Model) Animator() *sim.Animator { return m.anim }

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		m.anim.Scheduler().Tick(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.anim.Close()
		return m, tea.Quit
	case "tab", "down", "j":
		m.selected = (m.selected + 1) % numControls
	case "shift+tab", "up", "k":
		m.selected = (m.selected + numControls - 1) % numControls
	case "right", "l":
		m.nudge(1)
	case "left", "h":
		m.nudge(-1)
	case "L", "shift+right":
		m.nudge(10)
	case "H", "shift+left":
		m.nudge(-10)
	case " ", "enter", "s":
		m.anim.Toggle()
	case "r":
		m.anim.Reset()
	case "i", "?":
		m.anim.ToggleInfo()
	case "t":
		t := NextTheme()
		m.log.Debug("theme changed", zap.String("theme", t.Name))
	case "p":
		if len(m.presets) > 0 {
			m.preset = (m.preset + 1) % len(m.presets)
			name := m.presets[m.preset]
			m.anim.SetParams(config.Presets[name])
			m.log.Info("preset applied", zap.String("preset", name))
		}
	}
	m.frame.Render(m.anim.Snapshot())
	return m, nil
}

func (m *Model) rangeFor(c control) config.Range {
	switch c {
	case ctrlAngle:
		return m.cfg.Limits.Angle
	case ctrlDistance:
		return m.cfg.Limits.Distance
	default:
		return m.cfg.Limits.Force
	}
}

func (m *Model) value(c control) float64 {
	p := m.anim.Params()
	switch c {
	case ctrlAngle:
		return p.Angle
	case ctrlDistance:
		return p.Distance
	default:
		return p.Force
	}
}

func (m *Model) nudge(steps int) {
	v := m.rangeFor(m.selected).Nudge(m.value(m.selected), steps)
	switch m.selected {
	case ctrlAngle:
		m.anim.SetAngle(v)
	case ctrlDistance:
		m.anim.SetDistance(v)
	default:
		m.anim.SetForce(v)
	}
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	cols := w - panelWidth - 6
	if cols < 30 {
		cols = 30
	}
	rows := h - 6
	if rows < 10 {
		rows = 10
	}
	if cols != m.frame.canvas.Width || rows != m.frame.canvas.Height {
		m.frame.canvas = NewCanvas(cols, rows)
		m.frame.Render(m.anim.Snapshot())
	}
}

// ButtonLabel is the start/pause control's caption for a phase.
func ButtonLabel(p sim.Phase) string {
	if p == sim.Running {
		return "⏸ Pause"
	}
	return "▶ Start"
}

func (m Model) View() string {
	t := CurrentTheme
	snap := m.anim.Snapshot()

	title := GradientText("WORK = F · d · cos θ", t.Primary, t.Accent)
	stage := panelStyle.BorderForeground(t.Ground).Render(m.frame.canvas.Render(t.InkStyles()))

	side := statsStyle.Render(m.viewPanel(snap))
	body := lipgloss.JoinHorizontal(lipgloss.Top, stage, side)

	var b strings.Builder
	b.WriteString("\n  " + title + "\n")
	b.WriteString(body + "\n")
	if snap.InfoVisible {
		b.WriteString(panelStyle.BorderForeground(t.Accent).Foreground(t.Text).Render(infoText) + "\n")
	}
	b.WriteString("  " + keyHints("j/k", "select", "h/l", "adjust", "space", "start/pause", "r", "reset", "i", "info", "p", "preset", "t", "theme", "q", "quit") + "\n")
	return b.String()
}

func (m Model) viewPanel(snap sim.Snapshot) string {
	t := CurrentTheme
	var s strings.Builder

	values := [numControls]string{
		fmt.Sprintf("%g N", snap.Force),
		fmt.Sprintf("%g°", snap.Angle),
		fmt.Sprintf("%g m", snap.Distance),
	}
	colors := [numControls]lipgloss.Color{t.Force, t.Arc, t.Displacement}
	for c := control(0); c < numControls; c++ {
		r := m.rangeFor(c)
		frac := 0.0
		if r.Max > r.Min {
			frac = (m.value(c) - r.Min) / (r.Max - r.Min)
		}
		name := labelStyle.Render(controlNames[c])
		if c == m.selected {
			name = labelStyle.Foreground(t.Text).Bold(true).Render("▸ " + controlNames[c])
		}
		s.WriteString(name + valueStyle.Render(values[c]) + "\n")
		s.WriteString(SliderBar(frac, panelWidth-8, c == m.selected, colors[c]) + "\n")
	}

	s.WriteString("\n" + Separator(panelWidth-6) + "\n\n")

	workStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Text)
	switch snap.Result.Sign(0.005) {
	case 1:
		workStyle = workStyle.Foreground(t.Positive)
	case -1:
		workStyle = workStyle.Foreground(t.Negative)
	}
	s.WriteString(labelStyle.Render("Work") + workStyle.Render(snap.Result.WorkString()) + "\n")
	s.WriteString(labelStyle.Render("") + valueStyle.Render(snap.Result.FxString()) + "\n")
	s.WriteString(labelStyle.Render("") + valueStyle.Render(snap.Result.FyString()) + "\n\n")

	var status string
	switch snap.Phase {
	case sim.Running:
		status = statusRunning.Render("RUNNING")
	case sim.Finished:
		status = statusDone.Render("DONE")
	default:
		status = statusPaused.Render("IDLE")
	}
	s.WriteString(labelStyle.Render("Status") + status + "  " + keyStyle.Render("["+ButtonLabel(snap.Phase)+"]") + "\n")
	s.WriteString(labelStyle.Render("Progress") + ProgressBar(snap.Progress, 20, t.Displacement) +
		valueStyle.Render(fmt.Sprintf(" %3.0f%%", snap.Progress*100)) + "\n")
	s.WriteString(labelStyle.Render("Travelled") + valueStyle.Render(fmt.Sprintf("%.2f m", snap.Travelled())) + "\n\n")

	rows := sweep.Run(snap.Force, snap.Distance, sweep.DefaultOptions())
	caption := "W(θ) -180°..180°"
	if i := sweep.Nearest(rows, snap.Angle); i >= 0 {
		caption = fmt.Sprintf("W(θ) -180°..180°, ▲ %g° ≈ %.0f J", rows[i].Angle, rows[i].Work)
	}
	s.WriteString(lipgloss.NewStyle().Foreground(t.Muted).Render(sweep.Plot(rows, panelWidth-14, 5, caption)) + "\n")

	return s.String()
}

// Run starts the interactive terminal program.
func Run(cfg *config.Config, log *zap.Logger) error {
	_, err := tea.NewProgram(NewModel(cfg, log), tea.WithAltScreen()).Run()
	return err
}
