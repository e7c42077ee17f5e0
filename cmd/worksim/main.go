package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/worksim/internal/config"
	"github.com/san-kum/worksim/internal/export"
	"github.com/san-kum/worksim/internal/gui"
	"github.com/san-kum/worksim/internal/logging"
	"github.com/san-kum/worksim/internal/metrics"
	"github.com/san-kum/worksim/internal/scene"
	"github.com/san-kum/worksim/internal/sim"
	"github.com/san-kum/worksim/internal/sweep"
	"github.com/san-kum/worksim/internal/tui"
	"github.com/san-kum/worksim/internal/viz"
	"github.com/san-kum/worksim/internal/work"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	preset     string
	force      float64
	angle      float64
	distance   float64
	pacing     string
	fps        int
	logLevel   string
	logFile    string
	theme      string

	// calc
	asJSON bool

	// run
	plain      bool
	clearFrame bool

	// sweep
	sweepFrom   float64
	sweepTo     float64
	sweepPoints int
	format      string
	plot        bool

	// svg
	progress   float64
	output     string
	fromCanvas bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "worksim",
		Short:         "interactive demonstration of mechanical work, W = F·d·cos θ",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Float64Var(&force, "force", config.DefaultForce, "applied force (N)")
	pf.Float64Var(&angle, "angle", config.DefaultAngle, "force angle (degrees)")
	pf.Float64Var(&distance, "distance", config.DefaultDistance, "displacement (m)")
	pf.StringVar(&pacing, "pacing", string(sim.PaceFrame), "animation pacing: frame or time")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	pf.StringVar(&logLevel, "log-level", "info", "log level")
	pf.StringVar(&logFile, "log-file", "", "write structured logs to this file")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal demonstration",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "interactive window demonstration",
		RunE:  runGUI,
	}

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "print work and force components",
		RunE:  runCalc,
	}
	calcCmd.Flags().BoolVar(&asJSON, "json", false, "print as json")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "play the animation once in the terminal",
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVar(&plain, "plain", false, "print only the final result")
	runCmd.Flags().BoolVar(&clearFrame, "clear", true, "clear the screen between frames")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "tabulate work across a range of angles",
		RunE:  runSweep,
	}
	def := sweep.DefaultOptions()
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", def.From, "first angle (degrees)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", def.To, "last angle (degrees)")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", def.Points, "number of angles")
	sweepCmd.Flags().StringVar(&format, "format", "table", "output format: table, csv or json")
	sweepCmd.Flags().BoolVar(&plot, "plot", false, "draw W(θ) after the table")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "export the scene as svg",
		RunE:  runSVG,
	}
	svgCmd.Flags().Float64Var(&progress, "progress", 0, "animation progress to draw, 0..1")
	svgCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	svgCmd.Flags().BoolVar(&fromCanvas, "braille", false, "export the terminal braille canvas instead")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-14s F=%-4g θ=%-5g d=%-4g %s\n", name, p.Force, p.Angle, p.Distance, config.PresetInfo(name))
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, calcCmd, runCmd, sweepCmd, svgCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig layers preset, then config file, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("force") {
		cfg.Force = force
	}
	if flags.Changed("angle") {
		cfg.Angle = angle
	}
	if flags.Changed("distance") {
		cfg.Distance = distance
	}
	if flags.Changed("pacing") {
		cfg.Animation.Pacing = pacing
	}
	if flags.Changed("fps") {
		cfg.Animation.FPS = fps
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setup loads the configuration and a logger. Interactive frontends log to
// the configured file only; the batch commands log to stderr.
func setup(cmd *cobra.Command, interactive bool) (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	var log *zap.Logger
	if interactive || cfg.Log.File != "" {
		log, err = logging.New(cfg.Log.Level, cfg.Log.File)
	} else {
		log, err = logging.Console(cfg.Log.Level)
	}
	if err != nil {
		return nil, nil, err
	}
	log.Debug("configuration loaded",
		zap.Float64("force", cfg.Force),
		zap.Float64("angle", cfg.Angle),
		zap.Float64("distance", cfg.Distance),
		zap.String("pacing", cfg.Animation.Pacing),
	)
	return cfg, log, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer log.Sync()
	return viz.Run(cfg, log)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer log.Sync()
	return gui.Run(cfg, log)
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	path := "worksim.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	log.Info("config written", zap.String("path", path))
	return nil
}

type calcOutput struct {
	Force    float64 `json:"force"`
	Angle    float64 `json:"angle"`
	Distance float64 `json:"distance"`
	Work     float64 `json:"work"`
	Fx       float64 `json:"fx"`
	Fy       float64 `json:"fy"`
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	res := work.Compute(cfg.Force, cfg.Angle, cfg.Distance)
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(calcOutput{
			Force: cfg.Force, Angle: cfg.Angle, Distance: cfg.Distance,
			Work: res.Work, Fx: res.Fx, Fy: res.Fy,
		})
	}
	fmt.Printf("F = %g N  θ = %g°  d = %g m\n", cfg.Force, cfg.Angle, cfg.Distance)
	fmt.Printf("W = %s\n%s\n%s\n", res.WorkString(), res.FxString(), res.FyString())
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	log = log.With(zap.String("run", uuid.NewString()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var out io.Writer = os.Stdout
	if plain {
		out = io.Discard
	}
	live := tui.NewLiveRenderer(out, cfg.Animation.FPS, clearFrame)
	anim := sim.NewAnimator(cfg.Params(), cfg.NewStepper(), sim.NewScheduler(),
		sim.WithRenderer(live), sim.WithLogger(log.Named("animator")))
	defer anim.Close()

	stats := metrics.Set{
		metrics.NewWorkDone(),
		metrics.NewDrift(),
		metrics.NewFrameRate(),
		metrics.NewSmoothness(2 * cfg.Animation.Increment),
	}
	anim.Scheduler().Every("metrics", metrics.Observer(anim.Snapshot, stats))
	anim.Scheduler().Every("watch", func(now time.Time, elapsed time.Duration) bool {
		if anim.Phase() == sim.Finished {
			cancel()
			return false
		}
		return true
	})

	live.Start()
	anim.Start()
	start := time.Now()
	err = anim.Scheduler().Run(ctx, cfg.FrameInterval())
	live.Stop()
	// draw the final frame past the throttle
	live.Draw(anim.Snapshot())

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	snap := anim.Snapshot()
	log.Info("animation ended",
		zap.Stringer("phase", snap.Phase),
		zap.Float64("progress", snap.Progress),
		zap.Int("frames", live.Frames()),
		zap.Duration("elapsed", time.Since(start)),
	)
	fmt.Printf("W = %s  %s  %s  travelled %.2f m\n",
		snap.Result.WorkString(), snap.Result.FxString(), snap.Result.FyString(), snap.Travelled())
	vals := stats.Values()
	for _, name := range stats.Names() {
		fmt.Printf("  %-14s %.3f\n", name, vals[name])
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	if sweepPoints < 2 {
		return fmt.Errorf("points must be at least 2, got %d", sweepPoints)
	}
	rows := sweep.Run(cfg.Force, cfg.Distance, sweep.Options{From: sweepFrom, To: sweepTo, Points: sweepPoints})
	if lo, hi, ok := sweep.Extrema(rows); ok {
		log.Debug("sweep extrema",
			zap.Float64("min_angle", lo.Angle), zap.Float64("min_work", lo.Work),
			zap.Float64("max_angle", hi.Angle), zap.Float64("max_work", hi.Work))
	}

	switch format {
	case "table":
		err = sweep.WriteTable(os.Stdout, rows, sweep.Nearest(rows, cfg.Angle))
	case "csv":
		err = sweep.WriteCSV(os.Stdout, rows)
	case "json":
		err = sweep.WriteJSON(os.Stdout, rows)
	default:
		return fmt.Errorf("unknown format: %s (available: table, csv, json)", format)
	}
	if err != nil {
		return err
	}
	if plot {
		caption := fmt.Sprintf("W(θ) for F = %g N, d = %g m", cfg.Force, cfg.Distance)
		fmt.Println()
		fmt.Println(sweep.Plot(rows, 70, 15, caption))
	}
	return nil
}

func runSVG(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	if progress < 0 || progress > 1 {
		return &work.ParamError{Name: "progress", Value: progress, Wrapped: work.ErrParameterBounds}
	}
	p := cfg.Params()
	snap := sim.StillFrame(p, progress)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var doc string
	if fromCanvas {
		c := viz.NewCanvas(100, 25)
		viz.DrawScene(c, scene.Build(snap, float64(c.SubWidth()), float64(c.SubHeight()), rng))
		doc = export.CanvasToSVG(c, 4, viz.GetTheme(cfg.Theme).InkColors())
	} else {
		doc = export.SceneToSVG(scene.Build(snap, scene.ReferenceWidth, scene.ReferenceHeight, rng), export.DefaultPalette)
	}

	if output == "" {
		_, err = io.WriteString(os.Stdout, doc)
		return err
	}
	if err := os.WriteFile(output, []byte(doc), 0644); err != nil {
		return err
	}
	log.Info("svg written", zap.String("path", output))
	return nil
}
