package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/teardown/internal/config"
	"github.com/san-kum/teardown/internal/detail"
	"github.com/san-kum/teardown/internal/export"
	"github.com/san-kum/teardown/internal/parts"
	"github.com/san-kum/teardown/internal/scene"
	"github.com/san-kum/teardown/internal/trace"
	"github.com/san-kum/teardown/internal/viz"
	"github.com/spf13/cobra"
)

var errUnknownPart = errors.New("unknown part")

var (
	dataDir    string
	configFile string
	preset     string
	frameRate  int
	theme      string
	logFile    string
	// trace
	script string
	ticks  int
	save   bool
	plot   bool
	svgOut string
	// snapshot
	exploded bool
	outFile  string
	width    int
	height   int
	dotScale float64
)

var (
	headStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	labelStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "teardown",
		Short: "interactive exploded view of a phone's internals",
		Long: `Explore a phone's internal parts in the terminal.

Press E to explode the device along its depth axis, hover a part to
see its label and click it to read its spec sheet.`,
		RunE: runView,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	addViewFlags(rootCmd)

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "open the interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  runView,
	}
	addViewFlags(viewCmd)

	partsCmd := &cobra.Command{
		Use:   "parts",
		Short: "list the parts of the device",
		Args:  cobra.NoArgs,
		RunE:  listParts,
	}

	describeCmd := &cobra.Command{
		Use:       "describe <part>",
		Short:     "print the spec sheet of a part",
		Args:      cobra.ExactArgs(1),
		ValidArgs: parts.Names(),
		RunE:      describePart,
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run an input script headlessly and report the animation",
		Long: `Run an input script against the scene without a terminal UI.

A script is a comma separated list of actions:
  explode | toggle       flip the exploded flag
  hover:<Part>           hover a part
  unhover                clear the hover
  select:<Part>          select a part
  wait:<n>               advance n frames`,
		Args: cobra.NoArgs,
		RunE: runTrace,
	}
	traceCmd.Flags().StringVar(&script, "script", "explode,wait:60", "action script")
	traceCmd.Flags().IntVar(&ticks, "ticks", 0, "extra frames to run after the script")
	traceCmd.Flags().BoolVar(&save, "save", false, "store the trace in the data directory")
	traceCmd.Flags().BoolVar(&plot, "plot", false, "plot z trajectories and camera distance")
	traceCmd.Flags().StringVar(&svgOut, "svg", "", "write the z trajectories to an SVG file")
	traceCmd.Flags().StringVar(&preset, "preset", "", "pacing preset")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved traces",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot <run_id>",
		Short: "plot a saved trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export <run_id>",
		Short: "export a saved trace to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render the settled scene to SVG",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().BoolVar(&exploded, "exploded", false, "render the exploded view")
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	snapshotCmd.Flags().IntVar(&width, "width", 80, "canvas width in cells")
	snapshotCmd.Flags().IntVar(&height, "height", 32, "canvas height in cells")
	snapshotCmd.Flags().Float64Var(&dotScale, "scale", 4, "pixels per braille dot")
	snapshotCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	})

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list pacing presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tALPHA\tHOVER\tNEAR\tFAR")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\n", name, p.Alpha, p.HoverScale, p.CameraNear, p.CameraFar)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(viewCmd, partsCmd, describeCmd, traceCmd, runsCmd, plotCmd, exportCmd, snapshotCmd, configCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := fang.Execute(ctx, rootCmd); err != nil {
		stop()
		os.Exit(1)
	}
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "pacing preset")
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().StringVar(&theme, "theme", "", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	cmd.Flags().StringVar(&logFile, "log", "", "write debug log to file")
}

// loadConfig layers defaults, the config file, a preset and then any flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log") {
		cfg.LogFile = logFile
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, cfg.Validate()
}

// setupLogging sends the standard logger to path, or discards it so nothing
// is written over the alt screen.
func setupLogging(path string) (func() error, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}
	f, err := tea.LogToFile(path, "teardown")
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f.Close, nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Printf("starting viewer: fps=%d theme=%s alpha=%g", cfg.FPS, cfg.Theme, cfg.Pacing.Alpha)
	return viz.Run(viz.Options{
		Pacing:         cfg.ScenePacing(),
		FPS:            cfg.FPS,
		Theme:          cfg.Theme,
		MinPolar:       cfg.Orbit.MinPolar,
		MaxPolar:       cfg.Orbit.MaxPolar,
		OrbitFrequency: cfg.Orbit.Frequency,
		OrbitDamping:   cfg.Orbit.Damping,
	})
}

func listParts(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tREST\tEXPLODED Z\tSIZE\tCOLOR")
	for _, p := range parts.All() {
		r, s := p.RestPosition, p.VisualSize
		fmt.Fprintf(w, "%d\t%s\t(%.3f, %.3f, %.3f)\t%.3f\t%.3f x %.3f x %.3f\t%s\n",
			p.ID, p.Name, r.X(), r.Y(), r.Z(), p.TargetZ(true), s.X(), s.Y(), s.Z(), p.Color)
	}
	return w.Flush()
}

func describePart(cmd *cobra.Command, args []string) error {
	d := detail.Describe(args[0])
	if d == nil {
		return fmt.Errorf("%w: %s (available: %s)", errUnknownPart, args[0], strings.Join(parts.Names(), ", "))
	}

	fmt.Println(headStyle.Render(d.Name))
	fmt.Println()
	fmt.Println(labelStyle.Render("Specifications"))
	for _, s := range d.Specs {
		fmt.Printf("  %s %s\n", labelStyle.Render(s.Label()+":"), s.Value)
	}
	fmt.Println()
	fmt.Println(labelStyle.Render("Connections"))
	for _, c := range d.Connections {
		fmt.Printf("  %s\n", c)
	}
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	actions, err := scene.ParseScript(script)
	if err != nil {
		return err
	}

	pacing := cfg.ScenePacing()
	res, err := trace.Run(cmd.Context(), scene.New(pacing), actions, ticks)
	if err != nil {
		return err
	}

	fmt.Printf("script: %s\n", strings.Join(res.Script, ", "))
	fmt.Printf("frames: %d\n", len(res.Samples))
	if res.SettledAt >= 0 {
		fmt.Printf("settled: frame %d\n", res.SettledAt)
	} else {
		fmt.Println("settled: " + mutedStyle.Render("no"))
	}
	fmt.Printf("camera: %.4f\n\n", res.Final.CameraDistance)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PART\tZ\tSCALE\tLABEL")
	for _, v := range res.Final.Parts {
		label := ""
		if v.LabelVisible {
			label = "shown"
		}
		fmt.Fprintf(w, "%s\t%.4f\t%.2f\t%s\n", v.Part.Name, v.Position.Z(), v.Scale, label)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if plot {
		fmt.Println()
		plotResult(res)
	}

	if svgOut != "" {
		series := make([][]float64, 0, parts.Count)
		for _, p := range parts.All() {
			series = append(series, res.Series(p.ID))
		}
		colors := make([]string, 0, parts.Count)
		for _, c := range viz.ThemeStudio.Parts {
			colors = append(colors, string(c))
		}
		if err := os.WriteFile(svgOut, []byte(export.SeriesToSVG(series, colors, 800, 300)), 0644); err != nil {
			return err
		}
		fmt.Printf("\nplot written to %s\n", svgOut)
	}

	if save {
		st := trace.NewStore(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(res, pacing)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved: %s\n", runID)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	runs, err := trace.NewStore(cfg.DataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tTICKS\tSETTLED\tALPHA\tSCRIPT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2f\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			run.SettledAt,
			run.Alpha,
			strings.Join(run.Script, ","),
		)
	}
	return w.Flush()
}

func plotResult(res *trace.Result) {
	if len(res.Samples) < 2 {
		fmt.Println("not enough samples to plot")
		return
	}
	series := make([][]float64, 0, parts.Count)
	for _, p := range parts.All() {
		series = append(series, res.Series(p.ID))
	}
	fmt.Println(asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.LightBlue, asciigraph.LimeGreen, asciigraph.Orange, asciigraph.Gray, asciigraph.DarkGray, asciigraph.Silver),
		asciigraph.Caption("z by part ("+strings.Join(parts.Names(), ", ")+")"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(res.CameraSeries(),
		asciigraph.Height(6),
		asciigraph.Width(80),
		asciigraph.Caption("camera distance"),
	))
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := trace.NewStore(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("script: %s\n", strings.Join(meta.Script, ", "))
	fmt.Printf("samples: %d\n\n", len(samples))
	plotResult(&trace.Result{Script: meta.Script, Samples: samples, SettledAt: meta.SettledAt})
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := trace.NewStore(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if outFile == "" {
		return export.WriteJSON(os.Stdout, *meta, samples)
	}
	if err := export.ExportJSON(outFile, *meta, samples); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outFile)
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if width < 10 || height < 5 {
		return fmt.Errorf("canvas too small: %dx%d", width, height)
	}

	sc := scene.New(cfg.ScenePacing())
	var actions []scene.Action
	if exploded {
		actions = append(actions, scene.Action{Kind: scene.ActionExplode})
	}
	res, err := trace.Run(cmd.Context(), sc, actions, 600)
	if err != nil {
		return err
	}

	canvas := viz.RenderFrame(res.Final, width, height)
	svg := export.CanvasToSVG(canvas, dotScale, viz.GetTheme(cfg.Theme))
	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("snapshot written to %s\n", outFile)
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "teardown.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
