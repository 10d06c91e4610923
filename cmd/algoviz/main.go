package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/bench"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/tui"
	"github.com/san-kum/algoviz/internal/viz"
)

var (
	values     string
	target     int
	random     bool
	seed       int64
	speed      string
	theme      string
	configFile string
	preset     string
	saveConfig string
	format     string
	runs       int
	benchSeed  int64
	outFile    string
	redraw     bool

	logLevel  string
	logFormat string
	logFile   string

	logger   = logging.Discard()
	logClose func() error
	registry = algorithms.NewRegistry()
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "algoviz",
		Short:         "step-by-step algorithm visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logClose != nil {
				return logClose()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := playback.ParseSpeed(speed)
			if err != nil {
				return err
			}
			return viz.Run(viz.Options{
				Registry: registry,
				Theme:    theme,
				Speed:    sp,
				Seed:     seed,
				Logger:   logger,
			})
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to file (interactive commands discard logs otherwise)")
	rootCmd.Flags().StringVar(&speed, "speed", config.DefaultSpeed, "playback speed: slow, normal, fast")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme: "+strings.Join(viz.ThemeNames(), ", "))
	rootCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list available algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "generate and print every step of an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE:  runAlgorithm,
	}
	addInputFlags(runCmd)

	exportCmd := &cobra.Command{
		Use:   "export [algorithm]",
		Short: "export a generated run as json or csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	addInputFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "json", "output format: json, csv")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	plotCmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "plot inversions (sorts) or search window size per step",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	addInputFlags(plotCmd)

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "open the visualizer on an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE:  playAlgorithm,
	}
	addInputFlags(playCmd)
	addPlaybackFlags(playCmd)
	playCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme: "+strings.Join(viz.ThemeNames(), ", "))

	watchCmd := &cobra.Command{
		Use:   "watch [algorithm]",
		Short: "play an algorithm in the terminal without the interactive UI",
		Args:  cobra.ExactArgs(1),
		RunE:  watchAlgorithm,
	}
	addInputFlags(watchCmd)
	addPlaybackFlags(watchCmd)
	watchCmd.Flags().BoolVar(&redraw, "clear", false, "redraw each step in place")

	replayCmd := &cobra.Command{
		Use:   "replay [file]",
		Short: "play back a run exported as json",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}
	addPlaybackFlags(replayCmd)
	replayCmd.Flags().BoolVar(&redraw, "clear", false, "redraw each step in place")

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]",
		Short: "summarize step metrics over many random inputs",
		Args:  cobra.ExactArgs(1),
		RunE:  benchAlgorithm,
	}
	benchCmd.Flags().IntVarP(&runs, "runs", "n", 100, "number of random inputs")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1, "seed of the first run")

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for algorithm: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				cfg := config.GetPreset(args[0], p)
				fmt.Printf("  %-14s %s\n", p, input.Format(cfg.Values))
			}
			return nil
		},
	}

	rootCmd.AddCommand(listCmd, runCmd, exportCmd, plotCmd, playCmd, watchCmd, replayCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&values, "values", "", "comma or space separated numbers")
	cmd.Flags().IntVar(&target, "target", 0, "search target")
	cmd.Flags().BoolVar(&random, "random", false, "use a random array")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&saveConfig, "save-config", "", "write the resolved input to a config file")
}

func addPlaybackFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&speed, "speed", config.DefaultSpeed, "playback speed: slow, normal, fast")
}

// interactive commands own the terminal, so their logs go to --log-file or
// nowhere.
func setupLogger(cmd *cobra.Command) error {
	level, err := logLevelFor(cmd, configFile)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stderr
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		w, logClose = f, f.Close
	case cmd.Name() == "algoviz" || cmd.Name() == "play":
		return nil
	}

	l, err := logging.New(level, logFormat, w)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// logLevelFor returns --log-level when it was given, else the log_level of
// the config file, else the flag default.
func logLevelFor(cmd *cobra.Command, path string) (string, error) {
	if path == "" || cmd.Flags().Changed("log-level") {
		return logLevel, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.LogLevel, nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tAVG TIME\tSPACE\tDIFFICULTY\tSTATUS")

	for _, info := range registry.List() {
		status := "ready"
		if !info.Implemented {
			status = "coming soon"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			info.ID,
			info.Name,
			info.Category,
			info.Time.Average,
			info.Space,
			info.Difficulty,
			status,
		)
	}

	return w.Flush()
}

func runAlgorithm(cmd *cobra.Command, args []string) error {
	run, err := generate(cmd, args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tACTION\tDESCRIPTION\tARRAY")
	for _, s := range run.Steps {
		fmt.Fprintf(w, "%d\t%s\t%s\t%v\n", s.ID, s.Action, s.Description, s.Data.Array())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nrun %s: %d steps\n", run.ID, len(run.Steps))
	m := metrics.Collect(run.Steps)
	for _, metric := range metrics.Default() {
		fmt.Printf("  %-12s %.0f\n", metric.Name(), m[metric.Name()])
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	run, err := generate(cmd, args[0])
	if err != nil {
		return err
	}

	if outFile == "" {
		return export.Write(os.Stdout, f, run)
	}
	if err := export.WriteFile(outFile, f, run); err != nil {
		return err
	}
	fmt.Printf("exported %d steps to %s\n", len(run.Steps), outFile)
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	run, err := generate(cmd, args[0])
	if err != nil {
		return err
	}

	data, caption := metrics.InversionSeries(run.Steps), "inversions per step"
	if run.Kind == step.KindSearch {
		data, caption = windowSeries(run.Steps), "search window size per step"
	}
	if len(data) == 1 {
		data = append(data, data[0])
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

// windowSeries returns right-left+1 for every search step that carries
// pointers, and zero once the window is gone.
func windowSeries(seq step.Sequence) []float64 {
	out := make([]float64, len(seq))
	for i, s := range seq {
		snap, ok := s.Data.(step.SearchSnapshot)
		if !ok {
			continue
		}
		switch {
		case snap.Left != nil && snap.Right != nil:
			out[i] = float64(*snap.Right - *snap.Left + 1)
		case snap.Found == nil:
			out[i] = float64(len(snap.Values))
		}
	}
	return out
}

func benchAlgorithm(cmd *cobra.Command, args []string) error {
	if runs < 1 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}

	start := time.Now()
	results, err := bench.NewEnsemble(registry, args[0], runs, benchSeed).Run(cmd.Context())
	if err != nil {
		return err
	}
	logger.Info("bench complete",
		slog.String("algorithm", args[0]),
		slog.Int("runs", runs),
		slog.Duration("elapsed", time.Since(start)),
	)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s over %d random inputs (seeds %d..%d)\n", args[0], runs, benchSeed, benchSeed+int64(runs)-1)
	fmt.Fprintln(w, "METRIC\tMEAN\tMIN\tMAX")
	for _, s := range bench.Summarize(results) {
		fmt.Fprintf(w, "%s\t%.2f\t%.0f\t%.0f\n", s.Name, s.Mean, s.Min, s.Max)
	}
	return w.Flush()
}

func playAlgorithm(cmd *cobra.Command, args []string) error {
	sp, err := playback.ParseSpeed(speed)
	if err != nil {
		return err
	}
	_, in, err := resolveInput(cmd, args[0])
	if err != nil {
		return err
	}
	return viz.Run(viz.Options{
		Registry:  registry,
		Theme:     theme,
		Speed:     sp,
		Seed:      seed,
		Logger:    logger,
		Algorithm: args[0],
		Input:     &in,
	})
}

func watchAlgorithm(cmd *cobra.Command, args []string) error {
	run, err := generate(cmd, args[0])
	if err != nil {
		return err
	}
	return watch(cmd.Context(), run)
}

func replayRun(cmd *cobra.Command, args []string) error {
	run, err := export.ReadFile(args[0])
	if err != nil {
		return err
	}
	return watch(cmd.Context(), run)
}

// watch plays run on a timer, printing each step, until it finishes or the
// process is interrupted.
func watch(ctx context.Context, run *algorithms.Run) error {
	sp, err := playback.ParseSpeed(speed)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithAlgorithm(logging.WithRunID(ctx, run.ID), run.Algorithm)

	var opts []tui.Option
	if redraw {
		opts = append(opts, tui.WithClear())
	}
	r := tui.NewLiveRenderer(os.Stdout, run.Algorithm, opts...)
	p := playback.NewPlayer(
		playback.WithSpeed(sp),
		playback.WithLogger(logging.LogWith(ctx, logger)),
		playback.OnChange(r.OnChange),
	)

	r.Start()
	defer r.Stop()

	p.Load(run.ID, run.Steps)
	p.Play()
	logger.InfoContext(ctx, "watch started", slog.String("speed", string(sp)), slog.Int("steps", len(run.Steps)))

	select {
	case <-r.Done():
		logger.InfoContext(ctx, "watch finished")
	case <-ctx.Done():
		p.Close()
		logger.InfoContext(ctx, "watch interrupted", slog.Int("index", p.View().Index))
	}
	return nil
}

func generate(cmd *cobra.Command, algorithm string) (*algorithms.Run, error) {
	info, in, err := resolveInput(cmd, algorithm)
	if err != nil {
		return nil, err
	}
	run, err := registry.Generate(info.ID, in)
	if err != nil {
		return nil, err
	}

	ctx := logging.WithAlgorithm(logging.WithRunID(context.Background(), run.ID), run.Algorithm)
	logger.InfoContext(ctx, "sequence generated", slog.Int("steps", len(run.Steps)), slog.Any("input", run.Input))
	return run, nil
}

// resolveInput layers preset, config file and flags, in that order, and
// returns the validated generator input.
func resolveInput(cmd *cobra.Command, algorithm string) (algorithms.Info, algorithms.Input, error) {
	info, err := registry.Info(algorithm)
	if err != nil {
		return algorithms.Info{}, algorithms.Input{}, err
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(algorithm, preset)
		if cfg == nil {
			return info, algorithms.Input{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(algorithm))
		}
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return info, algorithms.Input{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("values") {
		parsed, err := input.Parse(values)
		if err != nil {
			return info, algorithms.Input{}, err
		}
		cfg.Values = parsed
	}
	if flags.Changed("target") {
		cfg.Target = &target
	}
	if flags.Changed("random") {
		cfg.Random = random
	}
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if flags.Lookup("speed") != nil && !flags.Changed("speed") && cfg.Speed != "" {
		speed = string(cfg.SpeedTier())
	}
	if flags.Lookup("theme") != nil && !flags.Changed("theme") && cfg.Theme != "" {
		theme = cfg.Theme
	}

	var in algorithms.Input
	if cfg.Random {
		in = input.Random(newRand(cfg.Seed), info)
		if cfg.Target != nil && info.Limits.NeedsTarget {
			in.Target = *cfg.Target
		}
	} else {
		vals := cfg.Values
		if len(vals) == 0 {
			vals = info.DefaultValues
		}
		t := info.DefaultTarget
		if cfg.Target != nil {
			t = *cfg.Target
		}
		if in, err = input.Prepare(info, vals, t); err != nil {
			return info, in, err
		}
	}

	if saveConfig != "" {
		cfg.Algorithm = info.ID
		cfg.Values = in.Values
		cfg.Random = false
		cfg.Speed = speed
		if flags.Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		cfg.Target = nil
		if info.Limits.NeedsTarget {
			cfg.Target = &in.Target
		}
		if err := config.Save(saveConfig, cfg); err != nil {
			return info, in, err
		}
		logger.Info("config saved", slog.String("path", saveConfig))
	}
	return info, in, nil
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
