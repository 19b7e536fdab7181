package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/streamplot/internal/config"
	"github.com/san-kum/streamplot/internal/dashboard"
	"github.com/san-kum/streamplot/internal/export"
	"github.com/san-kum/streamplot/internal/plot"
	"github.com/san-kum/streamplot/internal/sources"
	"github.com/san-kum/streamplot/internal/viz"
)

const defaultPreset = "system"

var (
	configFile string
	intervalMs int
	themeName  string
	logFile    string
	logLevel   string
	// snapshot
	frames   int
	outFile  string
	outW     int
	outH     int
	realtime bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "streamplot",
		Short:        "live rolling line plots in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, []string{defaultPreset})
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run a dashboard in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "frame interval in milliseconds")
	liveCmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	liveCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [preset]",
		Short: "draw a number of frames headless and export the last one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	snapshotCmd.Flags().IntVar(&frames, "frames", 100, "frames to draw before exporting")
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (.svg or .png); empty prints an ascii preview")
	snapshotCmd.Flags().IntVar(&outW, "width", export.DefaultWidth, "image width")
	snapshotCmd.Flags().IntVar(&outH, "height", export.DefaultHeight, "image height")
	snapshotCmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "colour theme")
	snapshotCmd.Flags().BoolVar(&realtime, "realtime", false, "wait one interval between frames")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in dashboards",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tAXES\tSTREAMS")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				n := 0
				titles := make([]string, 0, len(cfg.Axes))
				for _, ax := range cfg.Axes {
					n += len(ax.Streams)
					titles = append(titles, ax.Title)
				}
				fmt.Fprintf(w, "%s\t%s\t%d\n", name, strings.Join(titles, ", "), n)
			}
			return w.Flush()
		},
	}

	sourcesCmd := &cobra.Command{
		Use:   "sources",
		Short: "list data sources and their params",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := sources.NewRegistry()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SOURCE\tDESCRIPTION\tPARAMS")
			for _, name := range reg.List() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, reg.Info(name), formatParams(reg.Defaults(name)))
			}
			fmt.Fprintf(w, "\nprocessors: %s\n", strings.Join(dashboard.ProcessorNames(), ", "))
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [preset] [path]",
		Short: "write a preset as an editable config file",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(liveCmd, snapshotCmd, presetsCmd, sourcesCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the dashboard: a config file wins over a preset name.
func loadConfig(args []string) (*config.Config, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	name := defaultPreset
	if len(args) > 0 {
		name = args[0]
	}
	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
	}
	return cfg, nil
}

func newLogger(out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	return log, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	// CLI flags override the config
	if cmd.Flags().Changed("interval") {
		cfg.IntervalMs = intervalMs
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeName
	}

	// the terminal belongs to the dashboard, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	log, err := newLogger(out)
	if err != nil {
		return err
	}

	d, err := dashboard.Build(cfg, sources.NewRegistry(), log)
	if err != nil {
		return err
	}

	theme, ok := viz.GetTheme(cfg.Theme)
	if !ok {
		log.WithField("theme", cfg.Theme).Warn("unknown theme, using default")
	}
	return viz.Run(d.Figure, d.Animation, viz.Options{Theme: theme, Logger: log})
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeName
	}
	if frames < 1 {
		return errors.New("--frames must be at least 1")
	}

	log, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	d, err := dashboard.Build(cfg, sources.NewRegistry(), log)
	if err != nil {
		return err
	}

	if realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		n := 0
		err = d.Animation.Run(ctx, func([]plot.Line) error {
			n++
			if n >= frames {
				cancel()
			}
			return nil
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	} else {
		if err := d.Animation.Start(); err != nil {
			return err
		}
		for i := 0; i < frames; i++ {
			if _, err := d.Animation.DrawFrame(); err != nil {
				return err
			}
		}
	}

	theme, _ := viz.GetTheme(cfg.Theme)
	log.WithFields(logrus.Fields{
		"frames": d.Animation.Frames(),
		"out":    outFile,
	}).Info("snapshot taken")

	if outFile == "" {
		for _, ax := range d.Figure.Axes() {
			fmt.Fprintln(cmd.OutOrStdout(), asciiPreview(ax))
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	}

	start := time.Now()
	if err := export.Save(outFile, d.Figure, export.Options{Width: outW, Height: outH, Theme: theme}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d frames, %v)\n", outFile, d.Animation.Frames(), time.Since(start).Round(time.Millisecond))
	return nil
}

// asciiPreview plots an axes without colour for plain stdout.
func asciiPreview(ax *plot.Axes2D) string {
	series := make([][]float64, 0, len(ax.Lines()))
	for _, l := range ax.Lines() {
		series = append(series, viz.Visible(ax, l))
	}
	opts := []asciigraph.Option{asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption(ax.Title)}
	if lo, hi, ok := ax.YLim(); ok {
		opts = append(opts, asciigraph.LowerBound(lo), asciigraph.UpperBound(hi))
	}
	return asciigraph.PlotMany(series, opts...)
}

func initConfig(cmd *cobra.Command, args []string) error {
	name := defaultPreset
	if len(args) > 0 {
		name = args[0]
	}
	path := "streamplot.yaml"
	if len(args) > 1 {
		path = args[1]
	}

	cfg := config.GetPreset(name)
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s from preset %s\n", path, name)
	return nil
}

func formatParams(p sources.Params) string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return "-"
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%g", k, p[k])
	}
	return strings.Join(parts, " ")
}
