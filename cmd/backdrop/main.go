package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"backdrop/internal/app"
	"backdrop/internal/config"
	"backdrop/internal/host"
	"backdrop/internal/ui"
)

var (
	cfgFile     string
	backend     string
	benchFrames int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "backdrop",
		Short: "backdrop: an interactive particle field behind a landing page",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Open the particle field in a window or terminal",
		RunE:  runRun,
	}
	runCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Path to config file (default: configs/config.yaml)")
	runCmd.Flags().StringVarP(&backend, "backend", "b", "", "Window backend: gl | canvas | ebiten | term (default from config)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Tick the field headless and report draw counts and timing",
		RunE:  runBench,
	}
	benchCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Path to config file (default: configs/config.yaml)")
	benchCmd.Flags().IntVar(&benchFrames, "frames", 600, "Number of 60 Hz frames to simulate")

	rootCmd.AddCommand(runCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Log.Development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("config load: %w", err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("logger init: %w", err)
	}
	return cfg, logger, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if backend != "" {
		cfg.Window.Backend = backend
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	run, ok := backends[cfg.Window.Backend]
	if !ok {
		return fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Window.Backend)
	}

	player, closeAudio := newPlayer(cfg.Window.Backend, cfg.Audio, logger)
	defer closeAudio()

	opts := app.Options{
		Field:  cfg.FieldConfig(uint64(time.Now().UnixNano())),
		Email:  cfg.Contact.Email,
		Stats:  stats(cfg.Stats),
		Audio:  player,
		Logger: logger,
	}
	logger.Info("starting backdrop",
		zap.String("backend", cfg.Window.Backend),
		zap.Int("particles", opts.Field.Count),
		zap.Bool("audio", cfg.Audio.Enabled),
	)
	return run(host.Config{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
	}, opts, logger)
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	rep, err := app.Bench(
		cfg.FieldConfig(uint64(time.Now().UnixNano())),
		float64(cfg.Window.Width), float64(cfg.Window.Height),
		benchFrames, logger,
	)
	if err != nil {
		return err
	}
	logger.Info("bench finished",
		zap.Int("frames", rep.Frames),
		zap.Duration("elapsed", rep.Elapsed),
		zap.Duration("per_frame", rep.PerFrame()),
		zap.Int("ops", rep.Ops),
		zap.Int("links", rep.Links),
		zap.Int("pointer_links", rep.PointerLinks),
		zap.Int("glow_frames", rep.GlowFrames),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "%d frames in %s (%s/frame), %d draw ops\n",
		rep.Frames, rep.Elapsed, rep.PerFrame(), rep.Ops)
	return nil
}

func stats(in []config.StatConfig) []ui.Stat {
	out := make([]ui.Stat, 0, len(in))
	for _, s := range in {
		out = append(out, ui.Stat{Label: s.Label, Value: s.Value})
	}
	return out
}
