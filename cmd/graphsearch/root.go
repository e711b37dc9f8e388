package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsearch/config"
	"github.com/katalvlaran/graphsearch/repl"
	"github.com/katalvlaran/graphsearch/session"
	"github.com/katalvlaran/graphsearch/telemetry"
)

// rootFlags holds persistent flag values. Flags that were set on the
// command line override the configuration file.
type rootFlags struct {
	configPath   string
	capacity     int
	logLevel     string
	logFormat    string
	color        string
	script       string
	telemetryOut string
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	root := &cobra.Command{
		Use:   "graphsearch",
		Short: "Build an undirected graph and run DFS and BFS over it",
		Long: `graphsearch reads single-letter commands (z init, e add edge,
d depth-first search, b breadth-first search, p print, q quit) from stdin or
a script file and prints each traversal as it happens.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLoop(cmd, &f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "path to a YAML configuration file")
	pf.IntVar(&f.capacity, "capacity", config.Default().Capacity, "number of vertices in every initialized graph")
	pf.StringVar(&f.logLevel, "log-level", config.Default().Log.Level, "log level: debug, info, warn or error")
	pf.StringVar(&f.logFormat, "log-format", config.Default().Log.Format, "log format: text or json")
	pf.StringVar(&f.color, "color", config.Default().Color, "styled output: auto, always or never")
	pf.StringVar(&f.telemetryOut, "telemetry-out", "", "write OpenTelemetry traces and metrics to this file")
	root.Flags().StringVar(&f.script, "script", "", "read commands from this file instead of stdin")

	root.AddCommand(newDemoCmd(&f), newConfigCmd())

	return root
}

// resolveConfig loads the configuration file and applies changed flags.
func resolveConfig(cmd *cobra.Command, f *rootFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("capacity") {
		cfg.Capacity = f.capacity
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if flags.Changed("color") {
		cfg.Color = f.color
	}
	if flags.Changed("telemetry-out") {
		cfg.Telemetry.Output = f.telemetryOut
	}

	return cfg, cfg.Validate()
}

// newLogger builds the process logger writing to w.
func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(cfg.Log.Format, config.FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// isTerminal reports whether v is a terminal file.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// useColor resolves the color mode against the output stream.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isTerminal(out)
	}
}

// app is the per-invocation state shared by subcommands.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	session *session.Session
}

// withRuntime sets up logging, telemetry and a session, runs fn, then
// flushes telemetry.
func withRuntime(cmd *cobra.Command, f *rootFlags, fn func(ctx context.Context, rt *app) error) (err error) {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts := []session.Option{session.WithCapacity(cfg.Capacity), session.WithLogger(logger)}
	if cfg.Telemetry.Output != "" {
		out, ferr := os.Create(cfg.Telemetry.Output)
		if ferr != nil {
			return fmt.Errorf("failed to open telemetry output: %w", ferr)
		}
		providers, terr := telemetry.Init(ctx, out, version)
		if terr != nil {
			_ = out.Close()
			return terr
		}
		defer func() {
			err = errors.Join(err, providers.Shutdown(context.Background()), out.Close())
		}()
		opts = append(opts, session.WithTracerProvider(providers.Tracer), session.WithMeterProvider(providers.Meter))
		logger.Debug("telemetry enabled", slog.String("output", cfg.Telemetry.Output))
	}

	return fn(ctx, &app{cfg: cfg, logger: logger, session: session.New(opts...)})
}

func runLoop(cmd *cobra.Command, f *rootFlags) error {
	return withRuntime(cmd, f, func(ctx context.Context, rt *app) error {
		in := cmd.InOrStdin()
		interactive := isTerminal(in)
		if f.script != "" {
			file, err := os.Open(f.script)
			if err != nil {
				return fmt.Errorf("failed to open script: %w", err)
			}
			defer file.Close()
			in, interactive = file, false
		}

		out := cmd.OutOrStdout()
		styles := repl.PlainStyles()
		if useColor(rt.cfg.Color, out) {
			styles = repl.DefaultStyles()
		}

		rt.logger.Info("command loop started",
			slog.Bool("interactive", interactive),
			slog.Int("capacity", rt.cfg.Capacity),
		)
		loop := repl.New(in, out, rt.session,
			repl.WithInteractive(interactive),
			repl.WithPrompt(rt.cfg.Prompt),
			repl.WithStyles(styles),
			repl.WithLogger(rt.logger),
		)

		return loop.Run(ctx)
	})
}
