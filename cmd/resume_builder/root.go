package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/metrics"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	configPath  string
	apiURL      string
	verbose     bool
	metricsFile string
}

// app is the per-invocation state built before a command runs
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	observer metrics.Observer
	out      io.Writer
}

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	a := &app{}

	cmd := &cobra.Command{
		Use:   "resume_builder",
		Short: "Resume builder",
		Long: "Resume builder walks a resume document through the editing sections, " +
			"reviews it and sends it to the rendering service to produce a PDF.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.writeMetrics(opts.metricsFile)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a JSON or YAML config file")
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "Rendering service base URL (overrides config and "+config.EnvAPIURL+")")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.metricsFile, "metrics-file", "", "Write request metrics in Prometheus text format to this file")

	cmd.AddCommand(
		newSampleCmd(a),
		newReviewCmd(a),
		newEditCmd(a),
		newGenerateCmd(a),
		newStepsCmd(a),
	)
	return cmd
}

func (a *app) init(opts *globalOptions, out, errOut io.Writer) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.out = out
	a.logger = newLogger(errOut, cfg.Verbose)

	a.registry = prometheus.NewRegistry()
	observer, err := metrics.NewPrometheusObserver("", a.registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	a.observer = observer

	a.logger.Debug("configuration resolved",
		slog.String("api_url", cfg.APIURL),
		slog.Duration("timeout", cfg.Timeout()),
		slog.String("output_dir", cfg.OutputDir),
	)
	return nil
}

// resolveConfig layers the configuration sources: flags, then the config
// file, then the environment, then the built-in defaults.
func resolveConfig(opts *globalOptions) (config.Config, error) {
	cfg := config.Config{APIURL: opts.apiURL, Verbose: opts.verbose}

	if opts.configPath != "" {
		fileCfg, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Default())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (a *app) newSession() (*session.Session, error) {
	client := generation.NewClient(&generation.Options{
		BaseURL:  a.cfg.APIURL,
		Timeout:  a.cfg.Timeout(),
		Logger:   a.logger,
		Observer: a.observer,
	})
	return session.New(session.Options{Client: client, Logger: a.logger})
}

func (a *app) writeMetrics(path string) error {
	if path == "" || a.registry == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, a.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
