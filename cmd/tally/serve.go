package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/tally/internal/config"
	"github.com/vango-dev/tally/internal/demo"
	"github.com/vango-dev/tally/internal/errors"
	"github.com/vango-dev/tally/pkg/counter"
	"github.com/vango-dev/tally/pkg/metrics"
	"github.com/vango-dev/tally/pkg/server"
	"github.com/vango-dev/tally/pkg/vdom"
)

type serveOptions struct {
	configPath string
	addr       string
	debug      bool
}

func serveCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live demo server",
		Long: `Start the live demo server.

Configuration is read from --config, or from tally.json, tally.yaml or
tally.yml in the working directory. Without a file the defaults apply.

Examples:
  tally serve
  tally serve --addr :9000
  tally serve --config deploy/tally.yaml --debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a config file")
	cmd.Flags().StringVarP(&opts.addr, "addr", "a", "", "Listen address as host:port (overrides the config)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log at debug level")
	return cmd
}

// loadConfig reads path, or the default file names in the working directory.
// A missing default file is not an error.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	cfg, err := config.Load(".")
	if errors.CodeOf(err) == "T101" {
		return config.New(), nil
	}
	return cfg, err
}

// resolveConfig applies flag overrides on top of the loaded config.
func resolveConfig(opts serveOptions) (*config.Config, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.addr != "" {
		if err := cfg.SetAddress(opts.addr); err != nil {
			return nil, err
		}
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildServer wires the demo app, metrics and logging into a server.
func buildServer(cfg *config.Config, logger *slog.Logger) *server.Server {
	srvCfg := server.DefaultConfig()
	srvCfg.Address = cfg.Address()
	srvCfg.ReadHeaderTimeout = cfg.ReadHeaderTimeout()
	srvCfg.ShutdownTimeout = cfg.ShutdownTimeout()
	srvCfg.Title = demo.Title
	srvCfg.Styles = []string{demo.Styles}
	srvCfg.Logger = logger

	var observers []counter.Observer
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		srvCfg.Registry = reg
		srvCfg.MetricsPath = cfg.Metrics.Path
		srvCfg.Namespace = cfg.Metrics.Namespace
		observers = append(observers, metrics.NewObserver(
			metrics.WithRegistry(reg),
			metrics.WithNamespace(cfg.Metrics.Namespace),
		))
	}

	demoOpts := demo.Options{
		Sections:  cfg.Demo.Sections,
		Depth:     cfg.Demo.Depth,
		Observers: observers,
	}
	return server.New(srvCfg, func() vdom.Component {
		return demo.NewApp(demoOpts).Component()
	})
}

func runServe(ctx context.Context, opts serveOptions, stdout, stderr io.Writer) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Log, stderr)
	if cfg.Name != "" {
		logger = logger.With("name", cfg.Name)
	}
	slog.SetDefault(logger)
	if path := cfg.Path(); path != "" {
		logger.Info("loaded config", "path", path)
	}

	srv := buildServer(cfg, logger)

	fmt.Fprintf(stdout, "tally listening on http://%s\n", cfg.Address())
	if cfg.Metrics.Enabled {
		fmt.Fprintf(stdout, "  metrics on http://%s%s\n", cfg.Address(), cfg.Metrics.Path)
	}
	return srv.ListenAndServe(ctx)
}
