// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cli implements the pulsesim command.
//
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/internal/config"
	"github.com/db47h/pulsesim/internal/logging"
	"github.com/db47h/pulsesim/internal/metrics"
	"github.com/db47h/pulsesim/internal/netlist"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// Exit codes.
//
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ValidFormats lists the output formats.
//
var ValidFormats = []string{"text", "json"}

// usageError marks errors caused by the command line or configuration.
//
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

func usage(err error) error {
	if err == nil {
		return nil
	}
	return usageError{err}
}

// app holds the state shared by all subcommands.
//
type app struct {
	configPath string
	format     string
	flags      config.Config

	cfg  *config.Config
	log  *slog.Logger
	reg  *prometheus.Registry
	coll *metrics.Collector
	srv  *http.Server
}

func (a *app) rootCommand(stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pulsesim",
		Short: "Pulse network simulator",
		Long: `pulsesim simulates networks of broadcaster, flip-flop and conjunction
nodes exchanging low and high pulses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return usage(a.setup(cmd, stderr))
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usage(err) })

	f := cmd.PersistentFlags()
	f.StringVarP(&a.configPath, "config", "c", "", "configuration file (YAML)")
	f.StringVar(&a.format, "format", "text", "output format (text|json)")
	f.StringVarP(&a.flags.Input, "input", "i", "", "network description file (.txt or .yaml)")
	f.StringVarP(&a.flags.Entry, "entry", "e", "", "node receiving button presses")
	f.StringVar(&a.flags.Log.Level, "log-level", "", "log level (debug|info|warn|error)")
	f.StringVar(&a.flags.Log.Format, "log-format", "", "log format (text|json)")
	f.StringVar(&a.flags.Metrics.Addr, "metrics-addr", "", "serve Prometheus metrics on this address")

	cmd.AddCommand(
		a.countCommand(),
		a.searchCommand(),
		a.graphCommand(),
		a.convertCommand(),
	)
	return cmd
}

// setup loads the configuration, applies command line overrides and
// builds the logger and metrics.
//
func (a *app) setup(cmd *cobra.Command, stderr io.Writer) error {
	if !isValidFormat(a.format) {
		return errors.Errorf("invalid format %q: must be one of %v", a.format, ValidFormats)
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("input") {
		cfg.Input = a.flags.Input
	}
	if f.Changed("entry") {
		cfg.Entry = a.flags.Entry
	}
	if f.Changed("log-level") {
		cfg.Log.Level = a.flags.Log.Level
	}
	if f.Changed("log-format") {
		cfg.Log.Format = a.flags.Log.Format
	}
	if f.Changed("metrics-addr") {
		cfg.Metrics.Addr = a.flags.Metrics.Addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Log.Level, cfg.Log.Format, stderr)

	a.reg = prometheus.NewRegistry()
	if a.coll, err = metrics.New(a.reg); err != nil {
		return errors.Wrap(err, "register metrics")
	}
	if cfg.Metrics.Addr != "" {
		a.serveMetrics(cfg.Metrics.Addr)
	}
	return nil
}

func (a *app) serveMetrics(addr string) {
	a.srv = &http.Server{
		Addr:              addr,
		Handler:           metrics.Handler(a.reg),
		ReadHeaderTimeout: 5 * time.Second,
	}
	srv := a.srv
	log := a.log
	go func() {
		log.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server", "error", err)
		}
	}()
}

func (a *app) close() {
	if a.srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.srv.Shutdown(ctx); err != nil {
		a.log.Warn("metrics server shutdown", "error", err)
		_ = a.srv.Close()
	}
	a.srv = nil
}

// network loads the configured network description.
//
func (a *app) network() (*pulsesim.Network, error) {
	specs, err := a.specs()
	if err != nil {
		return nil, err
	}
	n, err := pulsesim.New(specs, pulsesim.WithObserver(a.coll))
	if err != nil {
		return nil, err
	}
	a.log.Debug("network loaded", "input", a.cfg.Input, "nodes", n.Len(), "sinks", len(n.Sinks()))
	return n, nil
}

func (a *app) specs() ([]pulsesim.NodeSpec, error) {
	if a.cfg.Input == "" {
		return nil, usage(errors.New("no network description: use --input or set input in the configuration"))
	}
	return netlist.Load(a.cfg.Input)
}

// noArgs is cobra.NoArgs reporting a usage error.
//
func noArgs(cmd *cobra.Command, args []string) error {
	return usage(cobra.NoArgs(cmd, args))
}

// applied reports whether flag name was set on the command line.
//
func applied(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Main runs the command with the given arguments and returns the process
// exit code.
//
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{}
	cmd := a.rootCommand(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.ExecuteContext(ctx)
	a.close()
	if err == nil {
		return ExitOK
	}
	fmt.Fprintf(stderr, "pulsesim: %v\n", err)
	var ue usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitFailure
}
