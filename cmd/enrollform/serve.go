package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/openapi"
	"github.com/goliatone/go-enrollform/pkg/renderers/jsonstate"
	"github.com/goliatone/go-enrollform/pkg/server"
	"github.com/goliatone/go-enrollform/pkg/theming"
)

func (a *app) serveCmd() *cobra.Command {
	var (
		addr    string
		variant string
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the enrollment page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("variant") {
				a.cfg.Theme.Variant = variant
			}
			if cmd.Flags().Changed("metrics") {
				a.cfg.Metrics.Enabled = metrics
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := a.buildServer(ctx)
			if err != nil {
				return err
			}
			return srv.Run(ctx, a.cfg.Server.Addr, a.cfg.Server.ShutdownGrace.Std())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().StringVar(&variant, "variant", "", "theme variant (overrides theme.variant)")
	cmd.Flags().BoolVar(&metrics, "metrics", true, "expose Prometheus metrics at /metrics")
	return cmd
}

func (a *app) buildServer(ctx context.Context) (*server.Server, error) {
	selector, err := theming.NewSelector()
	if err != nil {
		return nil, err
	}
	selection, err := selector.Select(a.cfg.Theme.Name, a.cfg.Theme.Variant)
	if err != nil {
		return nil, err
	}

	contract, err := openapi.Load(ctx)
	if err != nil {
		return nil, err
	}

	decorators, err := a.formDecorators()
	if err != nil {
		return nil, err
	}

	initial := model.DefaultValues()
	initial.Country = a.cfg.Form.DefaultCountry

	options := []server.Option{
		server.WithDecorators(decorators...),
		server.WithLogger(a.logger),
		server.WithTheme(theming.Config(selection)),
		server.WithTargetRoute(a.cfg.Form.TargetRoute),
		server.WithCountries(a.cfg.Form.Countries),
		server.WithInitialValues(initial),
		server.WithContract(contract),
		server.WithRenderer(jsonstate.New("")),
	}
	if a.cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		options = append(options, server.WithMetrics(a.cfg.Metrics.Namespace, registry, registry))
	}

	srv, err := server.New(options...)
	if err != nil {
		return nil, fmt.Errorf("build server: %w", err)
	}
	a.logger.Debug("server configured",
		zap.String("theme", selection.Theme),
		zap.String("variant", selection.Variant),
		zap.String("target", a.cfg.Form.TargetRoute),
		zap.Bool("metrics", a.cfg.Metrics.Enabled),
	)
	return srv, nil
}
