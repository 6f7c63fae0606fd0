package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/iconkit/pkg/gallery"
	"github.com/dmitrymomot/iconkit/pkg/httpserver"
	"github.com/dmitrymomot/iconkit/pkg/logger"
)

func newServeCmd(load configLoader) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the icon gallery HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			log := logger.New(append(loggerOptions(cfg, cmd.ErrOrStderr()),
				logger.WithContextExtractors(gallery.RequestIDExtractor()))...)

			a, err := openApp(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			g := gallery.New(a.catalog,
				gallery.WithLogger(log),
				gallery.WithCacheSize(cfg.CacheSize),
				gallery.WithReadinessChecks(a.checks...),
			)
			srv := httpserver.NewFromConfig(cfg.HTTP,
				httpserver.WithLogger(log),
				httpserver.WithSignals(),
				httpserver.WithShutdownHook(func(context.Context) error { return a.Close() }),
			)
			return srv.Run(cmd.Context(), g.Handler())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (env ICONKIT_HTTP_ADDR)")
	return cmd
}
