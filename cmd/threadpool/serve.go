package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/maxtek/threadpool/api/v1"
	"github.com/maxtek/threadpool/internal/config"
	"github.com/maxtek/threadpool/internal/handlers"
	"github.com/maxtek/threadpool/internal/server"
	srvErrors "github.com/maxtek/threadpool/pkg/errors"
	"github.com/maxtek/threadpool/pkg/threadpool"
)

const shutdownTimeout = 10 * time.Second

func NewServeCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start a pool and expose its status and metrics over HTTP",
		Long: `Start a pool and expose it over HTTP until SIGINT or SIGTERM.

  GET  /api/v1/pool           pool status (workers, busy, queued, active)
  POST /api/v1/pool/demo      run the producer/consumer demo on the pool
  POST /api/v1/pool/shutdown  shut the pool down
  GET  /metrics               prometheus metrics
  GET  /health                health check

The demo endpoint is the only source of pool work; it uses the demo flags
below and needs --workers >= --producers + --consumers.`,
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if err := cfg.Demo.Validate(); err != nil {
				return fmt.Errorf("failed to validate demo configuration: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			metrics := threadpool.NewMetrics(registry, cfg.Pool.MetricsNamespace)

			pool, err := newPool(cfg.Pool, metrics)
			if err != nil {
				return err
			}

			h := handlers.New(pool, cfg.Demo)
			srv := server.NewServer(cfg.Server,
				promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
				func(router *gin.RouterGroup) {
					v1.RegisterHandlers(router, h)
				},
			)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start(ctx)
			}()

			zap.S().Infow("server started", "port", cfg.Server.HTTPPort, "pool", pool.Name(), "workers", pool.Workers())

			var runErr error
			select {
			case <-ctx.Done():
				zap.S().Info("shutdown signal received")
			case runErr = <-errCh:
				if runErr != nil {
					runErr = fmt.Errorf("server failed: %w", runErr)
				}
			}

			stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer stopCancel()
			if err := srv.Stop(stopCtx); err != nil {
				zap.S().Errorw("failed to stop server", "error", err)
			}

			if err := pool.Shutdown(); err != nil && !srvErrors.IsAlreadyShutdownError(err) {
				runErr = errors.Join(runErr, err)
			}
			zap.S().Info("pool stopped")

			return runErr
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Server.ServerMode, "server-mode", cfg.Server.ServerMode, "Server mode: 'dev' or 'prod'")
	flags.IntVar(&cfg.Server.HTTPPort, "http-port", cfg.Server.HTTPPort, "HTTP listen port")
	registerDemoFlags(flags, &cfg.Demo)

	return cmd
}
