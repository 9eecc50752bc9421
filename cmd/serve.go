package main

import (
	"context"
	"errors"
	"matchup/internal/api"
	"matchup/internal/api/handler/v1handler"
	"matchup/internal/auth"
	"matchup/internal/config"
	"matchup/internal/hobby"
	"matchup/internal/match"
	"matchup/internal/message"
	"matchup/internal/profile"
	"matchup/internal/worker"
	"matchup/pkg/logger"
	"matchup/pkg/metrics"
	"matchup/pkg/photostore"
	"matchup/pkg/storage/postgres"
	"matchup/pkg/token"
	"matchup/pkg/tracing"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorker(
	ctx context.Context, cfg *config.Config, strg *postgres.PgSQL, photos photostore.Store,
) func(ctx context.Context) {
	riverClient, err := worker.Start(ctx, strg.Pool, photos, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

// newDeps builds the services behind the HTTP API.
func newDeps(
	ctx context.Context, cfg *config.Config, strg *postgres.PgSQL, photos photostore.Store,
	registry *prometheus.Registry, meter metric.Meter, tracer trace.Tracer,
) api.Deps {
	tokens, err := token.NewManager(token.Options{
		PrivateKeyPEM: cfg.JWT.PrivateKey,
		TTL:           cfg.JWT.TTL,
		Issuer:        cfg.JWT.Issuer,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create token manager", zap.Error(err))
	}

	matcher, err := match.New(strg, match.NewOptions(cfg, meter))
	if err != nil {
		logger.Fatal(ctx, "could not create matcher", zap.Error(err))
	}

	return api.Deps{
		Deps: v1handler.Deps{
			Auth:      auth.New(strg, tokens, auth.NewOptions(cfg)),
			Profiles:  profile.New(strg, photos, profile.NewOptions(cfg)),
			Hobbies:   hobby.New(strg, hobby.Options{}),
			Matcher:   matcher,
			Messenger: message.New(strg, message.NewOptions(cfg)),
		},
		Tokens:   tokens,
		Gatherer: registry,
		Meter:    meter,
		Tracer:   tracer,
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			photos, err := photostore.NewFS(cfg.Photos.Dir)
			if err != nil {
				logger.Fatal(ctx, "could not open photo store", zap.Error(err))
			}
			defer func() { _ = photos.Close() }()

			registry, meterProvider, err := metrics.NewProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			tracerProvider := tracing.NewProvider(tracing.Options{
				ServiceName: "matchup",
				SampleRatio: cfg.Tracing.SampleRatio,
			}, logger.Default())
			otel.SetTracerProvider(tracerProvider)

			// workers are stopped explicitly during shutdown
			stopWorker := setupWorker(context.WithoutCancel(ctx), cfg, strg, photos)
			deps := newDeps(ctx, cfg, strg, photos, registry, meterProvider.Meter("matchup"),
				tracerProvider.Tracer("matchup/api"))
			stopWebserver := setupServer(ctx, cfg, deps)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shutdown meter provider", zap.Error(err))
			}
			if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shutdown tracer provider", zap.Error(err))
			}
		},
	}

	return cmd
}
