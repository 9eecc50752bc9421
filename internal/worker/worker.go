package worker

import (
	"context"
	"fmt"
	"log/slog"
	"matchup/internal/config"
	"matchup/pkg/logger"
	"matchup/pkg/photostore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

type Options struct {
	MaxWorkers int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers: cfg.Worker.MaxWorkers,
	}
}

// NewWorkers registers every job worker of the application.
func NewWorkers(photos photostore.Store) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewPhotoCleanupWorker(photos))

	return workers
}

// Start creates a River client on dbPool and starts working the default queue.
func Start(
	ctx context.Context, dbPool *pgxpool.Pool, photos photostore.Store, options Options,
) (*river.Client[pgx.Tx], error) {
	if options.MaxWorkers <= 0 {
		options.MaxWorkers = 10
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: NewWorkers(photos),
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
