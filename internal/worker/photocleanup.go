package worker

import (
	"context"
	"errors"
	"fmt"
	"matchup/internal/profile"
	"matchup/pkg/logger"
	"matchup/pkg/photostore"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// PhotoCleanupWorker deletes photo blobs after their rows have been removed.
// Keys that fail with a transient error make the job retry; keys that were
// already deleted are skipped, so retries are safe.
type PhotoCleanupWorker struct {
	river.WorkerDefaults[profile.PhotoCleanupArgs]

	photos photostore.Store
}

func NewPhotoCleanupWorker(photos photostore.Store) *PhotoCleanupWorker {
	return &PhotoCleanupWorker{photos: photos}
}

func (w *PhotoCleanupWorker) Work(ctx context.Context, job *river.Job[profile.PhotoCleanupArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int("keys", len(job.Args.Keys)))

	var errs []error
	for _, key := range job.Args.Keys {
		err := w.photos.Delete(ctx, key)
		switch {
		case err == nil:
		case errors.Is(err, photostore.ErrInvalidKey):
			logger.Warn(ctx, "skipping invalid photo key", zap.String("key", key))
		default:
			errs = append(errs, fmt.Errorf("could not delete photo %q: %w", key, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		logger.Error(ctx, "error in deleting photos", zap.Error(err))

		return err
	}

	logger.Debug(ctx, "photos deleted")

	return nil
}
