package worker_test

import (
	"context"
	"errors"
	"matchup/internal/profile"
	"matchup/internal/worker"
	"matchup/pkg/photostore"
	mockphotostore "matchup/pkg/photostore/mock"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func makeJob(id int64, keys ...string) *river.Job[profile.PhotoCleanupArgs] {
	return &river.Job[profile.PhotoCleanupArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   profile.PhotoCleanupArgs{Keys: keys},
	}
}

func TestPhotoCleanupWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	photos := mockphotostore.NewMockStore(ctrl)
	w := worker.NewPhotoCleanupWorker(photos)

	photos.EXPECT().Delete(gomock.Any(), "a.png").Return(nil)
	photos.EXPECT().Delete(gomock.Any(), "b.jpg").Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, "a.png", "b.jpg")))
}

func TestPhotoCleanupWorker_Work_SkipsInvalidKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	photos := mockphotostore.NewMockStore(ctrl)
	w := worker.NewPhotoCleanupWorker(photos)

	photos.EXPECT().Delete(gomock.Any(), "../etc").Return(photostore.ErrInvalidKey)
	photos.EXPECT().Delete(gomock.Any(), "c.webp").Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(2, "../etc", "c.webp")))
}

func TestPhotoCleanupWorker_Work_RetriesOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	photos := mockphotostore.NewMockStore(ctrl)
	w := worker.NewPhotoCleanupWorker(photos)

	diskErr := errors.New("disk on fire")
	photos.EXPECT().Delete(gomock.Any(), "a.png").Return(diskErr)
	photos.EXPECT().Delete(gomock.Any(), "b.png").Return(nil)

	err := w.Work(context.Background(), makeJob(3, "a.png", "b.png"))
	require.ErrorIs(t, err, diskErr)
}

func TestNewWorkers_RegistersCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	workers := worker.NewWorkers(mockphotostore.NewMockStore(ctrl))
	require.NotNil(t, workers)
}
