package profile

import (
	"github.com/riverqueue/river"
)

// PhotoCleanupArgs asks the worker to delete photo blobs whose rows are gone.
type PhotoCleanupArgs struct {
	Keys []string `json:"keys"`
}

// Kind returns the River job kind used to register and dispatch the cleanup worker.
func (PhotoCleanupArgs) Kind() string { return "PhotoCleanupJob" }

// InsertOpts retries blob deletion a few times before giving up; an orphaned
// blob only costs disk space.
func (PhotoCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 5,
	}
}
