package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs next to the rows they refer to.
type JobStorage interface {
	// EnqueueJobs inserts jobs into the queue. Inside a transaction the jobs
	// become visible to workers only after commit. It returns the number of
	// jobs inserted; unique jobs that already exist are not counted.
	EnqueueJobs(ctx context.Context, jobs ...river.JobArgs) (int, error)
}
