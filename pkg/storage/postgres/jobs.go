package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// EnqueueJobs batches jobs into a single insert. Inside a transaction the
// insert joins it; otherwise it runs in its own transaction.
func (p *PgSQL) EnqueueJobs(ctx context.Context, jobs ...river.JobArgs) (int, error) {
	if len(jobs) == 0 {
		return 0, nil
	}
	if p.jobs == nil {
		return 0, ErrNoJobClient
	}

	params := make([]river.InsertManyParams, 0, len(jobs))
	for _, args := range jobs {
		params = append(params, river.InsertManyParams{Args: args})
	}

	tx, inTx := p.DB.(*sql.Tx)
	if !inTx {
		results, err := p.jobs.InsertMany(ctx, params)
		if err != nil {
			return 0, fmt.Errorf("could not insert jobs: %w", err)
		}

		return countInserted(results), nil
	}

	results, err := p.jobs.InsertManyTx(ctx, tx, params)
	if err != nil {
		return 0, fmt.Errorf("could not insert jobs: %w", err)
	}

	return countInserted(results), nil
}

func countInserted(results []*rivertype.JobInsertResult) int {
	n := 0
	for _, res := range results {
		if !res.UniqueSkippedAsDuplicate {
			n++
		}
	}

	return n
}
