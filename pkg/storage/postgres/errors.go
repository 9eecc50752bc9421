package postgres

import (
	"errors"
	"matchup/pkg/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNoJobClient is returned by EnqueueJobs on a PgSQL not created by New.
var ErrNoJobClient = errors.New("postgres storage has no job client")

// constraintErr converts unique and foreign key violations into
// *storage.ConstraintError. Other errors are returned unchanged.
func constraintErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return &storage.ConstraintError{Kind: storage.ErrDuplicate, Constraint: pgErr.ConstraintName, Err: err}
	case pgerrcode.ForeignKeyViolation:
		return &storage.ConstraintError{Kind: storage.ErrReference, Constraint: pgErr.ConstraintName, Err: err}
	default:
		return err
	}
}
