// Package storage declares the persistence contract of matchup. Services only
// depend on these interfaces; pkg/storage/postgres implements them.
//
// Lookups of a single row return (nil, nil) when the row does not exist, and
// deletes report whether a row was removed. Constraint violations surface as
// *ConstraintError.
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go matchup/pkg/storage AllStorage,Storage,TxStorage
package storage

import "context"

// AllStorage groups every entity store. It is what a WithTx callback receives.
type AllStorage interface {
	UserStorage
	PhotoStorage
	HobbyStorage
	LikeStorage
	MessageStorage
	JobStorage
}

// TxStorage is bound to a single open transaction and is unusable once it
// has been committed or rolled back.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the long lived handle created at startup.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin opens a transaction. Callers must Commit or Rollback it.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
