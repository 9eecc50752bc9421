// Package photostore keeps photo blobs addressed by opaque keys.
//
//go:generate mockgen -package mockphotostore -destination=mock/mockphotostore.go matchup/pkg/photostore Store
package photostore

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotFound is returned when no blob exists under a key.
	ErrNotFound = errors.New("photo not found")
	// ErrInvalidKey is returned for keys that are empty or contain path elements.
	ErrInvalidKey = errors.New("invalid photo key")
)

// Store persists photo blobs.
type Store interface {
	// Put stores the content of r under key, replacing any existing blob.
	Put(ctx context.Context, key string, r io.Reader) error
	// Open returns a reader for the blob stored under key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the blob stored under key. Deleting a missing blob is not
	// an error.
	Delete(ctx context.Context, key string) error
}
