package storage

import (
	"context"
	"matchup/pkg/domain"
)

// LikeStorage defines operations on likes and refusals.
type LikeStorage interface {
	// StoreLike inserts a like. It returns false without error when the like
	// already exists. Unknown users are reported as *ConstraintError.
	StoreLike(ctx context.Context, like domain.Like) (bool, error)
	// LikeExists reports whether likerID likes likedID.
	LikeExists(ctx context.Context, likerID, likedID domain.UserID) (bool, error)
	// DeleteLike removes a like and reports whether it existed.
	DeleteLike(ctx context.Context, likerID, likedID domain.UserID) (bool, error)
	// StoreRefusal records a refusal. Storing an existing refusal is a no-op.
	StoreRefusal(ctx context.Context, refusal domain.Refusal) error
	// DeleteRefusal removes a refusal if present.
	DeleteRefusal(ctx context.Context, refuserID, refusedID domain.UserID) error
}
