package match

import (
	"context"
	"matchup/pkg/domain"
)

//go:generate mockgen -package mockmatch -destination=mock/mockmatch.go matchup/internal/match Matcher
type Matcher interface {
	// Accept records that liker likes liked and reports whether this completed
	// a match.
	Accept(ctx context.Context, liker, liked domain.UserID) (bool, error)
	Refuse(ctx context.Context, refuser, refused domain.UserID) error
	Browse(ctx context.Context, userID domain.UserID, limit uint) ([]domain.User, error)
	Matches(ctx context.Context, userID domain.UserID) ([]domain.User, error)
}
