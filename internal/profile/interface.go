package profile

import (
	"context"
	"io"
	"matchup/pkg/domain"
)

// Edit lists the profile fields to change. Nil fields are left untouched; an
// empty PhoneNumber clears it.
type Edit struct {
	Login       *string
	Email       *string
	PhoneNumber *string
	FirstName   *string
	LastName    *string
}

// IsEmpty reports whether the edit changes nothing.
func (e Edit) IsEmpty() bool {
	return e.Login == nil && e.Email == nil && e.PhoneNumber == nil && e.FirstName == nil && e.LastName == nil
}

//go:generate mockgen -package mockprofile -destination=mock/mockprofile.go matchup/internal/profile Profiles
type Profiles interface {
	Get(ctx context.Context, userID domain.UserID) (*domain.User, error)
	Edit(ctx context.Context, userID domain.UserID, edit Edit) (*domain.User, error)
	Delete(ctx context.Context, userID domain.UserID) error

	Photos(ctx context.Context, userID domain.UserID) ([]domain.Photo, error)
	AddPhoto(ctx context.Context, userID domain.UserID, r io.Reader) (*domain.Photo, error)
	DeletePhoto(ctx context.Context, userID domain.UserID, photoID domain.PhotoID) error
	// OpenPhoto returns the blob stored under key and its content type.
	OpenPhoto(ctx context.Context, key string) (io.ReadCloser, string, error)
}
