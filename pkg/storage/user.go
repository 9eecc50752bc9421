package storage

import (
	"context"
	"matchup/pkg/domain"
)

// UserUpdates describes a set of optional fields that can be applied to an
// existing user. Only non-nil fields will be updated. An empty PhoneNumber
// clears the column.
type UserUpdates struct {
	Login        *string
	Email        *string
	PhoneNumber  *string
	FirstName    *string
	LastName     *string
	PasswordHash *string
}

// IsEmpty reports whether no field is set.
func (u UserUpdates) IsEmpty() bool {
	return u.Login == nil && u.Email == nil && u.PhoneNumber == nil &&
		u.FirstName == nil && u.LastName == nil && u.PasswordHash == nil
}

// UserStorage defines CRUD and query operations related to users. User rows
// returned by this interface never carry photos; see PhotoStorage.
type UserStorage interface {
	// StoreUser inserts a user and returns the stored row including generated
	// fields. Unique violations are reported as *ConstraintError.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns the user with the given ID, or nil when not found.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UserByLogin returns the user with the given login, or nil when not found.
	UserByLogin(ctx context.Context, login string) (*domain.User, error)
	// UpdateUser applies the provided fields and returns the updated row, or nil
	// when the user does not exist. updated_at is set automatically.
	UpdateUser(ctx context.Context, ID domain.UserID, updates UserUpdates) (*domain.User, error)
	// DeleteUser deletes the user. Dependent rows are removed by cascading
	// foreign keys. It reports whether a row was deleted.
	DeleteUser(ctx context.Context, ID domain.UserID) (bool, error)
	// BrowseUsers returns up to limit users in random order, excluding userID,
	// users liked or refused by userID and, when userID has hobbies, users that
	// share none of them.
	BrowseUsers(ctx context.Context, userID domain.UserID, limit uint) ([]domain.User, error)
	// MatchedUsers returns users that like userID and are liked back by userID.
	MatchedUsers(ctx context.Context, userID domain.UserID) ([]domain.User, error)
}

// PhotoStorage defines operations on user photo rows.
type PhotoStorage interface {
	// StorePhoto inserts a photo row and returns it.
	StorePhoto(ctx context.Context, photo domain.Photo) (*domain.Photo, error)
	// UserPhotos returns the photos of all given users ordered by creation.
	UserPhotos(ctx context.Context, userIDs ...domain.UserID) ([]domain.Photo, error)
	// PhotoCount returns the number of photos the user owns.
	PhotoCount(ctx context.Context, userID domain.UserID) (int64, error)
	// PhotoByKey returns the photo stored under the given blob key, or nil.
	PhotoByKey(ctx context.Context, key string) (*domain.Photo, error)
	// DeletePhoto deletes a photo owned by userID and returns the deleted row,
	// or nil if it was not found.
	DeletePhoto(ctx context.Context, userID domain.UserID, ID domain.PhotoID) (*domain.Photo, error)
}
