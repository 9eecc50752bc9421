package storage

import (
	"context"
	"matchup/pkg/domain"
)

// HobbyStorage defines operations on the hobby catalog, categories and the
// user to hobby association.
type HobbyStorage interface {
	// StoreHobby inserts a hobby. Duplicate names and unknown categories are
	// reported as *ConstraintError.
	StoreHobby(ctx context.Context, hobby domain.Hobby) (*domain.Hobby, error)
	// HobbyByID returns the hobby or nil when not found.
	HobbyByID(ctx context.Context, ID domain.HobbyID) (*domain.Hobby, error)
	// UpdateHobby replaces name and category of a hobby and returns the updated
	// row, or nil when not found.
	UpdateHobby(ctx context.Context, hobby domain.Hobby) (*domain.Hobby, error)
	// DeleteHobby deletes a hobby and reports whether a row was deleted.
	DeleteHobby(ctx context.Context, ID domain.HobbyID) (bool, error)
	// SearchHobbies returns hobbies whose name or category name contains query,
	// case-insensitively, ordered by name.
	SearchHobbies(ctx context.Context, query string, limit uint) ([]domain.Hobby, error)
	// HobbiesByCategory returns the hobbies of the given categories ordered by name.
	HobbiesByCategory(ctx context.Context, IDs ...domain.CategoryID) ([]domain.Hobby, error)

	// StoreCategory inserts a category.
	StoreCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	// CategoryByID returns the category without hobbies, or nil when not found.
	CategoryByID(ctx context.Context, ID domain.CategoryID) (*domain.Category, error)
	// Categories returns all categories ordered by name, without hobbies.
	Categories(ctx context.Context) ([]domain.Category, error)
	// UpdateCategory renames a category and returns it, or nil when not found.
	UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	// DeleteCategory deletes a category and reports whether a row was deleted.
	// Categories still referenced by hobbies are reported as *ConstraintError.
	DeleteCategory(ctx context.Context, ID domain.CategoryID) (bool, error)

	// UserHobbies returns the hobbies attached to a user ordered by name.
	UserHobbies(ctx context.Context, userID domain.UserID) ([]domain.Hobby, error)
	// AddUserHobbies attaches hobbies to a user. Already attached hobbies are
	// ignored; unknown hobbies are reported as *ConstraintError.
	AddUserHobbies(ctx context.Context, userID domain.UserID, IDs ...domain.HobbyID) error
	// RemoveUserHobbies detaches hobbies from a user and returns the number of
	// removed links.
	RemoveUserHobbies(ctx context.Context, userID domain.UserID, IDs ...domain.HobbyID) (int64, error)
}
