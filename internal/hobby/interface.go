package hobby

import (
	"context"
	"matchup/pkg/domain"
)

//go:generate mockgen -package mockhobby -destination=mock/mockhobby.go matchup/internal/hobby Hobbies
type Hobbies interface {
	Get(ctx context.Context, ID domain.HobbyID) (*domain.Hobby, error)
	Create(ctx context.Context, hobby domain.Hobby) (*domain.Hobby, error)
	Update(ctx context.Context, hobby domain.Hobby) (*domain.Hobby, error)
	Delete(ctx context.Context, ID domain.HobbyID) error
	Search(ctx context.Context, query string) ([]domain.Hobby, error)

	Categories(ctx context.Context) ([]domain.Category, error)
	Category(ctx context.Context, ID domain.CategoryID) (*domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, ID domain.CategoryID) error

	UserHobbies(ctx context.Context, userID domain.UserID) ([]domain.Hobby, error)
	AddUserHobbies(ctx context.Context, userID domain.UserID, IDs []domain.HobbyID) ([]domain.Hobby, error)
	EditUserHobbies(ctx context.Context, userID domain.UserID, IDs []domain.HobbyID) ([]domain.Hobby, error)
	DeleteUserHobbies(ctx context.Context, userID domain.UserID, IDs []domain.HobbyID) error
}
