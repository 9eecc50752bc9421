package postgres_test

import (
	"context"
	"fmt"
	"matchup/pkg/domain"
	"matchup/pkg/storage/postgres"
	"testing"

	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, pg *postgres.PgSQL, login string) *domain.User {
	t.Helper()

	user, err := pg.StoreUser(context.Background(), domain.User{
		Login:        login,
		Email:        fmt.Sprintf("%s@example.com", login),
		PasswordHash: "hash",
		FirstName:    "First " + login,
		LastName:     "Last " + login,
	})
	require.NoError(t, err)

	return user
}

func createHobby(t *testing.T, pg *postgres.PgSQL, category, name string) *domain.Hobby {
	t.Helper()
	ctx := context.Background()

	var categoryID domain.CategoryID
	categories, err := pg.Categories(ctx)
	require.NoError(t, err)
	for _, c := range categories {
		if c.Name == category {
			categoryID = c.ID
		}
	}
	if categoryID == 0 {
		c, err := pg.StoreCategory(ctx, domain.Category{Name: category})
		require.NoError(t, err)
		categoryID = c.ID
	}

	hobby, err := pg.StoreHobby(ctx, domain.Hobby{Name: name, CategoryID: categoryID})
	require.NoError(t, err)

	return hobby
}
