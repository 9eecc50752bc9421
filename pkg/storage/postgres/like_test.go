package postgres_test

import (
	"context"
	"matchup/pkg/domain"
	"matchup/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Likes(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	alice := createUser(t, pgSQL, "alice")
	bob := createUser(t, pgSQL, "bob")

	created, err := pgSQL.StoreLike(ctx, domain.Like{LikerID: alice.ID, LikedID: bob.ID})
	require.NoError(t, err)
	require.True(t, created)

	created, err = pgSQL.StoreLike(ctx, domain.Like{LikerID: alice.ID, LikedID: bob.ID})
	require.NoError(t, err)
	require.False(t, created)

	_, err = pgSQL.StoreLike(ctx, domain.Like{LikerID: alice.ID, LikedID: 9999})
	require.ErrorIs(t, err, storage.ErrReference)

	exists, err := pgSQL.LikeExists(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = pgSQL.LikeExists(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	require.False(t, exists)

	deleted, err := pgSQL.DeleteLike(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = pgSQL.DeleteLike(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestPgSQL_Refusals(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	alice := createUser(t, pgSQL, "alice")
	bob := createUser(t, pgSQL, "bob")

	require.NoError(t, pgSQL.StoreRefusal(ctx, domain.Refusal{RefuserID: alice.ID, RefusedID: bob.ID}))
	require.NoError(t, pgSQL.StoreRefusal(ctx, domain.Refusal{RefuserID: alice.ID, RefusedID: bob.ID}))

	users, err := pgSQL.BrowseUsers(ctx, alice.ID, 10)
	require.NoError(t, err)
	require.Empty(t, users)

	require.NoError(t, pgSQL.DeleteRefusal(ctx, alice.ID, bob.ID))
	require.NoError(t, pgSQL.DeleteRefusal(ctx, alice.ID, bob.ID))

	users, err = pgSQL.BrowseUsers(ctx, alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, users, 1)
}
