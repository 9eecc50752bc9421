package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"matchup/pkg/domain"
	"matchup/pkg/storage"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Photos(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	alice := createUser(t, pgSQL, "alice")
	bob := createUser(t, pgSQL, "bob")

	p1, err := pgSQL.StorePhoto(ctx, domain.Photo{
		UserID:      alice.ID,
		URL:         "http://localhost/photos/a1.png",
		Key:         "a1.png",
		ContentType: "image/png",
	})
	require.NoError(t, err)
	require.NotZero(t, p1.ID)
	require.Equal(t, "a1.png", p1.Key)

	_, err = pgSQL.StorePhoto(ctx, domain.Photo{UserID: bob.ID, URL: "b1", Key: "b1.jpg", ContentType: "image/jpeg"})
	require.NoError(t, err)

	count, err := pgSQL.PhotoCount(ctx, alice.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	photos, err := pgSQL.UserPhotos(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, photos, 2)

	photos, err = pgSQL.UserPhotos(ctx)
	require.NoError(t, err)
	require.Empty(t, photos)

	byKey, err := pgSQL.PhotoByKey(ctx, "a1.png")
	require.NoError(t, err)
	require.Equal(t, p1.ID, byKey.ID)

	t.Run("delete photo of another user", func(t *testing.T) {
		deleted, err := pgSQL.DeletePhoto(ctx, bob.ID, p1.ID)
		require.NoError(t, err)
		require.Nil(t, deleted)
	})

	t.Run("delete own photo", func(t *testing.T) {
		deleted, err := pgSQL.DeletePhoto(ctx, alice.ID, p1.ID)
		require.NoError(t, err)
		require.Equal(t, "a1.png", deleted.Key)

		missing, err := pgSQL.PhotoByKey(ctx, "a1.png")
		require.NoError(t, err)
		require.Nil(t, missing)
	})
}

func TestPgSQL_PhotoCountLocksUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	carol := createUser(t, pgSQL, "carol")
	errLimit := errors.New("limit reached")

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Go(func() {
			errs[i] = pgSQL.WithTx(ctx, func(tx storage.AllStorage) error {
				count, err := tx.PhotoCount(ctx, carol.ID)
				if err != nil {
					return err
				}
				if count >= 1 {
					return errLimit
				}
				// widen the window between count and insert
				time.Sleep(50 * time.Millisecond)

				_, err = tx.StorePhoto(ctx, domain.Photo{
					UserID:      carol.ID,
					URL:         fmt.Sprintf("c%d", i),
					Key:         fmt.Sprintf("c%d.png", i),
					ContentType: "image/png",
				})

				return err
			})
		})
	}
	wg.Wait()

	stored := 0
	for _, err := range errs {
		if err == nil {
			stored++

			continue
		}
		require.ErrorIs(t, err, errLimit)
	}
	require.Equal(t, 1, stored)

	count, err := pgSQL.PhotoCount(ctx, carol.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
