package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"matchup/pkg/domain"
	"matchup/pkg/storage"
	"matchup/pkg/storage/postgres"
	"testing"

	"github.com/stretchr/testify/require"
)

func newUser(login string) domain.User {
	return domain.User{
		Login:        login,
		Email:        login + "@example.com",
		PasswordHash: "hash",
		FirstName:    "First",
		LastName:     "Last",
	}
}

func TestPgSQL_Transactions(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("not in tx", func(t *testing.T) {
		require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
		require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
	})

	t.Run("nested begin", func(t *testing.T) {
		tx, err := pg.Begin(ctx)
		require.NoError(t, err)
		defer func() { require.NoError(t, tx.Rollback()) }()

		_, isTx := tx.(*postgres.PgSQL).DB.(*sql.Tx)
		require.True(t, isTx)

		_, err = tx.(*postgres.PgSQL).Begin(ctx)
		require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	})

	t.Run("commit", func(t *testing.T) {
		tx, err := pg.Begin(ctx)
		require.NoError(t, err)
		_, err = tx.StoreUser(ctx, newUser("committed"))
		require.NoError(t, err)

		// invisible outside the transaction until commit
		user, err := pg.UserByLogin(ctx, "committed")
		require.NoError(t, err)
		require.Nil(t, user)

		require.NoError(t, tx.Commit())
		user, err = pg.UserByLogin(ctx, "committed")
		require.NoError(t, err)
		require.NotNil(t, user)
	})

	t.Run("rollback", func(t *testing.T) {
		tx, err := pg.Begin(ctx)
		require.NoError(t, err)
		_, err = tx.StoreUser(ctx, newUser("rolledback"))
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		user, err := pg.UserByLogin(ctx, "rolledback")
		require.NoError(t, err)
		require.Nil(t, user)
	})

	t.Run("WithTx", func(t *testing.T) {
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.StoreUser(ctx, newUser("withtx"))

			return err //nolint: wrapcheck
		})
		require.NoError(t, err)
		user, err := pg.UserByLogin(ctx, "withtx")
		require.NoError(t, err)
		require.NotNil(t, user)

		boom := errors.New("boom")
		err = pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.StoreUser(ctx, newUser("withtx-failed"))
			require.NoError(t, err)

			return boom
		})
		require.ErrorIs(t, err, boom)
		user, err = pg.UserByLogin(ctx, "withtx-failed")
		require.NoError(t, err)
		require.Nil(t, user)
	})
}
