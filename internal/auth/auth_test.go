package auth_test

import (
	"context"
	"errors"
	"matchup/internal/auth"
	mockauth "matchup/internal/auth/mock"
	"matchup/pkg/domain"
	"matchup/pkg/serrors"
	"matchup/pkg/storage"
	mockstorage "matchup/pkg/storage/mock"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthenticator(t *testing.T) (*mockstorage.MockStorage, *mockauth.MockTokenIssuer, auth.Authenticator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	tokens := mockauth.NewMockTokenIssuer(ctrl)
	a := auth.New(st, tokens, auth.Options{BcryptCost: bcrypt.MinCost, TokenTTL: time.Hour})

	return st, tokens, a
}

func hashOf(t *testing.T, password string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(h)
}

func TestAuthenticator_Register(t *testing.T) {
	input := auth.RegisterInput{
		Login:     "alice",
		Email:     "alice@example.com",
		Password:  "Secret#123",
		FirstName: "Alice",
		LastName:  "Liddell",
	}

	t.Run("success hashes the password", func(t *testing.T) {
		st, _, a := newTestAuthenticator(t)

		st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u domain.User) (*domain.User, error) {
				require.Equal(t, "alice", u.Login)
				require.NotEqual(t, input.Password, u.PasswordHash)
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)))
				u.ID = 7

				return &u, nil
			})

		user, err := a.Register(context.Background(), input)
		require.NoError(t, err)
		require.Equal(t, domain.UserID(7), user.ID)
	})

	conflicts := []struct {
		constraint string
		message    string
	}{
		{storage.ConstraintUserLogin, "Login already exists"},
		{storage.ConstraintUserEmail, "Email already exists"},
	}
	for _, c := range conflicts {
		t.Run(c.message, func(t *testing.T) {
			st, _, a := newTestAuthenticator(t)

			st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).Return(nil, &storage.ConstraintError{
				Kind:       storage.ErrDuplicate,
				Constraint: c.constraint,
				Err:        errors.New("pg"),
			})

			_, err := a.Register(context.Background(), input)
			require.ErrorIs(t, err, serrors.ErrConflict)

			var sErr *serrors.Error
			require.ErrorAs(t, err, &sErr)
			require.Equal(t, c.message, sErr.Message())
		})
	}

	t.Run("other storage error", func(t *testing.T) {
		st, _, a := newTestAuthenticator(t)

		st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := a.Register(context.Background(), input)
		require.ErrorIs(t, err, serrors.ErrInternal)

		var sErr *serrors.Error
		require.ErrorAs(t, err, &sErr)
		require.Equal(t, "Failed to register user", sErr.Message())
	})
}

func TestAuthenticator_Login(t *testing.T) {
	user := &domain.User{ID: 3, Login: "bob", PasswordHash: hashOf(t, "Secret#123")}

	t.Run("success", func(t *testing.T) {
		st, tokens, a := newTestAuthenticator(t)

		st.EXPECT().UserByLogin(gomock.Any(), "bob").Return(user, nil)
		tokens.EXPECT().Issue(domain.UserID(3), time.Hour).Return("signed", time.Now().Add(time.Hour), nil)

		tok, err := a.Login(context.Background(), "bob", "Secret#123")
		require.NoError(t, err)
		require.Equal(t, "signed", tok.AccessToken)
		require.Equal(t, auth.TokenType, tok.TokenType)
		require.InDelta(t, time.Hour.Seconds(), tok.ExpiresIn.Seconds(), 2)
	})

	t.Run("unknown login", func(t *testing.T) {
		st, _, a := newTestAuthenticator(t)

		st.EXPECT().UserByLogin(gomock.Any(), "nobody").Return(nil, nil)

		_, err := a.Login(context.Background(), "nobody", "Secret#123")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
		require.EqualError(t, err, "Invalid credentials")
	})

	t.Run("wrong password", func(t *testing.T) {
		st, _, a := newTestAuthenticator(t)

		st.EXPECT().UserByLogin(gomock.Any(), "bob").Return(user, nil)

		_, err := a.Login(context.Background(), "bob", "wrong")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)

		var sErr *serrors.Error
		require.ErrorAs(t, err, &sErr)
		require.Equal(t, "Invalid credentials", sErr.Message())
	})

	t.Run("issuer failure", func(t *testing.T) {
		st, tokens, a := newTestAuthenticator(t)

		st.EXPECT().UserByLogin(gomock.Any(), "bob").Return(user, nil)
		tokens.EXPECT().Issue(gomock.Any(), gomock.Any()).Return("", time.Time{}, errors.New("boom"))

		_, err := a.Login(context.Background(), "bob", "Secret#123")
		require.Error(t, err)
		require.NotErrorIs(t, err, serrors.ErrUnauthorized)
	})
}

func TestAuthenticator_ChangePassword(t *testing.T) {
	user := &domain.User{ID: 3, Login: "bob", PasswordHash: hashOf(t, "Secret#123")}

	t.Run("success", func(t *testing.T) {
		st, _, a := newTestAuthenticator(t)

		st.EXPECT().UserByID(gomock.Any(), domain.UserID(3)).Return(user, nil)
		st.EXPECT().UpdateUser(gomock.Any(), domain.UserID(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
				require.NotNil(t, updates.PasswordHash)
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(*updates.PasswordHash), []byte("Newer#456")))

				return user, nil
			})

		require.NoError(t, a.ChangePassword(context.Background(), 3, "Secret#123", "Newer#456"))
	})

	t.Run("wrong current password", func(t *testing.T) {
		st, _, a := newTestAuthenticator(t)

		st.EXPECT().UserByID(gomock.Any(), domain.UserID(3)).Return(user, nil)

		err := a.ChangePassword(context.Background(), 3, "nope", "Newer#456")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("user gone", func(t *testing.T) {
		st, _, a := newTestAuthenticator(t)

		st.EXPECT().UserByID(gomock.Any(), domain.UserID(3)).Return(nil, nil)

		err := a.ChangePassword(context.Background(), 3, "Secret#123", "Newer#456")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}
