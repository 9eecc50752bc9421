package profile_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"matchup/internal/profile"
	"matchup/pkg/domain"
	"matchup/pkg/photostore"
	mockphotostore "matchup/pkg/photostore/mock"
	"matchup/pkg/serrors"
	"matchup/pkg/storage"
	mockstorage "matchup/pkg/storage/mock"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...) //nolint: gochecknoglobals

type testEnv struct {
	ctrl   *gomock.Controller
	st     *mockstorage.MockStorage
	photos *mockphotostore.MockStore
	svc    profile.Profiles
}

func newTestProfiles(t *testing.T) testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	photos := mockphotostore.NewMockStore(ctrl)

	return testEnv{
		ctrl:   ctrl,
		st:     st,
		photos: photos,
		svc: profile.New(st, photos, profile.Options{
			PublicBaseURL: "http://localhost:8080/photos/",
			MaxBytes:      1024,
			MaxPerUser:    6,
		}),
	}
}

func expectWithTx(env testEnv, fn func(tx *mockstorage.MockAllStorage)) {
	env.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(env.ctrl)
			fn(tx)

			return cb(tx)
		})
}

func TestProfiles_Get(t *testing.T) {
	t.Run("with photos", func(t *testing.T) {
		env := newTestProfiles(t)

		env.st.EXPECT().UserByID(gomock.Any(), domain.UserID(1)).Return(&domain.User{ID: 1, Login: "alice"}, nil)
		env.st.EXPECT().UserPhotos(gomock.Any(), domain.UserID(1)).Return([]domain.Photo{{ID: 5, UserID: 1}}, nil)

		user, err := env.svc.Get(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, user.Photos, 1)
	})

	t.Run("not found", func(t *testing.T) {
		env := newTestProfiles(t)

		env.st.EXPECT().UserByID(gomock.Any(), domain.UserID(1)).Return(nil, nil)

		_, err := env.svc.Get(context.Background(), 1)
		require.ErrorIs(t, err, serrors.ErrNotFound)
		require.EqualError(t, err, "User not found")
	})
}

func TestProfiles_Edit(t *testing.T) {
	name := "Alicia"

	t.Run("empty edit", func(t *testing.T) {
		env := newTestProfiles(t)

		_, err := env.svc.Edit(context.Background(), 1, profile.Edit{})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("success", func(t *testing.T) {
		env := newTestProfiles(t)

		env.st.EXPECT().UpdateUser(gomock.Any(), domain.UserID(1), storage.UserUpdates{FirstName: &name}).
			Return(&domain.User{ID: 1, FirstName: name}, nil)
		env.st.EXPECT().UserPhotos(gomock.Any(), domain.UserID(1)).Return(nil, nil)

		user, err := env.svc.Edit(context.Background(), 1, profile.Edit{FirstName: &name})
		require.NoError(t, err)
		require.Equal(t, name, user.FirstName)
	})

	t.Run("email taken", func(t *testing.T) {
		env := newTestProfiles(t)
		email := "taken@example.com"

		env.st.EXPECT().UpdateUser(gomock.Any(), domain.UserID(1), gomock.Any()).Return(nil, &storage.ConstraintError{
			Kind:       storage.ErrDuplicate,
			Constraint: storage.ConstraintUserEmail,
			Err:        errors.New("pg"),
		})

		_, err := env.svc.Edit(context.Background(), 1, profile.Edit{Email: &email})
		require.ErrorIs(t, err, serrors.ErrConflict)

		var sErr *serrors.Error
		require.ErrorAs(t, err, &sErr)
		require.Equal(t, "Email already exists", sErr.Message())
	})

	t.Run("user gone", func(t *testing.T) {
		env := newTestProfiles(t)

		env.st.EXPECT().UpdateUser(gomock.Any(), domain.UserID(1), gomock.Any()).Return(nil, nil)

		_, err := env.svc.Edit(context.Background(), 1, profile.Edit{FirstName: &name})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestProfiles_Delete(t *testing.T) {
	t.Run("enqueues blob cleanup", func(t *testing.T) {
		env := newTestProfiles(t)

		expectWithTx(env, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserPhotos(gomock.Any(), domain.UserID(1)).
				Return([]domain.Photo{{Key: "a.png"}, {Key: "b.jpg"}}, nil)
			tx.EXPECT().DeleteUser(gomock.Any(), domain.UserID(1)).Return(true, nil)
			tx.EXPECT().EnqueueJobs(gomock.Any(), profile.PhotoCleanupArgs{Keys: []string{"a.png", "b.jpg"}}).
				Return(1, nil)
		})

		require.NoError(t, env.svc.Delete(context.Background(), 1))
	})

	t.Run("no photos no job", func(t *testing.T) {
		env := newTestProfiles(t)

		expectWithTx(env, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserPhotos(gomock.Any(), domain.UserID(1)).Return(nil, nil)
			tx.EXPECT().DeleteUser(gomock.Any(), domain.UserID(1)).Return(true, nil)
		})

		require.NoError(t, env.svc.Delete(context.Background(), 1))
	})

	t.Run("not found", func(t *testing.T) {
		env := newTestProfiles(t)

		expectWithTx(env, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserPhotos(gomock.Any(), domain.UserID(1)).Return(nil, nil)
			tx.EXPECT().DeleteUser(gomock.Any(), domain.UserID(1)).Return(false, nil)
		})

		require.ErrorIs(t, env.svc.Delete(context.Background(), 1), serrors.ErrNotFound)
	})
}

func TestProfiles_AddPhoto(t *testing.T) {
	t.Run("stores png", func(t *testing.T) {
		env := newTestProfiles(t)

		var storedKey string
		env.photos.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, key string, r io.Reader) error {
				storedKey = key
				b, err := io.ReadAll(r)
				require.NoError(t, err)
				require.Equal(t, pngBytes, b)

				return nil
			})
		expectWithTx(env, func(tx *mockstorage.MockAllStorage) {
			gomock.InOrder(
				tx.EXPECT().PhotoCount(gomock.Any(), domain.UserID(1)).Return(int64(2), nil),
				tx.EXPECT().StorePhoto(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p domain.Photo) (*domain.Photo, error) {
						require.Equal(t, domain.UserID(1), p.UserID)
						require.Equal(t, "image/png", p.ContentType)
						require.Equal(t, storedKey, p.Key)
						require.Equal(t, "http://localhost:8080/photos/"+storedKey, p.URL)
						p.ID = 9

						return &p, nil
					}),
			)
		})

		photo, err := env.svc.AddPhoto(context.Background(), 1, bytes.NewReader(pngBytes))
		require.NoError(t, err)
		require.Equal(t, domain.PhotoID(9), photo.ID)
		require.True(t, strings.HasSuffix(storedKey, ".png"))
	})

	t.Run("limit reached removes blob", func(t *testing.T) {
		env := newTestProfiles(t)

		var storedKey string
		env.photos.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, key string, _ io.Reader) error {
				storedKey = key

				return nil
			})
		expectWithTx(env, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().PhotoCount(gomock.Any(), domain.UserID(1)).Return(int64(6), nil)
		})
		env.photos.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, key string) error {
				require.Equal(t, storedKey, key)

				return nil
			})

		_, err := env.svc.AddPhoto(context.Background(), 1, bytes.NewReader(pngBytes))
		require.ErrorIs(t, err, serrors.ErrConflict)
		require.EqualError(t, err, "Photo limit of 6 reached")
	})

	t.Run("not an image", func(t *testing.T) {
		env := newTestProfiles(t)

		_, err := env.svc.AddPhoto(context.Background(), 1, strings.NewReader("plain text, not a photo"))
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("empty", func(t *testing.T) {
		env := newTestProfiles(t)

		_, err := env.svc.AddPhoto(context.Background(), 1, strings.NewReader(""))
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("too large", func(t *testing.T) {
		env := newTestProfiles(t)

		big := append(append([]byte{}, pngBytes...), make([]byte, 2048)...)
		_, err := env.svc.AddPhoto(context.Background(), 1, bytes.NewReader(big))
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("user gone", func(t *testing.T) {
		env := newTestProfiles(t)

		env.photos.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		expectWithTx(env, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().PhotoCount(gomock.Any(), domain.UserID(1)).Return(int64(0), nil)
			tx.EXPECT().StorePhoto(gomock.Any(), gomock.Any()).Return(nil, &storage.ConstraintError{
				Kind: storage.ErrReference,
				Err:  errors.New("pg"),
			})
		})
		env.photos.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		_, err := env.svc.AddPhoto(context.Background(), 1, bytes.NewReader(pngBytes))
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("row insert fails removes blob", func(t *testing.T) {
		env := newTestProfiles(t)

		env.photos.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		expectWithTx(env, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().PhotoCount(gomock.Any(), domain.UserID(1)).Return(int64(0), nil)
			tx.EXPECT().StorePhoto(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
		})
		env.photos.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		_, err := env.svc.AddPhoto(context.Background(), 1, bytes.NewReader(pngBytes))
		require.Error(t, err)
	})
}

func TestProfiles_DeletePhoto(t *testing.T) {
	t.Run("enqueues blob cleanup", func(t *testing.T) {
		env := newTestProfiles(t)

		expectWithTx(env, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().DeletePhoto(gomock.Any(), domain.UserID(1), domain.PhotoID(5)).
				Return(&domain.Photo{ID: 5, Key: "a.png"}, nil)
			tx.EXPECT().EnqueueJobs(gomock.Any(), profile.PhotoCleanupArgs{Keys: []string{"a.png"}}).
				Return(1, nil)
		})

		require.NoError(t, env.svc.DeletePhoto(context.Background(), 1, 5))
	})

	t.Run("not owned", func(t *testing.T) {
		env := newTestProfiles(t)

		expectWithTx(env, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().DeletePhoto(gomock.Any(), domain.UserID(1), domain.PhotoID(5)).Return(nil, nil)
		})

		require.ErrorIs(t, env.svc.DeletePhoto(context.Background(), 1, 5), serrors.ErrNotFound)
	})
}

func TestProfiles_OpenPhoto(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := newTestProfiles(t)

		env.st.EXPECT().PhotoByKey(gomock.Any(), "a.png").Return(&domain.Photo{Key: "a.png", ContentType: "image/png"}, nil)
		env.photos.EXPECT().Open(gomock.Any(), "a.png").Return(io.NopCloser(bytes.NewReader(pngBytes)), nil)

		rc, contentType, err := env.svc.OpenPhoto(context.Background(), "a.png")
		require.NoError(t, err)
		require.Equal(t, "image/png", contentType)
		require.NoError(t, rc.Close())
	})

	t.Run("unknown key", func(t *testing.T) {
		env := newTestProfiles(t)

		env.st.EXPECT().PhotoByKey(gomock.Any(), "x.png").Return(nil, nil)

		_, _, err := env.svc.OpenPhoto(context.Background(), "x.png")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("blob missing", func(t *testing.T) {
		env := newTestProfiles(t)

		env.st.EXPECT().PhotoByKey(gomock.Any(), "a.png").Return(&domain.Photo{Key: "a.png"}, nil)
		env.photos.EXPECT().Open(gomock.Any(), "a.png").Return(nil, photostore.ErrNotFound)

		_, _, err := env.svc.OpenPhoto(context.Background(), "a.png")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}
