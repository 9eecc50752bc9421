package profile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"matchup/internal/auth"
	"matchup/internal/config"
	"matchup/pkg/domain"
	"matchup/pkg/logger"
	"matchup/pkg/photostore"
	"matchup/pkg/serrors"
	"matchup/pkg/storage"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// allowedPhotoTypes are the content types accepted for uploads.
var allowedPhotoTypes = []string{"image/jpeg", "image/png", "image/webp"} //nolint: gochecknoglobals

type Options struct {
	// PublicBaseURL prefixes photo keys to build photo URLs.
	PublicBaseURL string
	// MaxBytes limits the size of a single upload.
	MaxBytes int64
	// MaxPerUser limits how many photos a user may keep.
	MaxPerUser int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PublicBaseURL: cfg.Photos.PublicBaseURL,
		MaxBytes:      cfg.Photos.MaxBytes,
		MaxPerUser:    cfg.Photos.MaxPerUser,
	}
}

type profiles struct {
	options Options
	storage storage.Storage
	photos  photostore.Store
}

func (p profiles) Get(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := p.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "User not found")
	}

	photos, err := p.storage.UserPhotos(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user photos: %w", err)
	}
	user.Photos = photos

	return user, nil
}

func (p profiles) Edit(ctx context.Context, userID domain.UserID, edit Edit) (*domain.User, error) {
	if edit.IsEmpty() {
		return nil, serrors.With(serrors.ErrBadRequest, "No update data provided")
	}

	user, err := p.storage.UpdateUser(ctx, userID, storage.UserUpdates{
		Login:       edit.Login,
		Email:       edit.Email,
		PhoneNumber: edit.PhoneNumber,
		FirstName:   edit.FirstName,
		LastName:    edit.LastName,
	})
	if err != nil {
		if cErr := auth.UserConflict(err); cErr != nil {
			return nil, cErr
		}

		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "User not found")
	}

	photos, err := p.storage.UserPhotos(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user photos: %w", err)
	}
	user.Photos = photos

	return user, nil
}

// Delete removes the account. Dependent rows cascade in the database; photo
// blobs are removed by a cleanup job committed with the deletion.
func (p profiles) Delete(ctx context.Context, userID domain.UserID) error {
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		photos, err := tx.UserPhotos(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not get user photos: %w", err)
		}

		deleted, err := tx.DeleteUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not delete user: %w", err)
		}
		if !deleted {
			return serrors.With(serrors.ErrNotFound, "User not found")
		}

		if len(photos) == 0 {
			return nil
		}

		keys := make([]string, 0, len(photos))
		for _, photo := range photos {
			keys = append(keys, photo.Key)
		}
		if _, err := tx.EnqueueJobs(ctx, PhotoCleanupArgs{Keys: keys}); err != nil {
			return fmt.Errorf("could not add photo cleanup job: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}

	logger.Info(ctx, "user deleted", zap.Int64("user_id", int64(userID)))

	return nil
}

func (p profiles) Photos(ctx context.Context, userID domain.UserID) ([]domain.Photo, error) {
	photos, err := p.storage.UserPhotos(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user photos: %w", err)
	}

	return photos, nil
}

func (p profiles) photoURL(key string) string {
	return strings.TrimRight(p.options.PublicBaseURL, "/") + "/" + key
}

// AddPhoto stores an uploaded image. Only JPEG, PNG and WebP content is
// accepted, detected from the bytes rather than client headers.
func (p profiles) AddPhoto(ctx context.Context, userID domain.UserID, r io.Reader) (*domain.Photo, error) {
	data, err := io.ReadAll(io.LimitReader(r, p.options.MaxBytes+1))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Could not read photo")
	}
	if len(data) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Photo is empty")
	}
	if int64(len(data)) > p.options.MaxBytes {
		return nil, serrors.With(serrors.ErrBadRequest, "Photo exceeds %d bytes", p.options.MaxBytes)
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedPhotoTypes...) {
		return nil, serrors.With(serrors.ErrBadRequest, "Unsupported photo type %s", mtype.String())
	}

	key := uuid.NewString() + mtype.Extension()
	if err := p.photos.Put(ctx, key, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("could not store photo blob: %w", err)
	}

	var photo *domain.Photo
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		count, err := tx.PhotoCount(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not count user photos: %w", err)
		}
		if p.options.MaxPerUser > 0 && count >= p.options.MaxPerUser {
			return serrors.With(serrors.ErrConflict, "Photo limit of %d reached", p.options.MaxPerUser)
		}

		photo, err = tx.StorePhoto(ctx, domain.Photo{
			UserID:      userID,
			URL:         p.photoURL(key),
			Key:         key,
			ContentType: mtype.String(),
		})
		if err != nil {
			if errors.Is(err, storage.ErrReference) {
				return serrors.Wrap(serrors.ErrNotFound, err, "User not found")
			}

			return fmt.Errorf("could not store photo: %w", err)
		}

		return nil
	}); err != nil {
		if dErr := p.photos.Delete(ctx, key); dErr != nil {
			logger.Warn(ctx, "could not remove orphaned photo blob", zap.String("key", key), zap.Error(dErr))
		}

		return nil, err
	}

	return photo, nil
}

func (p profiles) DeletePhoto(ctx context.Context, userID domain.UserID, photoID domain.PhotoID) error {
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		photo, err := tx.DeletePhoto(ctx, userID, photoID)
		if err != nil {
			return fmt.Errorf("could not delete photo: %w", err)
		}
		if photo == nil {
			return serrors.With(serrors.ErrNotFound, "Photo not found")
		}

		if _, err := tx.EnqueueJobs(ctx, PhotoCleanupArgs{Keys: []string{photo.Key}}); err != nil {
			return fmt.Errorf("could not add photo cleanup job: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not delete photo: %w", err)
	}

	return nil
}

func (p profiles) OpenPhoto(ctx context.Context, key string) (io.ReadCloser, string, error) {
	photo, err := p.storage.PhotoByKey(ctx, key)
	if err != nil {
		return nil, "", fmt.Errorf("could not get photo: %w", err)
	}
	if photo == nil {
		return nil, "", serrors.With(serrors.ErrNotFound, "Photo not found")
	}

	rc, err := p.photos.Open(ctx, key)
	if errors.Is(err, photostore.ErrNotFound) {
		return nil, "", serrors.Wrap(serrors.ErrNotFound, err, "Photo not found")
	}
	if err != nil {
		return nil, "", fmt.Errorf("could not open photo: %w", err)
	}

	return rc, photo.ContentType, nil
}

// New creates a Profiles service backed by storage that keeps photo blobs in photos.
func New(storage storage.Storage, photos photostore.Store, options Options) Profiles {
	return &profiles{
		options: options,
		storage: storage,
		photos:  photos,
	}
}
