package match

import (
	"context"
	"fmt"
	"matchup/internal/config"
	"matchup/pkg/domain"
	"matchup/pkg/logger"
	"matchup/pkg/serrors"
	"matchup/pkg/storage"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

const (
	// DefaultBrowseLimit is used when Browse is called without a limit.
	DefaultBrowseLimit = 10
	// MaxBrowseLimit caps the Browse limit when Options leave it unset.
	MaxBrowseLimit = 100
)

type Options struct {
	BrowseDefaultLimit uint
	BrowseMaxLimit     uint
	// Meter records formed matches. A no-op meter is used when nil.
	Meter metric.Meter
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config, meter metric.Meter) Options {
	return Options{
		BrowseDefaultLimit: cfg.Match.BrowseDefaultLimit,
		BrowseMaxLimit:     cfg.Match.BrowseMaxLimit,
		Meter:              meter,
	}
}

type matcher struct {
	options Options
	storage storage.Storage
	formed  metric.Int64Counter
}

func (m matcher) requireUser(ctx context.Context, tx storage.AllStorage, id domain.UserID) error {
	user, err := tx.UserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return serrors.With(serrors.ErrNotFound, "User not found")
	}

	return nil
}

// Accept likes a user. A previous refusal of that user is withdrawn.
func (m matcher) Accept(ctx context.Context, liker, liked domain.UserID) (bool, error) {
	if liker == liked {
		return false, serrors.With(serrors.ErrBadRequest, "Cannot like yourself")
	}

	var matched bool
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := m.requireUser(ctx, tx, liked); err != nil {
			return err
		}

		created, err := tx.StoreLike(ctx, domain.Like{LikerID: liker, LikedID: liked})
		if err != nil {
			return fmt.Errorf("could not store like: %w", err)
		}
		if !created {
			return serrors.With(serrors.ErrBadRequest, "User already liked")
		}

		if err := tx.DeleteRefusal(ctx, liker, liked); err != nil {
			return fmt.Errorf("could not delete refusal: %w", err)
		}

		matched, err = tx.LikeExists(ctx, liked, liker)
		if err != nil {
			return fmt.Errorf("could not check reverse like: %w", err)
		}

		return nil
	}); err != nil {
		return false, fmt.Errorf("could not accept user: %w", err)
	}

	if matched {
		m.formed.Add(ctx, 1)
		logger.Info(ctx, "match formed",
			zap.Int64("user_id", int64(liker)),
			zap.Int64("peer_id", int64(liked)))
	}

	return matched, nil
}

// Refuse hides a user from browsing and withdraws an existing like.
func (m matcher) Refuse(ctx context.Context, refuser, refused domain.UserID) error {
	if refuser == refused {
		return serrors.With(serrors.ErrBadRequest, "Cannot refuse yourself")
	}

	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := m.requireUser(ctx, tx, refused); err != nil {
			return err
		}

		if err := tx.StoreRefusal(ctx, domain.Refusal{RefuserID: refuser, RefusedID: refused}); err != nil {
			return fmt.Errorf("could not store refusal: %w", err)
		}

		if _, err := tx.DeleteLike(ctx, refuser, refused); err != nil {
			return fmt.Errorf("could not delete like: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not refuse user: %w", err)
	}

	return nil
}

func (m matcher) limit(requested uint) uint {
	switch {
	case requested == 0:
		return m.options.BrowseDefaultLimit
	case requested > m.options.BrowseMaxLimit:
		return m.options.BrowseMaxLimit
	default:
		return requested
	}
}

// withPhotos attaches photos to every user with a single query.
func (m matcher) withPhotos(ctx context.Context, users []domain.User) error {
	if len(users) == 0 {
		return nil
	}

	IDs := make([]domain.UserID, 0, len(users))
	for _, u := range users {
		IDs = append(IDs, u.ID)
	}

	photos, err := m.storage.UserPhotos(ctx, IDs...)
	if err != nil {
		return fmt.Errorf("could not get user photos: %w", err)
	}

	byUser := make(map[domain.UserID][]domain.Photo, len(users))
	for _, p := range photos {
		byUser[p.UserID] = append(byUser[p.UserID], p)
	}
	for i := range users {
		users[i].Photos = byUser[users[i].ID]
		if users[i].Photos == nil {
			users[i].Photos = []domain.Photo{}
		}
	}

	return nil
}

// Browse returns random candidates the user has neither liked nor refused.
// When the user has hobbies, only candidates sharing one of them are returned.
func (m matcher) Browse(ctx context.Context, userID domain.UserID, limit uint) ([]domain.User, error) {
	users, err := m.storage.BrowseUsers(ctx, userID, m.limit(limit))
	if err != nil {
		return nil, fmt.Errorf("could not browse users: %w", err)
	}

	if err := m.withPhotos(ctx, users); err != nil {
		return nil, err
	}

	return users, nil
}

// Matches returns users liked by userID that like userID back.
func (m matcher) Matches(ctx context.Context, userID domain.UserID) ([]domain.User, error) {
	users, err := m.storage.MatchedUsers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get matches: %w", err)
	}

	if err := m.withPhotos(ctx, users); err != nil {
		return nil, err
	}

	return users, nil
}

// New creates a Matcher backed by storage.
func New(storage storage.Storage, options Options) (Matcher, error) {
	if options.BrowseMaxLimit == 0 {
		options.BrowseMaxLimit = MaxBrowseLimit
	}
	if options.BrowseDefaultLimit == 0 {
		options.BrowseDefaultLimit = DefaultBrowseLimit
	}
	if options.BrowseDefaultLimit > options.BrowseMaxLimit {
		options.BrowseDefaultLimit = options.BrowseMaxLimit
	}
	if options.Meter == nil {
		options.Meter = noop.NewMeterProvider().Meter("matchup/match")
	}

	formed, err := options.Meter.Int64Counter("match.formed",
		metric.WithDescription("Number of mutual likes formed."))
	if err != nil {
		return nil, fmt.Errorf("could not create match counter: %w", err)
	}

	return &matcher{
		options: options,
		storage: storage,
		formed:  formed,
	}, nil
}
