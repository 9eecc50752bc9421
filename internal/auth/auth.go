package auth

import (
	"context"
	"errors"
	"fmt"
	"matchup/internal/config"
	"matchup/pkg/domain"
	"matchup/pkg/logger"
	"matchup/pkg/serrors"
	"matchup/pkg/storage"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenType is the token_type reported with issued tokens.
const TokenType = "bearer"

type Options struct {
	// BcryptCost is the work factor used for new password hashes.
	BcryptCost int
	// TokenTTL is the lifetime of issued access tokens.
	TokenTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BcryptCost: cfg.Auth.BcryptCost,
		TokenTTL:   cfg.JWT.TTL,
	}
}

type authenticator struct {
	options Options
	storage storage.Storage
	tokens  TokenIssuer
}

// conflictMessage maps unique constraints on users to client messages.
func conflictMessage(err error) (string, bool) {
	if !errors.Is(err, storage.ErrDuplicate) {
		return "", false
	}

	switch storage.ViolatedConstraint(err) {
	case storage.ConstraintUserLogin:
		return "Login already exists", true
	case storage.ConstraintUserEmail:
		return "Email already exists", true
	default:
		return "", false
	}
}

// UserConflict converts a unique violation on the users table into a
// CONFLICT error. It returns nil for any other error.
func UserConflict(err error) error {
	if msg, ok := conflictMessage(err); ok {
		return serrors.Wrap(serrors.ErrConflict, err, "%s", msg)
	}

	return nil
}

func (a authenticator) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.options.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(hash), nil
}

// Register creates a new account.
func (a authenticator) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	hash, err := a.hash(input.Password)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid password")
	}

	user, err := a.storage.StoreUser(ctx, domain.User{
		Login:        input.Login,
		Email:        input.Email,
		PasswordHash: hash,
		PhoneNumber:  input.PhoneNumber,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	})
	if err != nil {
		if cErr := UserConflict(err); cErr != nil {
			return nil, cErr
		}

		return nil, serrors.Wrap(serrors.ErrInternal, err, "Failed to register user")
	}

	logger.Info(ctx, "user registered", zap.Int64("user_id", int64(user.ID)))

	return user, nil
}

// Login checks the credentials and issues an access token. Unknown logins and
// wrong passwords are indistinguishable to the caller.
func (a authenticator) Login(ctx context.Context, login, password string) (*Token, error) {
	user, err := a.storage.UserByLogin(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "Invalid credentials")
	}

	signed, expiresAt, err := a.tokens.Issue(user.ID, a.options.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("could not issue token: %w", err)
	}

	return &Token{
		AccessToken: signed,
		TokenType:   TokenType,
		ExpiresIn:   time.Until(expiresAt).Round(time.Second),
	}, nil
}

// ChangePassword replaces the password of userID after checking current.
func (a authenticator) ChangePassword(ctx context.Context, userID domain.UserID, current, next string) error {
	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return serrors.With(serrors.ErrNotFound, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return serrors.Wrap(serrors.ErrUnauthorized, err, "Invalid credentials")
	}

	hash, err := a.hash(next)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "Invalid password")
	}

	updated, err := a.storage.UpdateUser(ctx, userID, storage.UserUpdates{PasswordHash: &hash})
	if err != nil {
		return fmt.Errorf("could not update password: %w", err)
	}
	if updated == nil {
		return serrors.With(serrors.ErrNotFound, "User not found")
	}

	return nil
}

// New creates an Authenticator backed by storage that signs tokens with tokens.
func New(storage storage.Storage, tokens TokenIssuer, options Options) Authenticator {
	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.DefaultCost
	}

	return &authenticator{
		options: options,
		storage: storage,
		tokens:  tokens,
	}
}
