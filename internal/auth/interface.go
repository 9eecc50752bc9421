package auth

import (
	"context"
	"matchup/pkg/domain"
	"time"
)

// RegisterInput carries the fields of a new account. Password is the plain
// text password; it is hashed before it reaches storage.
type RegisterInput struct {
	Login       string
	Email       string
	Password    string
	PhoneNumber string
	FirstName   string
	LastName    string
}

// Token is an issued access token.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
}

// TokenIssuer signs access tokens for users. *token.Manager implements it.
type TokenIssuer interface {
	Issue(userID domain.UserID, ttl time.Duration) (string, time.Time, error)
}

//go:generate mockgen -package mockauth -destination=mock/mockauth.go matchup/internal/auth Authenticator,TokenIssuer
type Authenticator interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, login, password string) (*Token, error)
	ChangePassword(ctx context.Context, userID domain.UserID, current, next string) error
}
