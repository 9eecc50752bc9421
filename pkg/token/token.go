// Package token issues and verifies RS256 signed JWT access tokens whose
// subject is the numeric user ID.
package token

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"matchup/pkg/domain"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid is returned for tokens that are malformed, expired, signed with
// another key or carry an unusable subject.
var ErrInvalid = errors.New("invalid token")

// DefaultTTL is used when Options.TTL is zero.
const DefaultTTL = 60 * time.Minute

type Options struct {
	// PrivateKeyPEM is the PEM encoded RSA private key used for signing. The
	// public half verifies incoming tokens.
	PrivateKeyPEM string
	TTL           time.Duration
	Issuer        string
}

// Manager signs and verifies access tokens.
type Manager struct {
	key    *rsa.PrivateKey
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewManager parses the signing key from opts.
func NewManager(opts Options) (*Manager, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(opts.PrivateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Manager{
		key:    key,
		ttl:    ttl,
		issuer: opts.Issuer,
		now:    time.Now,
	}, nil
}

// Issue returns a signed token for userID valid for ttl, or for the default
// lifetime when ttl is zero, along with its expiry.
func (m *Manager) Issue(userID domain.UserID, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = m.ttl
	}

	now := m.now()
	expiresAt := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   strconv.FormatInt(int64(userID), 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(m.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify checks signature, lifetime and issuer of raw and returns the user
// ID it was issued for.
func (m *Manager) Verify(raw string) (domain.UserID, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	var claims jwt.RegisteredClaims
	if _, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return &m.key.PublicKey, nil
	}, opts...); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad subject %q", ErrInvalid, claims.Subject)
	}

	return domain.UserID(id), nil
}
