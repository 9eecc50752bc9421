package token

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"matchup/pkg/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func testKeyPEM(t *testing.T) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}))
}

func TestNewManager_InvalidKey(t *testing.T) {
	_, err := NewManager(Options{PrivateKeyPEM: "not a key"})
	require.Error(t, err)
}

func TestManager_IssueAndVerify(t *testing.T) {
	m, err := NewManager(Options{PrivateKeyPEM: testKeyPEM(t), Issuer: "matchup"})
	require.NoError(t, err)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m.now = func() time.Time { return now }

	signed, expiresAt, err := m.Issue(domain.UserID(42), 0)
	require.NoError(t, err)
	require.Equal(t, now.Add(DefaultTTL), expiresAt)

	id, err := m.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, domain.UserID(42), id)

	t.Run("expired", func(t *testing.T) {
		m.now = func() time.Time { return now.Add(DefaultTTL + time.Minute) }
		defer func() { m.now = func() time.Time { return now } }()

		_, err := m.Verify(signed)
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("other key", func(t *testing.T) {
		other, err := NewManager(Options{PrivateKeyPEM: testKeyPEM(t), Issuer: "matchup"})
		require.NoError(t, err)
		other.now = m.now

		_, err = other.Verify(signed)
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := *m
		other.issuer = "someone-else"

		_, err := other.Verify(signed)
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("hmac signed", func(t *testing.T) {
		hs, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "42",
			Issuer:    "matchup",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = m.Verify(hs)
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("non numeric subject", func(t *testing.T) {
		bad, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
			Subject:   "alice",
			Issuer:    "matchup",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}).SignedString(m.key)
		require.NoError(t, err)

		_, err = m.Verify(bad)
		require.ErrorIs(t, err, ErrInvalid)
	})
}

func TestManager_CustomTTL(t *testing.T) {
	m, err := NewManager(Options{PrivateKeyPEM: testKeyPEM(t), TTL: time.Hour})
	require.NoError(t, err)

	now := time.Now()
	m.now = func() time.Time { return now }

	_, expiresAt, err := m.Issue(1, 0)
	require.NoError(t, err)
	require.Equal(t, now.Add(time.Hour), expiresAt)

	_, expiresAt, err = m.Issue(1, 5*time.Minute)
	require.NoError(t, err)
	require.Equal(t, now.Add(5*time.Minute), expiresAt)
}
