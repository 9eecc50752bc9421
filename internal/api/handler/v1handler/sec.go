package v1handler

import (
	"context"
	"matchup/pkg/domain"
	"matchup/pkg/serrors"
	"net/http"
	"strings"
)

type ctxKey string

// UserIDKey holds the authenticated user ID in request contexts.
const UserIDKey ctxKey = "userID"

// TokenVerifier validates access tokens. *token.Manager implements it.
type TokenVerifier interface {
	Verify(raw string) (domain.UserID, error)
}

type SecHandler struct {
	verifier TokenVerifier
}

func NewSecHandler(verifier TokenVerifier) *SecHandler {
	return &SecHandler{verifier: verifier}
}

// HandleBearerAuth verifies token and stores the user ID it was issued for
// in the returned context.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	userID, err := s.verifier.Verify(token)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "Could not validate credentials")
	}

	return context.WithValue(ctx, UserIDKey, userID), nil
}

// Middleware rejects requests without a valid bearer token.
func (s SecHandler) Middleware(h *Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "Not authenticated"))

				return
			}

			ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
			if err != nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				h.writeError(w, r, err)

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext returns the authenticated user ID, or zero outside
// bearer protected routes.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(UserIDKey).(domain.UserID)

	return userID
}
