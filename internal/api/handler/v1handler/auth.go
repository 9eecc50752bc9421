package v1handler

import (
	"matchup/internal/auth"
	"net/http"
)

// Register creates an account.
func (h Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.deps.Auth.Register(r.Context(), auth.RegisterInput{
		Login:       req.Login,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, RegisterResponse{
		UserID: int64(user.ID),
		Email:  user.Email,
	})
}

// Login exchanges credentials for an access token.
func (h Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	token, err := h.deps.Auth.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresIn:   int64(token.ExpiresIn.Seconds()),
	})
}

func (h Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Auth.ChangePassword(r.Context(),
		GetUserIDFromContext(r.Context()), req.CurrentPassword, req.Password); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DetailResponse{Detail: "Password changed"})
}
