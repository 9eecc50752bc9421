package v1handler

import (
	"errors"
	"io"
	"matchup/internal/profile"
	"matchup/pkg/domain"
	"matchup/pkg/logger"
	"matchup/pkg/serrors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// photoField is the multipart field carrying an uploaded photo.
const photoField = "file"

func (h Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.deps.Profiles.Get(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, user)
}

func (h Handler) EditUser(w http.ResponseWriter, r *http.Request) {
	var req EditUserRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.deps.Profiles.Edit(r.Context(), GetUserIDFromContext(r.Context()), profile.Edit{
		Login:       req.Login,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, user)
}

func (h Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Profiles.Delete(r.Context(), GetUserIDFromContext(r.Context())); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.deps.Profiles.Photos(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, photos)
}

// UploadPhoto streams the "file" part of a multipart body into the profile
// service without buffering the whole form.
func (h Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	mr, err := r.MultipartReader()
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "Expected a multipart/form-data body"))

		return
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid multipart body"))

			return
		}

		if part.FormName() != photoField {
			_ = part.Close()

			continue
		}

		photo, err := h.deps.Profiles.AddPhoto(r.Context(), GetUserIDFromContext(r.Context()), part)
		_ = part.Close()
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		writeJSON(r.Context(), w, http.StatusCreated, photo)

		return
	}

	h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "Missing %q file field", photoField))
}

func (h Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r, "photoID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Profiles.DeletePhoto(r.Context(),
		GetUserIDFromContext(r.Context()), domain.PhotoID(ID)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ServePhoto streams a stored photo. It is mounted outside /v1 and needs no
// authentication.
func (h Handler) ServePhoto(w http.ResponseWriter, r *http.Request) {
	rc, contentType, err := h.deps.Profiles.OpenPhoto(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400, immutable")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if _, err := io.Copy(w, rc); err != nil {
		logger.Warn(r.Context(), "could not stream photo", zap.Error(err))
	}
}
