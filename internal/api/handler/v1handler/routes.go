package v1handler

import (
	"matchup/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Routes returns the v1 API router. Every route except registration and
// login requires a bearer token.
func (h *Handler) Routes(sec *SecHandler) http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "Not Found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusMethodNotAllowed, ErrorResponse{
			Code:    "METHOD_NOT_ALLOWED",
			Message: "Method Not Allowed",
		})
	})

	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(sec.Middleware(h))

		r.Put("/auth/password", h.ChangePassword)

		r.Route("/user", func(r chi.Router) {
			r.Get("/", h.GetUser)
			r.Put("/", h.EditUser)
			r.Delete("/", h.DeleteUser)
			r.Get("/photos", h.ListPhotos)
			r.Post("/photos", h.UploadPhoto)
			r.Delete("/photos/{photoID}", h.DeletePhoto)
		})

		r.Route("/hobbies", func(r chi.Router) {
			r.Get("/search", h.SearchHobbies)
			r.Get("/user", h.UserHobbies)
			r.Post("/user", h.AddUserHobbies)
			r.Put("/user", h.EditUserHobbies)
			r.Delete("/user", h.DeleteUserHobbies)
			r.Post("/", h.CreateHobby)
			r.Get("/{hobbyID}", h.GetHobby)
			r.Put("/{hobbyID}", h.UpdateHobby)
			r.Delete("/{hobbyID}", h.DeleteHobby)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.ListCategories)
			r.Post("/", h.CreateCategory)
			r.Get("/{categoryID}", h.GetCategory)
			r.Put("/{categoryID}", h.UpdateCategory)
			r.Delete("/{categoryID}", h.DeleteCategory)
		})

		r.Route("/match", func(r chi.Router) {
			r.Post("/accept/{userID}", h.Accept)
			r.Post("/refuse/{userID}", h.Refuse)
			r.Get("/browse", h.Browse)
			r.Get("/matches", h.Matches)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Post("/", h.SendMessage)
			r.Get("/conversation/{userID}", h.Conversation)
			r.Get("/{messageID}", h.GetMessage)
			r.Put("/{messageID}", h.UpdateMessage)
			r.Delete("/{messageID}", h.DeleteMessage)
		})
	})

	return r
}

// idLabels names path parameters in error messages.
var idLabels = map[string]string{ //nolint: gochecknoglobals
	"hobbyID":    "hobby ID",
	"categoryID": "category ID",
	"userID":     "user ID",
	"messageID":  "message ID",
	"photoID":    "photo ID",
}

// pathID parses the positive integer path parameter name.
func pathID(r *http.Request, name string) (int64, error) {
	ID, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || ID <= 0 {
		label, ok := idLabels[name]
		if !ok {
			label = name
		}

		return 0, serrors.With(serrors.ErrBadRequest, "Invalid %s", label)
	}

	return ID, nil
}

// queryUint parses an optional non-negative query parameter; absent means 0.
func queryUint(r *http.Request, name string) (uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "Invalid %s: %q", name, raw)
	}

	return uint(v), nil
}
