package v1handler

import (
	"matchup/pkg/domain"
	"net/http"
)

func (h Handler) SearchHobbies(w http.ResponseWriter, r *http.Request) {
	hobbies, err := h.deps.Hobbies.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, hobbies)
}

func (h Handler) GetHobby(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r, "hobbyID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	hobby, err := h.deps.Hobbies.Get(r.Context(), domain.HobbyID(ID))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, hobby)
}

func (h Handler) CreateHobby(w http.ResponseWriter, r *http.Request) {
	var req HobbyRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	hobby, err := h.deps.Hobbies.Create(r.Context(), domain.Hobby{
		Name:       req.Name,
		CategoryID: domain.CategoryID(req.CategoryID),
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, hobby)
}

func (h Handler) UpdateHobby(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r, "hobbyID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req HobbyRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	hobby, err := h.deps.Hobbies.Update(r.Context(), domain.Hobby{
		ID:         domain.HobbyID(ID),
		Name:       req.Name,
		CategoryID: domain.CategoryID(req.CategoryID),
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, hobby)
}

func (h Handler) DeleteHobby(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r, "hobbyID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Hobbies.Delete(r.Context(), domain.HobbyID(ID)); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DetailResponse{Detail: "Hobby deleted"})
}

func (h Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.deps.Hobbies.Categories(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, categories)
}

func (h Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r, "categoryID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	category, err := h.deps.Hobbies.Category(r.Context(), domain.CategoryID(ID))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, category)
}

func (h Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	category, err := h.deps.Hobbies.CreateCategory(r.Context(), req.Name)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, category)
}

func (h Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r, "categoryID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req CategoryRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	category, err := h.deps.Hobbies.UpdateCategory(r.Context(), domain.Category{
		ID:   domain.CategoryID(ID),
		Name: req.Name,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, category)
}

func (h Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r, "categoryID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Hobbies.DeleteCategory(r.Context(), domain.CategoryID(ID)); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DetailResponse{Detail: "Category deleted"})
}

func (h Handler) UserHobbies(w http.ResponseWriter, r *http.Request) {
	hobbies, err := h.deps.Hobbies.UserHobbies(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, hobbies)
}

// decodeHobbyIDs reads a JSON array of hobby IDs.
func (h Handler) decodeHobbyIDs(r *http.Request) ([]domain.HobbyID, error) {
	var IDs []domain.HobbyID
	if err := h.decode(r, &IDs); err != nil {
		return nil, err
	}

	return IDs, nil
}

func (h Handler) AddUserHobbies(w http.ResponseWriter, r *http.Request) {
	IDs, err := h.decodeHobbyIDs(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	hobbies, err := h.deps.Hobbies.AddUserHobbies(r.Context(), GetUserIDFromContext(r.Context()), IDs)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, hobbies)
}

func (h Handler) EditUserHobbies(w http.ResponseWriter, r *http.Request) {
	IDs, err := h.decodeHobbyIDs(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	hobbies, err := h.deps.Hobbies.EditUserHobbies(r.Context(), GetUserIDFromContext(r.Context()), IDs)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, hobbies)
}

func (h Handler) DeleteUserHobbies(w http.ResponseWriter, r *http.Request) {
	IDs, err := h.decodeHobbyIDs(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Hobbies.DeleteUserHobbies(r.Context(), GetUserIDFromContext(r.Context()), IDs); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DetailResponse{Detail: "Hobbies removed"})
}
