package v1handler

import (
	"matchup/pkg/domain"
	"net/http"
)

func (h Handler) Accept(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r, "userID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	matched, err := h.deps.Matcher.Accept(r.Context(), GetUserIDFromContext(r.Context()), domain.UserID(ID))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, AcceptResponse{Detail: "User liked", Matched: matched})
}

func (h Handler) Refuse(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r, "userID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Matcher.Refuse(r.Context(), GetUserIDFromContext(r.Context()), domain.UserID(ID)); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DetailResponse{Detail: "User refused"})
}

func (h Handler) Browse(w http.ResponseWriter, r *http.Request) {
	limit, err := queryUint(r, "limit")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	users, err := h.deps.Matcher.Browse(r.Context(), GetUserIDFromContext(r.Context()), limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if users == nil {
		users = []domain.User{}
	}

	writeJSON(r.Context(), w, http.StatusOK, users)
}

func (h Handler) Matches(w http.ResponseWriter, r *http.Request) {
	users, err := h.deps.Matcher.Matches(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if users == nil {
		users = []domain.User{}
	}

	writeJSON(r.Context(), w, http.StatusOK, users)
}
