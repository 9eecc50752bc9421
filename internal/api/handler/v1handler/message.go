package v1handler

import (
	"matchup/internal/message"
	"matchup/pkg/domain"
	"net/http"
)

func (h Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	msg, err := h.deps.Messenger.Send(r.Context(), GetUserIDFromContext(r.Context()), message.SendInput{
		ReceiverID: domain.UserID(req.ReceiverID),
		Text:       req.Text,
		PhotoURL:   req.PhotoURL,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, msg)
}

func (h Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r, "messageID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	msg, err := h.deps.Messenger.Get(r.Context(), domain.MessageID(ID), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, msg)
}

func (h Handler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r, "messageID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req UpdateMessageRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	msg, err := h.deps.Messenger.Update(r.Context(),
		domain.MessageID(ID), GetUserIDFromContext(r.Context()), req.Text)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, msg)
}

func (h Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r, "messageID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Messenger.Delete(r.Context(), domain.MessageID(ID), GetUserIDFromContext(r.Context())); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) Conversation(w http.ResponseWriter, r *http.Request) {
	peer, err := pathID(r, "userID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	skip, err := queryUint(r, "skip")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	limit, err := queryUint(r, "limit")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	messages, err := h.deps.Messenger.Conversation(r.Context(),
		GetUserIDFromContext(r.Context()), domain.UserID(peer), skip, limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, messages)
}
