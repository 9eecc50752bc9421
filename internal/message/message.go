package message

import (
	"context"
	"errors"
	"fmt"
	"matchup/internal/config"
	"matchup/pkg/domain"
	"matchup/pkg/serrors"
	"matchup/pkg/storage"
	"strings"
)

const (
	DefaultConversationLimit = 50
	MaxConversationLimit     = 100
)

type Options struct {
	ConversationDefaultLimit uint
	ConversationMaxLimit     uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ConversationDefaultLimit: cfg.Message.ConversationDefaultLimit,
		ConversationMaxLimit:     cfg.Message.ConversationMaxLimit,
	}
}

type messenger struct {
	options Options
	storage storage.Storage
}

func (m messenger) Send(ctx context.Context, sender domain.UserID, input SendInput) (*domain.Message, error) {
	if sender == input.ReceiverID {
		return nil, serrors.With(serrors.ErrBadRequest, "Cannot send message to yourself.")
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Message text is required")
	}

	msg, err := m.storage.StoreMessage(ctx, domain.Message{
		Text:       input.Text,
		PhotoURL:   input.PhotoURL,
		SenderID:   sender,
		ReceiverID: input.ReceiverID,
	})
	if errors.Is(err, storage.ErrReference) {
		return nil, serrors.Wrap(serrors.ErrNotFound, err, "Receiver not found")
	}
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "Could not send message.")
	}

	return msg, nil
}

// load returns the message or NOT_FOUND.
func (m messenger) load(ctx context.Context, ID domain.MessageID) (*domain.Message, error) {
	msg, err := m.storage.MessageByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get message: %w", err)
	}
	if msg == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Message not found")
	}

	return msg, nil
}

func (m messenger) Get(ctx context.Context, ID domain.MessageID, caller domain.UserID) (*domain.Message, error) {
	msg, err := m.load(ctx, ID)
	if err != nil {
		return nil, err
	}
	if !msg.IsParticipant(caller) {
		return nil, serrors.With(serrors.ErrForbidden, "Not authorized to access this message")
	}

	return msg, nil
}

func (m messenger) Update(
	ctx context.Context, ID domain.MessageID, caller domain.UserID, text *string,
) (*domain.Message, error) {
	msg, err := m.load(ctx, ID)
	if err != nil {
		return nil, err
	}
	if msg.SenderID != caller {
		return nil, serrors.With(serrors.ErrForbidden, "Not authorized to update this message")
	}
	if text == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "No update data provided")
	}
	if strings.TrimSpace(*text) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Message text is required")
	}

	updated, err := m.storage.UpdateMessageText(ctx, ID, *text)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "Could not update message.")
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Message not found")
	}

	return updated, nil
}

func (m messenger) Delete(ctx context.Context, ID domain.MessageID, caller domain.UserID) error {
	msg, err := m.load(ctx, ID)
	if err != nil {
		return err
	}
	if msg.SenderID != caller {
		return serrors.With(serrors.ErrForbidden, "Not authorized to delete this message")
	}

	deleted, err := m.storage.DeleteMessage(ctx, ID)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "Could not delete message.")
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "Message not found")
	}

	return nil
}

func (m messenger) Conversation(
	ctx context.Context, caller, peer domain.UserID, skip, limit uint,
) ([]domain.Message, error) {
	if caller == peer {
		return nil, serrors.With(serrors.ErrBadRequest, "Cannot get conversation with yourself.")
	}

	switch {
	case limit == 0:
		limit = m.options.ConversationDefaultLimit
	case limit > m.options.ConversationMaxLimit:
		limit = m.options.ConversationMaxLimit
	}

	messages, err := m.storage.Conversation(ctx, caller, peer, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get conversation: %w", err)
	}
	if messages == nil {
		messages = []domain.Message{}
	}

	return messages, nil
}

// New creates a Messenger backed by storage.
func New(storage storage.Storage, options Options) Messenger {
	if options.ConversationMaxLimit == 0 {
		options.ConversationMaxLimit = MaxConversationLimit
	}
	if options.ConversationDefaultLimit == 0 {
		options.ConversationDefaultLimit = DefaultConversationLimit
	}

	return &messenger{
		options: options,
		storage: storage,
	}
}
