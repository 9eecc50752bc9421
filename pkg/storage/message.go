package storage

import (
	"context"
	"matchup/pkg/domain"
)

// MessageStorage defines CRUD and query operations related to direct messages.
type MessageStorage interface {
	// StoreMessage inserts a message and returns it with generated fields.
	// Unknown users are reported as *ConstraintError.
	StoreMessage(ctx context.Context, message domain.Message) (*domain.Message, error)
	// MessageByID returns the message or nil when not found.
	MessageByID(ctx context.Context, ID domain.MessageID) (*domain.Message, error)
	// UpdateMessageText replaces the text and returns the updated row, or nil
	// when not found.
	UpdateMessageText(ctx context.Context, ID domain.MessageID, text string) (*domain.Message, error)
	// DeleteMessage deletes a message and reports whether a row was deleted.
	DeleteMessage(ctx context.Context, ID domain.MessageID) (bool, error)
	// Conversation returns messages exchanged between the two users in either
	// direction, newest first, skipping offset rows and returning at most limit.
	Conversation(ctx context.Context, userA, userB domain.UserID, offset, limit uint) ([]domain.Message, error)
}
