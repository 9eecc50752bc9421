package message

import (
	"context"
	"matchup/pkg/domain"
)

// SendInput is the payload of a new direct message.
type SendInput struct {
	ReceiverID domain.UserID
	Text       string
	PhotoURL   string
}

//go:generate mockgen -package mockmessage -destination=mock/mockmessage.go matchup/internal/message Messenger
type Messenger interface {
	Send(ctx context.Context, sender domain.UserID, input SendInput) (*domain.Message, error)
	Get(ctx context.Context, ID domain.MessageID, caller domain.UserID) (*domain.Message, error)
	// Update replaces the text of a message. A nil text means the request
	// carried nothing to update.
	Update(ctx context.Context, ID domain.MessageID, caller domain.UserID, text *string) (*domain.Message, error)
	Delete(ctx context.Context, ID domain.MessageID, caller domain.UserID) error
	// Conversation returns messages exchanged between caller and peer, newest
	// first.
	Conversation(ctx context.Context, caller, peer domain.UserID, skip, limit uint) ([]domain.Message, error)
}
