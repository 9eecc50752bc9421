package domain

import "time"

// MessageID uniquely identifies a direct message.
type MessageID int64

// Message is a direct message sent from one user to another.
type Message struct {
	ID MessageID `json:"id"`
	// Text is the body of the message. It is never empty.
	Text string `json:"text"`
	// PhotoURL optionally references an image attached to the message.
	PhotoURL string `json:"photo_url,omitempty"`

	SenderID   UserID `json:"sender_id"`
	ReceiverID UserID `json:"receiver_id"`

	// Timestamp is when the message was sent.
	Timestamp time.Time `json:"timestamp"`
	// UpdatedAt is set when the sender edits the message; zero otherwise.
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// IsParticipant reports whether userID sent or received the message.
func (m *Message) IsParticipant(userID UserID) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}
