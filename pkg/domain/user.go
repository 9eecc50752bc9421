package domain

import "time"

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around the database serial to provide type safety at the domain layer.
type UserID int64

// User is a registered account together with its public profile.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`
	// Login is the unique username-like identifier used to sign in.
	Login string `json:"login"`
	// Email is the unique contact address of the user.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the password. It never leaves the service.
	PasswordHash string `json:"-"`
	// PhoneNumber is optional.
	PhoneNumber string `json:"phone_number,omitempty"`
	// FirstName and LastName are the display names of the user.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Photos are loaded eagerly by read operations that expose a profile.
	Photos []Photo `json:"photos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PhotoID uniquely identifies a user photo.
type PhotoID int64

// Photo is an image attached to a user profile.
type Photo struct {
	ID     PhotoID `json:"id"`
	UserID UserID  `json:"user_id"`
	// URL is the public address the photo is served from.
	URL string `json:"photo_url"`
	// Key identifies the blob in the photo store.
	Key string `json:"-"`
	// ContentType is the detected MIME type of the blob.
	ContentType string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
