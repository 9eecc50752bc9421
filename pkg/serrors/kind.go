// Package serrors defines semantic error kinds shared by services and the
// HTTP layer. Services return *Error values; the transport maps the kind to a
// status code and exposes the message to the client.
package serrors

import "errors"

// Kind is a semantic error category. Kinds are comparable sentinels.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new Kind named name.
func NewKind(name string) Kind { return kind{s: name} }

// The kinds used across matchup. Their names are the "code" of API error
// responses.
var (
	// ErrNotFound: the user, photo, hobby, category or message does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized: missing or invalid token, or wrong credentials.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden: the caller may not touch someone else's resource.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest: the input failed validation.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict: a unique value is taken or a limit is reached.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal: anything unexpected. Its details are never shown to clients.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout: the operation ran out of time.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable: a dependency is temporarily down.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited: the caller sent too many requests.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// KindOf returns the first kind found in err's chain, or ErrInternal when
// there is none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}
