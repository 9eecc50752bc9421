package serrors

import (
	"errors"
	"fmt"
)

// Error is a semantic error. Its Kind decides how the failure is reported and
// its message is safe to show to API clients. An optional cause is kept for
// logs.
//
// Matching:
//   - errors.Is(err, ErrNotFound) matches the kind as well as anything in the
//     cause chain, so storage sentinels stay reachable after wrapping.
//   - errors.As(err, &k) with a Kind target yields the kind.
//
// Formatting of Error():
//   - message and cause: "<msg>: <cause>"
//   - message only: "<msg>"
//   - cause only: "<cause>"
//   - neither: the kind name, e.g. "NOT_FOUND".
type Error struct {
	kind Kind  // semantic category
	err  error // cause, only for logs
	msg  string
}

// With builds an error of kind k whose client facing message is msgFmt
// formatted with args, e.g. With(ErrNotFound, "User not found").
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap is With that also records the cause. The cause never reaches API
// clients; Message only returns the formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly builds an error carrying nothing but its kind. Its Message is the
// kind name.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface, see Error for the format.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap exposes the cause to errors.Unwrap, Is and As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the kind of e or matches its cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.err != nil && errors.Is(e.err, target))
}

// As assigns the kind of e, or the first match in its cause chain, to target.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.err != nil && errors.As(e.err, target))
}

// Kind returns the semantic category of e, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the client facing message. Errors built with KindOnly fall
// back to the kind name so a response never carries an empty message.
func (e *Error) Message() string {
	if e.msg == "" && e.kind != nil {
		return e.kind.Error()
	}

	return e.msg
}

// Cause returns the wrapped cause, which may be nil.
func (e *Error) Cause() error { return e.err }
