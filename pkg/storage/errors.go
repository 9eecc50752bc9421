package storage

import (
	"errors"
	"fmt"
)

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReference is returned when a write references a row that does not exist
	// (foreign key violation).
	ErrReference = errors.New("referenced record does not exist")
)

// Constraint names declared by the migrations. Services use them to tell apart
// which unique or foreign key constraint rejected a write.
const (
	ConstraintUserLogin     = "users_login_key"
	ConstraintUserEmail     = "users_email_key"
	ConstraintHobbyName     = "hobbies_name_key"
	ConstraintHobbyCategory = "hobbies_category_id_fkey"
	ConstraintCategoryName  = "categories_name_key"
)

// ConstraintError describes a constraint violation reported by the database.
// It matches ErrDuplicate or ErrReference through errors.Is.
type ConstraintError struct {
	// Kind is either ErrDuplicate or ErrReference.
	Kind error
	// Constraint is the name of the violated constraint.
	Constraint string
	// Err is the driver error.
	Err error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Kind, e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() []error { return []error{e.Kind, e.Err} }

// ViolatedConstraint returns the name of the constraint violated somewhere in
// err's chain, or an empty string.
func ViolatedConstraint(err error) string {
	var cErr *ConstraintError
	if errors.As(err, &cErr) {
		return cErr.Constraint
	}

	return ""
}
