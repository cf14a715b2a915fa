package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateKey is returned when a write collides with a unique constraint.
var ErrDuplicateKey = errors.New("duplicate key")

const uniqueViolation = "23505"

// DuplicateKeyError names the column whose unique constraint was violated.
// It matches ErrDuplicateKey with errors.Is.
type DuplicateKeyError struct {
	Field      string
	Constraint string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %s", e.Field)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// translateError maps driver errors onto the store's sentinel errors.
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return &DuplicateKeyError{
			Field:      fieldFromConstraint(pqErr.Constraint),
			Constraint: pqErr.Constraint,
		}
	}
	return err
}

// fieldFromConstraint extracts the column from Postgres' default unique
// constraint name, e.g. "users_email_key" -> "email".
func fieldFromConstraint(constraint string) string {
	name := strings.TrimSuffix(constraint, "_key")
	for _, field := range []string{"username", "email", "slug", "section"} {
		if strings.HasSuffix(name, "_"+field) || strings.Contains(name, "_"+field+"_") {
			return field
		}
	}
	return name
}
