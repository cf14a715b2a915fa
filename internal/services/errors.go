package services

import (
	"errors"

	"github.com/Ashupap/ShorelineVision-sub000/internal/store"
)

var (
	// ErrNotFound is the store's not-found sentinel, re-exported so callers
	// of services need not import the store.
	ErrNotFound = store.ErrNotFound

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicateSlug      = errors.New("slug already exists")
	ErrInvalidUpload      = errors.New("invalid upload")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidInput       = errors.New("invalid input")
)

// UploadError explains why an upload was rejected. It matches
// ErrInvalidUpload with errors.Is.
type UploadError struct {
	Reason string
}

func (e *UploadError) Error() string {
	return "invalid upload: " + e.Reason
}

func (e *UploadError) Is(target error) bool {
	return target == ErrInvalidUpload
}

// FieldError rejects a single request field. It matches ErrInvalidInput
// with errors.Is.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Reason
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidInput
}

// translateDuplicate maps a unique constraint violation to the sentinel
// naming the colliding field.
func translateDuplicate(err error) error {
	var dup *store.DuplicateKeyError
	if !errors.As(err, &dup) {
		return err
	}
	switch dup.Field {
	case "username":
		return ErrDuplicateUsername
	case "email":
		return ErrDuplicateEmail
	case "slug":
		return ErrDuplicateSlug
	}
	return err
}
