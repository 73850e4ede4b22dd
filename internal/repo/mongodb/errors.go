package mongodb

import "errors"

var (
	// ErrNotFound signals a single-record lookup with no match.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID signals a generated-id string that is not valid ObjectID hex.
	ErrInvalidID = errors.New("malformed id")
	// ErrMissingOwner signals a write or owner-scoped read without a uid.
	ErrMissingOwner = errors.New("owner uid is required")
)
