package database

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// StorageError wraps any database-level failure (connection loss, constraint
// violation, schema mismatch) with the operation that hit it. Domain outcomes
// like a missing product or an oversold order are sentinel errors, never
// StorageError.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// IsConstraintViolation reports whether err is a Postgres integrity
// constraint failure (unique, foreign key, not-null or check).
func IsConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505", "23503", "23502", "23514":
			return true
		}
	}
	return false
}
