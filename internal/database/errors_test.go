package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestStorageErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStorageError("create product", cause)

	if got := err.Error(); got != "create product: connection reset" {
		t.Errorf("unexpected message %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("StorageError should unwrap to its cause")
	}

	var storageErr *StorageError
	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.As(wrapped, &storageErr) {
		t.Error("StorageError should be recoverable through wrapping")
	}
}

func TestIsConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unique violation", &pq.Error{Code: "23505"}, true},
		{"foreign key violation", &pq.Error{Code: "23503"}, true},
		{"check violation", &pq.Error{Code: "23514"}, true},
		{"not null violation", &pq.Error{Code: "23502"}, true},
		{"serialization failure", &pq.Error{Code: "40001"}, false},
		{"wrapped constraint", fmt.Errorf("insert: %w", &pq.Error{Code: "23514"}), true},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		if got := IsConstraintViolation(tt.err); got != tt.want {
			t.Errorf("%s: IsConstraintViolation = %v, want %v", tt.name, got, tt.want)
		}
	}
}
