package store

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the requested plan does not exist.
var ErrNotFound = errors.New("plan not found")

// NotFoundError wraps ErrNotFound with the missing id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("plan not found: %d", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
