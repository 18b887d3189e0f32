package service

import (
	"errors"
	"fmt"
)

// Store-layer error taxonomy. Handlers translate these to HTTP status codes
// with errors.Is / errors.As; nothing below the handler boundary knows about
// HTTP.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNotFound           = errors.New("record not found")
	ErrNotOwner           = errors.New("record belongs to another user")
)

// ValidationError reports a missing or empty required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
