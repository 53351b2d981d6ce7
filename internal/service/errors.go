package service

import (
	"errors"
	"fmt"
)

var (
	ErrUserExists         = errors.New("user with this email or username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// FieldError reports a missing or malformed request field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func missingField(field string) *FieldError {
	return &FieldError{Field: field, Message: "is required"}
}
