package domain

import (
	"errors"
	"sort"
	"strings"
)

const (
	RoleUser  = "user"
	RoleStaff = "staff"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageInternalServerError  = "internal server error"

	ErrParseID        = errors.New("invalid id")
	ErrMissingToken   = errors.New("authentication credentials were not provided")
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrUserNotAllowed = errors.New("user not allowed")
)

// ValidationError reports field level problems with a request payload.
type ValidationError struct {
	Fields map[string]string
	Cause  error
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// FieldError flags field with the message of err and keeps err reachable
// through errors.Is.
func FieldError(field string, err error) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: err.Error()}, Cause: err}
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// OrNil returns nil when no field has been flagged.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
