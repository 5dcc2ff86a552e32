package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthenticated indicates no user identity exists for the session.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// FieldError describes a single invalid field, in the shape the commerce
// API uses for its fieldErrors envelope member.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}
