package types

import "net/http"

// APIError is a failure the client is allowed to see. Anything that is
// not an *APIError is treated as internal and surfaces as a generic
// 500, with the detail logged server-side only.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewValidationError(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: msg}
}

func NewUnauthorizedError(msg string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: msg}
}

func NewNotFoundError(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: msg}
}

// ErrInvalidCredentials covers both a wrong password and an unknown
// username; login must not tell the two apart.
var ErrInvalidCredentials = &APIError{Status: http.StatusBadRequest, Message: "Invalid Credentials!"}
