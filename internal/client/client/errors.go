package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNetwork    = errors.New("network error")
	ErrServer     = errors.New("server error")
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// APIError is a non-2xx response from the storage API. Kind is one of the
// sentinel errors above so callers can use errors.Is.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
	Kind       error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %v (%d): %s", e.Op, e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %v (%d)", e.Op, e.Kind, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

func kindForStatus(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest,
		http.StatusRequestEntityTooLarge,
		http.StatusUnsupportedMediaType,
		http.StatusUnprocessableEntity:
		return ErrValidation
	}
	return ErrServer
}
