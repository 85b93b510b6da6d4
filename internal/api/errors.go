package api

import (
	"fmt"
	"net/http"

	"github.com/osse101/IdleGarden_Go/internal/domain"
)

// APIError is a non-2xx backend response
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: API returned status: %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s: API returned status: %d: %s", e.Method, e.Path, e.Status, e.Message)
}

// Unwrap maps the status to a domain error so callers can use errors.Is
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return domain.ErrUnauthorized
	case e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status == http.StatusBadRequest:
		return domain.ErrInvalidInput
	case e.Status >= http.StatusInternalServerError:
		return domain.ErrBackendFailure
	default:
		return nil
	}
}

func (e *APIError) retryable() bool {
	return e.Status >= http.StatusInternalServerError
}
