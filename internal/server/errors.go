package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/portfolio/internal/content"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error. Invalid
// content files and anything unrecognized map to 500.
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		notFoundErr   *content.NotFoundError
		configErr     *content.ConfigurationError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &configErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage returns the message exposed to clients for err. Server-side
// failures are reported generically; details go to the log.
func publicMessage(err error, status int) string {
	switch status {
	case http.StatusServiceUnavailable:
		return "content unavailable"
	case http.StatusInternalServerError:
		return "internal server error"
	default:
		return err.Error()
	}
}
