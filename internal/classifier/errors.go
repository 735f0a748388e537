package classifier

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors for classification operations.
var (
	ErrValidation = errors.New("please enter a sentence to classify")
	ErrAuth       = errors.New("inference authentication failed")
	ErrTransport  = errors.New("inference call failed")
	ErrFormat     = errors.New("unexpected model output")

	ErrMarkerNotFound = fmt.Errorf("%w: %s marker not found", ErrFormat, Marker)
	ErrInvalidJSON    = fmt.Errorf("%w: invalid JSON after %s marker", ErrFormat, Marker)
)

// OutputError carries the raw model output alongside a format failure so
// callers can show it for debugging.
type OutputError struct {
	Raw string
	Err error
}

func (e *OutputError) Error() string {
	return e.Err.Error()
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// RawOutput returns the model text attached to err, if any.
func RawOutput(err error) (string, bool) {
	var out *OutputError
	if errors.As(err, &out) {
		return out.Raw, true
	}
	return "", false
}

// MapHTTPStatus maps classification domain errors to HTTP status codes.
// Marker-missing output is a soft failure and maps to 200.
func MapHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrMarkerNotFound):
		return http.StatusOK
	case errors.Is(err, ErrAuth),
		errors.Is(err, ErrTransport),
		errors.Is(err, ErrFormat):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
