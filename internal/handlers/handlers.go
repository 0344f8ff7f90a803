package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase/apis"

	"cricketsync/internal/status"
)

// apiError maps the service error taxonomy onto HTTP responses. Every kind
// keeps its message so callers can distinguish failures.
func apiError(err error) error {
	switch {
	case errors.Is(err, status.ErrValidation),
		errors.Is(err, status.ErrInsufficientSeats),
		errors.Is(err, status.ErrBookingFailed):
		return apis.NewBadRequestError(err.Error(), err)
	case errors.Is(err, status.ErrMatchUnavailable),
		errors.Is(err, status.ErrTeamNotFound):
		return apis.NewNotFoundError(err.Error(), err)
	case errors.Is(err, status.ErrMatchHasTickets):
		return apis.NewApiError(http.StatusConflict, err.Error(), err)
	case errors.Is(err, status.ErrStoreUnavailable):
		return apis.NewApiError(http.StatusServiceUnavailable, err.Error(), err)
	default:
		return apis.NewBadRequestError("Request failed", err)
	}
}
