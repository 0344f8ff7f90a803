package status

import "errors"

// Error taxonomy surfaced by the core services. Handlers map these onto
// HTTP status codes; none of them is retried internally.
var (
	ErrValidation        = errors.New("validation: missing or invalid request fields")
	ErrMatchUnavailable  = errors.New("match: match not found or not available for booking")
	ErrInsufficientSeats = errors.New("booking: not enough seats available")
	ErrTeamNotFound      = errors.New("team: team not found")
	ErrMatchHasTickets   = errors.New("match: match has booked tickets")
	ErrStoreUnavailable  = errors.New("store: store unavailable")
	ErrBookingFailed     = errors.New("booking: booking failed")
)
