package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"cricketsync/internal/services"
	"cricketsync/models"
)

type BookingHandler struct {
	app     *pocketbase.PocketBase
	booking *services.BookingService
}

func NewBookingHandler(app *pocketbase.PocketBase, booking *services.BookingService) *BookingHandler {
	return &BookingHandler{
		app:     app,
		booking: booking,
	}
}

// BookTicket - reserve seats for a match and issue the ticket
func (h *BookingHandler) BookTicket(e *core.RequestEvent) error {
	var req models.BookingRequest
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid booking data", err)
	}

	confirmation, err := h.booking.BookTicket(e.Request.Context(), req)
	if err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"success":           true,
		"booking_reference": confirmation.BookingReference,
		"total_amount":      confirmation.TotalAmount,
		"seat_numbers":      confirmation.SeatNumbers,
		"available_seats":   confirmation.AvailableSeats,
		"message":           "Booking confirmed successfully!",
	})
}

// ListTickets - admin view of all bookings, newest first
func (h *BookingHandler) ListTickets(e *core.RequestEvent) error {
	tickets, err := h.booking.ListTickets(e.Request.Context())
	if err != nil {
		return apiError(err)
	}
	return e.JSON(http.StatusOK, tickets)
}
