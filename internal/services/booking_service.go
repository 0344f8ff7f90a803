package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"cricketsync/internal/status"
	"cricketsync/models"
	"cricketsync/monitoring"
	"cricketsync/utils"
)

// BookingService runs the booking transaction: validate, check seats,
// record the ticket and decrement the counter as one atomic unit.
type BookingService struct {
	app       core.App
	inventory *InventoryService
	notifier  *NotifyService
	timeout   time.Duration
}

func NewBookingService(app core.App, inventory *InventoryService, notifier *NotifyService, timeout time.Duration) *BookingService {
	return &BookingService{
		app:       app,
		inventory: inventory,
		notifier:  notifier,
		timeout:   timeout,
	}
}

// BookTicket books quantity seats for a match. On success the ticket row is
// committed together with the seat decrement; on any failure nothing is
// persisted. The returned confirmation carries the reference and the exact
// integer amount charged.
func (s *BookingService) BookTicket(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error) {
	started := time.Now()

	confirmation, err := s.bookTicket(ctx, req)
	monitoring.TrackBooking(bookingOutcome(err), time.Since(started))
	if err != nil {
		return nil, err
	}

	monitoring.TrackSeatsSold(req.Quantity)
	monitoring.SetAvailableSeats(req.MatchID, confirmation.AvailableSeats)
	s.inventory.CacheAvailability(ctx, req.MatchID, confirmation.AvailableSeats)

	if s.notifier != nil {
		s.notifier.PublishSeatUpdate(req.MatchID, confirmation.AvailableSeats)
		s.notifier.PublishBookingConfirmed(req.MatchID, confirmation.BookingReference, req.Quantity)
	}

	return confirmation, nil
}

func (s *BookingService) bookTicket(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return nil, storeErr(err)
	}

	var confirmation *models.BookingConfirmation

	txErr := s.app.RunInTransaction(func(txApp core.App) error {
		match, err := findBookableMatch(txApp, req.MatchID)
		if err != nil {
			return err
		}

		available := match.GetInt("available_seats")
		if req.Quantity > available {
			return status.ErrInsufficientSeats
		}

		reference, err := utils.GenerateBookingReference(time.Now())
		if err != nil {
			return fmt.Errorf("%w: generate reference: %v", status.ErrBookingFailed, err)
		}
		seats, err := utils.GenerateSeatLabels(req.Quantity)
		if err != nil {
			return fmt.Errorf("%w: generate seat labels: %v", status.ErrBookingFailed, err)
		}

		// Integer currency units only; no floating point anywhere near money.
		totalAmount := int64(req.Quantity) * int64(match.GetInt("ticket_price"))

		collection, err := txApp.FindCollectionByNameOrId("tickets")
		if err != nil {
			return fmt.Errorf("%w: %v", status.ErrBookingFailed, err)
		}

		ticket := core.NewRecord(collection)
		ticket.Set("match", match.Id)
		ticket.Set("match_details", matchDetails(match))
		ticket.Set("quantity", req.Quantity)
		ticket.Set("total_amount", totalAmount)
		ticket.Set("booking_reference", reference)
		ticket.Set("seat_numbers", strings.Join(seats, ", "))
		ticket.Set("holder_name", req.HolderName)
		ticket.Set("holder_email", req.HolderEmail)
		ticket.Set("holder_phone", req.HolderPhone)
		ticket.Set("status", models.TicketStatusConfirmed)

		// A reference collision trips the unique index here; the whole
		// transaction rolls back and the caller may simply retry.
		if err := txApp.Save(ticket); err != nil {
			return fmt.Errorf("%w: %v", status.ErrBookingFailed, err)
		}

		if err := decrementSeats(txApp.NonconcurrentDB(), match.Id, req.Quantity); err != nil {
			return err
		}

		confirmation = &models.BookingConfirmation{
			BookingReference: reference,
			TotalAmount:      totalAmount,
			SeatNumbers:      seats,
			AvailableSeats:   available - req.Quantity,
		}
		return nil
	})
	if txErr != nil {
		return nil, storeErr(txErr)
	}

	return confirmation, nil
}

// ListTickets returns all bookings newest first, each annotated with the
// current status of its match (empty when the match no longer resolves).
func (s *BookingService) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	records, err := s.app.FindRecordsByFilter("tickets", "id != ''", "-created", 0, 0)
	if err != nil {
		return nil, storeErr(err)
	}

	tickets := make([]models.Ticket, 0, len(records))
	for _, record := range records {
		ticket := models.TicketFromRecord(record)
		if match, err := s.app.FindRecordById("matches", ticket.MatchID); err == nil {
			ticket.MatchStatus = match.GetString("status")
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}

func validateBookingRequest(req models.BookingRequest) error {
	if strings.TrimSpace(req.MatchID) == "" ||
		strings.TrimSpace(req.HolderName) == "" ||
		strings.TrimSpace(req.HolderEmail) == "" {
		return status.ErrValidation
	}
	if !strings.Contains(req.HolderEmail, "@") {
		return status.ErrValidation
	}
	if req.Quantity < 1 {
		return status.ErrValidation
	}
	return nil
}

// matchDetails builds the human-readable receipt line. It is stored on the
// ticket as a snapshot and never recomputed, so later match edits do not
// rewrite already issued receipts.
func matchDetails(match *core.Record) string {
	date := match.GetDateTime("match_date").Time().Format("Jan 02, 2006")
	return fmt.Sprintf("%s vs %s - %s", match.GetString("team1"), match.GetString("team2"), date)
}

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return "confirmed"
	case errors.Is(err, status.ErrValidation):
		return "validation_error"
	case errors.Is(err, status.ErrMatchUnavailable):
		return "match_unavailable"
	case errors.Is(err, status.ErrInsufficientSeats):
		return "insufficient_seats"
	case errors.Is(err, status.ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "failed"
	}
}
