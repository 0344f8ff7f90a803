package models

import (
	"time"

	"github.com/pocketbase/pocketbase/core"
)

const (
	TicketStatusConfirmed = "confirmed"
	TicketStatusPending   = "pending"
	TicketStatusCancelled = "cancelled"
)

type Ticket struct {
	ID               string    `json:"id"`
	MatchID          string    `json:"match_id"`
	MatchDetails     string    `json:"match_details"` // snapshot taken at booking time, never recomputed
	Quantity         int       `json:"quantity"`
	TotalAmount      int64     `json:"total_amount"`
	BookingReference string    `json:"booking_reference"`
	SeatNumbers      string    `json:"seat_numbers"`
	HolderName       string    `json:"holder_name"`
	HolderEmail      string    `json:"holder_email"`
	HolderPhone      string    `json:"holder_phone,omitempty"`
	Status           string    `json:"status"` // confirmed, pending, cancelled
	MatchStatus      string    `json:"match_status,omitempty"`
	Created          time.Time `json:"created"`
}

// BookingRequest is the input contract of the booking transaction.
type BookingRequest struct {
	MatchID     string `json:"match_id"`
	Quantity    int    `json:"quantity"`
	HolderName  string `json:"holder_name"`
	HolderEmail string `json:"holder_email"`
	HolderPhone string `json:"holder_phone"`
}

// BookingConfirmation is returned on a committed booking.
type BookingConfirmation struct {
	BookingReference string   `json:"booking_reference"`
	TotalAmount      int64    `json:"total_amount"`
	SeatNumbers      []string `json:"seat_numbers"`
	AvailableSeats   int      `json:"available_seats"`
}

func TicketFromRecord(record *core.Record) Ticket {
	return Ticket{
		ID:               record.Id,
		MatchID:          record.GetString("match"),
		MatchDetails:     record.GetString("match_details"),
		Quantity:         record.GetInt("quantity"),
		TotalAmount:      int64(record.GetInt("total_amount")),
		BookingReference: record.GetString("booking_reference"),
		SeatNumbers:      record.GetString("seat_numbers"),
		HolderName:       record.GetString("holder_name"),
		HolderEmail:      record.GetString("holder_email"),
		HolderPhone:      record.GetString("holder_phone"),
		Status:           record.GetString("status"),
		Created:          record.GetDateTime("created").Time(),
	}
}
