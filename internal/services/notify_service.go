package services

import (
	"context"
	"log"

	pubnub "github.com/pubnub/go"

	"cricketsync/utils"
)

const (
	bookingsChannel    = "bookings"
	matchChannelPrefix = "match-"
)

// NotifyService fans booking activity out to realtime subscribers. Publishes
// are fire-and-forget behind a circuit breaker: a dead PubNub must never
// fail or slow down a committed booking.
type NotifyService struct {
	pubnub  *pubnub.PubNub
	breaker *utils.CircuitBreaker
}

func NewNotifyService(pn *pubnub.PubNub) *NotifyService {
	return &NotifyService{
		pubnub:  pn,
		breaker: utils.NewCircuitBreaker("pubnub"),
	}
}

// PublishSeatUpdate announces the new seat count on the match channel.
func (s *NotifyService) PublishSeatUpdate(matchID string, available int) {
	s.publish(matchChannelPrefix+matchID, map[string]any{
		"type":            "seats_updated",
		"match_id":        matchID,
		"available_seats": available,
	})
}

// PublishBookingConfirmed announces a committed booking on the shared
// bookings channel.
func (s *NotifyService) PublishBookingConfirmed(matchID, reference string, quantity int) {
	s.publish(bookingsChannel, map[string]any{
		"type":              "booking_confirmed",
		"match_id":          matchID,
		"booking_reference": reference,
		"quantity":          quantity,
	})
}

func (s *NotifyService) publish(channel string, message map[string]any) {
	if s.pubnub == nil {
		return
	}

	go func() {
		_, err := s.breaker.Execute(context.Background(), func() (any, error) {
			_, _, err := s.pubnub.Publish().
				Channel(channel).
				Message(message).
				Execute()
			return nil, err
		})
		if err != nil {
			log.Printf("Error publishing to %s: %v", channel, err)
		}
	}()
}
