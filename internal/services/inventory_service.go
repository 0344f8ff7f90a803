package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	"github.com/redis/go-redis/v9"

	"cricketsync/internal/status"
	"cricketsync/models"
)

const (
	availabilityKeyPrefix = "match:avail:"
	activeMatchesKey      = "active_matches"
)

func availabilityKey(matchID string) string {
	return availabilityKeyPrefix + matchID
}

// InventoryService is the durable source of truth for match seat counts.
type InventoryService struct {
	app   core.App
	redis *redis.Client
}

func NewInventoryService(app core.App, redisClient *redis.Client) *InventoryService {
	return &InventoryService{app: app, redis: redisClient}
}

// CreateMatch persists a new match. Seats always open at full capacity;
// the client-supplied available count is ignored.
func (s *InventoryService) CreateMatch(ctx context.Context, req models.CreateMatchRequest) (*models.Match, error) {
	if req.Team1 == "" || req.Team2 == "" || req.MatchDate == "" {
		return nil, status.ErrValidation
	}
	if req.TotalSeats < 0 || req.TicketPrice < 0 {
		return nil, status.ErrValidation
	}

	matchStatus := req.Status
	if matchStatus == "" {
		matchStatus = models.MatchStatusUpcoming
	}

	collection, err := s.app.FindCollectionByNameOrId("matches")
	if err != nil {
		return nil, storeErr(err)
	}

	record := core.NewRecord(collection)
	record.Set("team1", req.Team1)
	record.Set("team2", req.Team2)
	record.Set("match_date", req.MatchDate)
	record.Set("match_time", req.MatchTime)
	record.Set("venue", req.Venue)
	record.Set("ticket_price", req.TicketPrice)
	record.Set("total_seats", req.TotalSeats)
	record.Set("available_seats", req.TotalSeats)
	record.Set("status", matchStatus)
	record.Set("team1_score", req.Team1Score)
	record.Set("team2_score", req.Team2Score)
	record.Set("winner", req.Winner)
	record.Set("man_of_match", req.ManOfMatch)
	record.Set("match_summary", req.MatchSummary)

	if err := s.app.Save(record); err != nil {
		return nil, storeErr(err)
	}

	if s.redis != nil {
		s.redis.SAdd(ctx, activeMatchesKey, record.Id)
		s.redis.Set(ctx, availabilityKey(record.Id), req.TotalSeats, 0)
	}

	match := models.MatchFromRecord(record)
	return &match, nil
}

// ListMatches returns every match ordered by date, soonest first.
func (s *InventoryService) ListMatches(ctx context.Context) ([]models.Match, error) {
	records, err := s.app.FindRecordsByFilter("matches", "id != ''", "match_date", 0, 0)
	if err != nil {
		return nil, storeErr(err)
	}

	matches := make([]models.Match, 0, len(records))
	for _, record := range records {
		matches = append(matches, models.MatchFromRecord(record))
	}
	return matches, nil
}

// GetBookableMatch returns the match only while it is still upcoming. A
// missing match and a non-upcoming one are deliberately indistinguishable.
func (s *InventoryService) GetBookableMatch(ctx context.Context, matchID string) (*models.Match, error) {
	record, err := findBookableMatch(s.app, matchID)
	if err != nil {
		return nil, err
	}
	match := models.MatchFromRecord(record)
	return &match, nil
}

// Availability reports the current available seats, preferring the Redis
// cache and repopulating it on a miss.
func (s *InventoryService) Availability(ctx context.Context, matchID string) (int, error) {
	if s.redis != nil {
		value, err := s.redis.Get(ctx, availabilityKey(matchID)).Result()
		if err == nil {
			if available, convErr := strconv.Atoi(value); convErr == nil {
				return available, nil
			}
		} else if err != redis.Nil {
			log.Printf("availability cache read failed for %s: %v", matchID, err)
		}
	}

	record, err := s.app.FindRecordById("matches", matchID)
	if err != nil {
		return 0, status.ErrMatchUnavailable
	}

	available := record.GetInt("available_seats")
	s.CacheAvailability(ctx, matchID, available)
	return available, nil
}

// DeleteMatch removes a match. Deletion is refused while tickets still
// reference it so receipts never point at a vanished fixture.
func (s *InventoryService) DeleteMatch(ctx context.Context, matchID string) error {
	record, err := s.app.FindRecordById("matches", matchID)
	if err != nil {
		return status.ErrMatchUnavailable
	}

	total, err := s.app.CountRecords("tickets", dbx.HashExp{"match": matchID})
	if err != nil {
		return storeErr(err)
	}
	if total > 0 {
		return status.ErrMatchHasTickets
	}

	if err := s.app.Delete(record); err != nil {
		return storeErr(err)
	}

	if s.redis != nil {
		s.redis.SRem(ctx, activeMatchesKey, matchID)
		s.redis.Del(ctx, availabilityKey(matchID))
	}
	return nil
}

// CacheAvailability mirrors a seat count into Redis for the availability
// endpoint and the metrics monitor.
func (s *InventoryService) CacheAvailability(ctx context.Context, matchID string, available int) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, availabilityKey(matchID), available, 0).Err(); err != nil {
		log.Printf("availability cache write failed for %s: %v", matchID, err)
	}
}

// findBookableMatch is shared with the booking transaction, which performs
// the same lookup against its transaction app.
func findBookableMatch(app core.App, matchID string) (*core.Record, error) {
	if matchID == "" {
		return nil, status.ErrMatchUnavailable
	}
	record, err := app.FindRecordById("matches", matchID)
	if err != nil || record.GetString("status") != models.MatchStatusUpcoming {
		return nil, status.ErrMatchUnavailable
	}
	return record, nil
}

// decrementSeats applies the guarded seat decrement. The WHERE clause keeps
// the counter non-negative even if the earlier read raced a concurrent
// booking; zero affected rows means the seats were gone.
func decrementSeats(db dbx.Builder, matchID string, quantity int) error {
	result, err := db.NewQuery(
		"UPDATE matches SET available_seats = available_seats - {:quantity} " +
			"WHERE id = {:id} AND available_seats >= {:quantity}",
	).Bind(dbx.Params{"quantity": quantity, "id": matchID}).Execute()
	if err != nil {
		return fmt.Errorf("decrement seats: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("decrement seats: %w", err)
	}
	if rows != 1 {
		return status.ErrInsufficientSeats
	}
	return nil
}

// storeErr classifies timeouts and cancellations as the transient
// StoreUnavailable kind; everything else passes through untouched.
func storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return status.ErrStoreUnavailable
	}
	return err
}
