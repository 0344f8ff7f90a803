package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cricketsync/internal/status"
	"cricketsync/models"
)

func TestInventoryService_CreateMatch_SeatsOpenAtCapacity(t *testing.T) {
	app := setupTestApp(t)
	service := NewInventoryService(app, nil)

	match, err := service.CreateMatch(context.Background(), models.CreateMatchRequest{
		Team1:       "Riverside Eagles",
		Team2:       "Hillcrest Titans",
		MatchDate:   "2026-09-12 14:30:00.000Z",
		MatchTime:   "14:30",
		Venue:       "University Oval",
		TicketPrice: 500,
		TotalSeats:  120,
	})
	require.NoError(t, err)

	assert.Equal(t, 120, match.TotalSeats)
	assert.Equal(t, 120, match.AvailableSeats)
	assert.Equal(t, models.MatchStatusUpcoming, match.Status)
	assert.Equal(t, int64(500), match.TicketPrice)
}

func TestInventoryService_CreateMatch_Validation(t *testing.T) {
	app := setupTestApp(t)
	service := NewInventoryService(app, nil)

	cases := []models.CreateMatchRequest{
		{Team2: "Hillcrest Titans", MatchDate: "2026-09-12 14:30:00.000Z"},
		{Team1: "Riverside Eagles", MatchDate: "2026-09-12 14:30:00.000Z"},
		{Team1: "Riverside Eagles", Team2: "Hillcrest Titans"},
		{Team1: "Riverside Eagles", Team2: "Hillcrest Titans", MatchDate: "2026-09-12 14:30:00.000Z", TotalSeats: -1},
		{Team1: "Riverside Eagles", Team2: "Hillcrest Titans", MatchDate: "2026-09-12 14:30:00.000Z", TicketPrice: -5},
	}

	for _, req := range cases {
		_, err := service.CreateMatch(context.Background(), req)
		assert.ErrorIs(t, err, status.ErrValidation)
	}
}

func TestInventoryService_GetBookableMatch(t *testing.T) {
	app := setupTestApp(t)
	service := NewInventoryService(app, nil)

	upcoming := createTestMatch(t, app, 50, 500, models.MatchStatusUpcoming)
	live := createTestMatch(t, app, 50, 500, models.MatchStatusLive)

	match, err := service.GetBookableMatch(context.Background(), upcoming.Id)
	require.NoError(t, err)
	assert.Equal(t, upcoming.Id, match.ID)

	// Non-upcoming and missing matches look identical to the caller.
	_, errLive := service.GetBookableMatch(context.Background(), live.Id)
	assert.ErrorIs(t, errLive, status.ErrMatchUnavailable)

	_, errMissing := service.GetBookableMatch(context.Background(), "nonexistent")
	assert.ErrorIs(t, errMissing, status.ErrMatchUnavailable)

	assert.Equal(t, errLive, errMissing)
}

func TestInventoryService_ListMatches_OrderedByDate(t *testing.T) {
	app := setupTestApp(t)
	service := NewInventoryService(app, nil)

	later := createTestMatch(t, app, 50, 500, models.MatchStatusUpcoming)
	later.Set("match_date", "2026-10-01 10:00:00.000Z")
	require.NoError(t, app.Save(later))

	earlier := createTestMatch(t, app, 50, 500, models.MatchStatusUpcoming)
	earlier.Set("match_date", "2026-09-01 10:00:00.000Z")
	require.NoError(t, app.Save(earlier))

	matches, err := service.ListMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, earlier.Id, matches[0].ID)
	assert.Equal(t, later.Id, matches[1].ID)
}

func TestInventoryService_Availability_StoreFallback(t *testing.T) {
	app := setupTestApp(t)
	service := NewInventoryService(app, nil)

	match := createTestMatch(t, app, 50, 500, models.MatchStatusUpcoming)
	match.Set("available_seats", 17)
	require.NoError(t, app.Save(match))

	available, err := service.Availability(context.Background(), match.Id)
	require.NoError(t, err)
	assert.Equal(t, 17, available)

	_, err = service.Availability(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, status.ErrMatchUnavailable)
}

func TestInventoryService_DeleteMatch(t *testing.T) {
	app := setupTestApp(t)
	service := NewInventoryService(app, nil)

	match := createTestMatch(t, app, 50, 500, models.MatchStatusUpcoming)

	require.NoError(t, service.DeleteMatch(context.Background(), match.Id))

	_, err := app.FindRecordById("matches", match.Id)
	assert.Error(t, err)

	assert.ErrorIs(t, service.DeleteMatch(context.Background(), match.Id), status.ErrMatchUnavailable)
}

func TestInventoryService_DeleteMatch_RestrictedWhileTicketsExist(t *testing.T) {
	app := setupTestApp(t)
	service := NewInventoryService(app, nil)
	booking := newBookingService(app)

	match := createTestMatch(t, app, 50, 500, models.MatchStatusUpcoming)

	_, err := booking.BookTicket(context.Background(), models.BookingRequest{
		MatchID:     match.Id,
		Quantity:    1,
		HolderName:  "Asha Rao",
		HolderEmail: "asha@example.com",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, service.DeleteMatch(context.Background(), match.Id), status.ErrMatchHasTickets)

	// The match is still there, untouched apart from the booked seat.
	assert.Equal(t, 49, availableSeats(t, app, match.Id))
}
