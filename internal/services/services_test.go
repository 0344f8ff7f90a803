package services

import (
	"testing"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tests"
	"github.com/stretchr/testify/require"

	"cricketsync/migrations"
)

func setupTestApp(t *testing.T) *tests.TestApp {
	t.Helper()

	app, err := tests.NewTestApp()
	require.NoError(t, err)
	t.Cleanup(app.Cleanup)

	require.NoError(t, migrations.CreateCollections(app))
	return app
}

// newBookingService wires a booking service without Redis, PubNub or a
// deadline; the transaction itself only needs the store.
func newBookingService(app core.App) *BookingService {
	return NewBookingService(app, NewInventoryService(app, nil), nil, 0)
}

func createTestMatch(t *testing.T, app core.App, totalSeats int, ticketPrice int, matchStatus string) *core.Record {
	t.Helper()

	collection, err := app.FindCollectionByNameOrId("matches")
	require.NoError(t, err)

	record := core.NewRecord(collection)
	record.Set("team1", "Riverside Eagles")
	record.Set("team2", "Hillcrest Titans")
	record.Set("match_date", "2026-09-12 14:30:00.000Z")
	record.Set("match_time", "14:30")
	record.Set("venue", "University Oval")
	record.Set("ticket_price", ticketPrice)
	record.Set("total_seats", totalSeats)
	record.Set("available_seats", totalSeats)
	record.Set("status", matchStatus)
	require.NoError(t, app.Save(record))

	return record
}

func createTestTeam(t *testing.T, app core.App, name string, played, won, lost, points int, netRunRate float64) *core.Record {
	t.Helper()

	collection, err := app.FindCollectionByNameOrId("teams")
	require.NoError(t, err)

	record := core.NewRecord(collection)
	record.Set("name", name)
	record.Set("college", "Test College")
	record.Set("matches_played", played)
	record.Set("matches_won", won)
	record.Set("matches_lost", lost)
	record.Set("points", points)
	record.Set("net_run_rate", netRunRate)
	require.NoError(t, app.Save(record))

	return record
}

func countTickets(t *testing.T, app core.App, matchID string) int64 {
	t.Helper()

	total, err := app.CountRecords("tickets", dbx.HashExp{"match": matchID})
	require.NoError(t, err)
	return total
}

func availableSeats(t *testing.T, app core.App, matchID string) int {
	t.Helper()

	record, err := app.FindRecordById("matches", matchID)
	require.NoError(t, err)
	return record.GetInt("available_seats")
}
