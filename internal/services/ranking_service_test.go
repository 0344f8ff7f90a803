package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cricketsync/internal/status"
	"cricketsync/models"
)

func TestRankingService_CreateTeam(t *testing.T) {
	app := setupTestApp(t)
	service := NewRankingService(app)

	team, err := service.CreateTeam(context.Background(), models.CreateTeamRequest{
		Name:    "Riverside Eagles",
		College: "Riverside College",
		Captain: "Asha Rao",
		Coach:   "D. Mehta",
	})
	require.NoError(t, err)

	assert.Equal(t, "Riverside Eagles", team.Name)
	assert.Equal(t, 0, team.MatchesPlayed)
	assert.Equal(t, 0, team.Points)

	_, err = service.CreateTeam(context.Background(), models.CreateTeamRequest{Name: "No College"})
	assert.ErrorIs(t, err, status.ErrValidation)

	// The unique index on the name rejects a second registration.
	_, err = service.CreateTeam(context.Background(), models.CreateTeamRequest{
		Name:    "Riverside Eagles",
		College: "Somewhere Else",
	})
	assert.Error(t, err)
}

func TestRankingService_RecordWin(t *testing.T) {
	app := setupTestApp(t)
	service := NewRankingService(app)

	createTestTeam(t, app, "Riverside Eagles", 5, 3, 2, 6, 0.25)

	team, err := service.RecordWin(context.Background(), "Riverside Eagles", 2)
	require.NoError(t, err)

	assert.Equal(t, 6, team.MatchesPlayed)
	assert.Equal(t, 4, team.MatchesWon)
	assert.Equal(t, 2, team.MatchesLost)
	assert.Equal(t, 8, team.Points)
}

func TestRankingService_RecordWin_CustomPoints(t *testing.T) {
	app := setupTestApp(t)
	service := NewRankingService(app)

	createTestTeam(t, app, "Riverside Eagles", 0, 0, 0, 0, 0)

	team, err := service.RecordWin(context.Background(), "Riverside Eagles", 5)
	require.NoError(t, err)

	assert.Equal(t, 1, team.MatchesPlayed)
	assert.Equal(t, 1, team.MatchesWon)
	assert.Equal(t, 5, team.Points)
}

func TestRankingService_RecordLoss(t *testing.T) {
	app := setupTestApp(t)
	service := NewRankingService(app)

	createTestTeam(t, app, "Hillcrest Titans", 5, 3, 2, 6, 0)

	team, err := service.RecordLoss(context.Background(), "Hillcrest Titans")
	require.NoError(t, err)

	assert.Equal(t, 6, team.MatchesPlayed)
	assert.Equal(t, 3, team.MatchesWon)
	assert.Equal(t, 3, team.MatchesLost)
	assert.Equal(t, 6, team.Points)
}

func TestRankingService_SetPoints_LeavesCountersAlone(t *testing.T) {
	app := setupTestApp(t)
	service := NewRankingService(app)

	createTestTeam(t, app, "Riverside Eagles", 5, 3, 2, 6, 0)

	team, err := service.SetPoints(context.Background(), "Riverside Eagles", 10)
	require.NoError(t, err)

	assert.Equal(t, 10, team.Points)
	assert.Equal(t, 5, team.MatchesPlayed)
	assert.Equal(t, 3, team.MatchesWon)
	assert.Equal(t, 2, team.MatchesLost)
}

func TestRankingService_TeamNotFound(t *testing.T) {
	app := setupTestApp(t)
	service := NewRankingService(app)

	_, err := service.RecordWin(context.Background(), "Ghost XI", 2)
	assert.ErrorIs(t, err, status.ErrTeamNotFound)

	_, err = service.RecordLoss(context.Background(), "Ghost XI")
	assert.ErrorIs(t, err, status.ErrTeamNotFound)

	_, err = service.SetPoints(context.Background(), "", 4)
	assert.ErrorIs(t, err, status.ErrTeamNotFound)
}

func TestRankingService_SetNetRunRate(t *testing.T) {
	app := setupTestApp(t)
	service := NewRankingService(app)

	createTestTeam(t, app, "Riverside Eagles", 5, 3, 2, 6, 0)

	// 300/50 - 250/50 = 1.000
	team, err := service.SetNetRunRate(context.Background(), "Riverside Eagles", models.NetRunRateRequest{
		RunsFor:     300,
		OversFaced:  "50",
		RunsAgainst: 250,
		OversBowled: "50",
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, team.NetRunRate, 0.0001)

	_, err = service.SetNetRunRate(context.Background(), "Riverside Eagles", models.NetRunRateRequest{
		RunsFor:     300,
		OversFaced:  "0",
		RunsAgainst: 250,
		OversBowled: "50",
	})
	assert.ErrorIs(t, err, status.ErrValidation)

	_, err = service.SetNetRunRate(context.Background(), "Riverside Eagles", models.NetRunRateRequest{
		RunsFor:     300,
		OversFaced:  "fifty",
		RunsAgainst: 250,
		OversBowled: "50",
	})
	assert.ErrorIs(t, err, status.ErrValidation)
}

func TestRankingService_ListRankings_Order(t *testing.T) {
	app := setupTestApp(t)
	service := NewRankingService(app)

	createTestTeam(t, app, "Lakeside Chargers", 6, 3, 3, 6, 0.100)
	createTestTeam(t, app, "Riverside Eagles", 6, 5, 1, 10, 0.750)
	createTestTeam(t, app, "Hillcrest Titans", 6, 3, 3, 6, 0.420)

	teams, err := service.ListRankings(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 3)

	assert.Equal(t, "Riverside Eagles", teams[0].Name)
	// Equal points, so net run rate breaks the tie.
	assert.Equal(t, "Hillcrest Titans", teams[1].Name)
	assert.Equal(t, "Lakeside Chargers", teams[2].Name)
}
