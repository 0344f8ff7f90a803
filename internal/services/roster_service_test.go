package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cricketsync/internal/status"
	"cricketsync/models"
)

func TestRosterService_CreatePlayer(t *testing.T) {
	app := setupTestApp(t)
	service := NewRosterService(app)

	player, err := service.CreatePlayer(context.Background(), models.CreatePlayerRequest{
		Name:       "Asha Rao",
		Team:       "Riverside Eagles",
		College:    "Riverside College",
		Role:       models.PlayerRoleBatsman,
		RunsScored: 412,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, player.ID)
	assert.Equal(t, "Asha Rao", player.Name)
	assert.Equal(t, 412, player.RunsScored)

	for _, req := range []models.CreatePlayerRequest{
		{Team: "Riverside Eagles", Role: models.PlayerRoleBatsman},
		{Name: "Asha Rao", Role: models.PlayerRoleBatsman},
		{Name: "Asha Rao", Team: "Riverside Eagles"},
	} {
		_, err := service.CreatePlayer(context.Background(), req)
		assert.ErrorIs(t, err, status.ErrValidation)
	}
}

func TestRosterService_ListPlayers_TopScorersFirst(t *testing.T) {
	app := setupTestApp(t)
	service := NewRosterService(app)

	for _, p := range []struct {
		name string
		runs int
	}{
		{"Kiran Patel", 210},
		{"Asha Rao", 412},
		{"Dev Sharma", 305},
	} {
		_, err := service.CreatePlayer(context.Background(), models.CreatePlayerRequest{
			Name:       p.name,
			Team:       "Riverside Eagles",
			Role:       models.PlayerRoleBatsman,
			RunsScored: p.runs,
		})
		require.NoError(t, err)
	}

	players, err := service.ListPlayers(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 3)

	assert.Equal(t, "Asha Rao", players[0].Name)
	assert.Equal(t, "Dev Sharma", players[1].Name)
	assert.Equal(t, "Kiran Patel", players[2].Name)
}

func TestRosterService_DeletePlayer(t *testing.T) {
	app := setupTestApp(t)
	service := NewRosterService(app)

	player, err := service.CreatePlayer(context.Background(), models.CreatePlayerRequest{
		Name: "Asha Rao",
		Team: "Riverside Eagles",
		Role: models.PlayerRoleAllRounder,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeletePlayer(context.Background(), player.ID))

	players, err := service.ListPlayers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, players)

	assert.ErrorIs(t, service.DeletePlayer(context.Background(), player.ID), status.ErrValidation)
}
