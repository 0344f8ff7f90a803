package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"cricketsync/internal/services"
	"cricketsync/models"
)

type PlayerHandler struct {
	app    *pocketbase.PocketBase
	roster *services.RosterService
}

func NewPlayerHandler(app *pocketbase.PocketBase, roster *services.RosterService) *PlayerHandler {
	return &PlayerHandler{
		app:    app,
		roster: roster,
	}
}

// ListPlayers - roster ordered by runs scored
func (h *PlayerHandler) ListPlayers(e *core.RequestEvent) error {
	players, err := h.roster.ListPlayers(e.Request.Context())
	if err != nil {
		return apiError(err)
	}
	return e.JSON(http.StatusOK, players)
}

// CreatePlayer - admin player registration
func (h *PlayerHandler) CreatePlayer(e *core.RequestEvent) error {
	var req models.CreatePlayerRequest
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	player, err := h.roster.CreatePlayer(e.Request.Context(), req)
	if err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Player added successfully",
		"player":  player,
	})
}

// DeletePlayer - admin roster removal
func (h *PlayerHandler) DeletePlayer(e *core.RequestEvent) error {
	if err := h.roster.DeletePlayer(e.Request.Context(), e.Request.PathValue("playerId")); err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Player deleted successfully",
	})
}
