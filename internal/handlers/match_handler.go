package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"cricketsync/internal/services"
	"cricketsync/models"
)

type MatchHandler struct {
	app       *pocketbase.PocketBase
	inventory *services.InventoryService
}

func NewMatchHandler(app *pocketbase.PocketBase, inventory *services.InventoryService) *MatchHandler {
	return &MatchHandler{
		app:       app,
		inventory: inventory,
	}
}

// ListMatches - all matches ordered by date
func (h *MatchHandler) ListMatches(e *core.RequestEvent) error {
	matches, err := h.inventory.ListMatches(e.Request.Context())
	if err != nil {
		return apiError(err)
	}
	return e.JSON(http.StatusOK, matches)
}

// GetAvailability - live seat count for one match
func (h *MatchHandler) GetAvailability(e *core.RequestEvent) error {
	matchID := e.Request.PathValue("matchId")

	available, err := h.inventory.Availability(e.Request.Context(), matchID)
	if err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"match_id":        matchID,
		"available_seats": available,
	})
}

// CreateMatch - admin creation; seats open at full capacity
func (h *MatchHandler) CreateMatch(e *core.RequestEvent) error {
	var req models.CreateMatchRequest
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	match, err := h.inventory.CreateMatch(e.Request.Context(), req)
	if err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Match added successfully",
		"match":   match,
	})
}

// DeleteMatch - admin deletion; refused while tickets reference the match
func (h *MatchHandler) DeleteMatch(e *core.RequestEvent) error {
	matchID := e.Request.PathValue("matchId")

	if err := h.inventory.DeleteMatch(e.Request.Context(), matchID); err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Match deleted successfully",
	})
}
