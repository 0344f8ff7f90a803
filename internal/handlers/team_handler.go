package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"cricketsync/config"
	"cricketsync/internal/services"
	"cricketsync/models"
)

type TeamHandler struct {
	app     *pocketbase.PocketBase
	ranking *services.RankingService
	cfg     *config.Config
}

func NewTeamHandler(app *pocketbase.PocketBase, ranking *services.RankingService, cfg *config.Config) *TeamHandler {
	return &TeamHandler{
		app:     app,
		ranking: ranking,
		cfg:     cfg,
	}
}

// ListRankings - teams by points desc, net run rate breaking ties
func (h *TeamHandler) ListRankings(e *core.RequestEvent) error {
	teams, err := h.ranking.ListRankings(e.Request.Context())
	if err != nil {
		return apiError(err)
	}
	return e.JSON(http.StatusOK, teams)
}

// CreateTeam - admin team registration
func (h *TeamHandler) CreateTeam(e *core.RequestEvent) error {
	var req models.CreateTeamRequest
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	team, err := h.ranking.CreateTeam(e.Request.Context(), req)
	if err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Team added successfully",
		"team":    team,
	})
}

// RecordWin - one played, one won, points awarded (league default when omitted)
func (h *TeamHandler) RecordWin(e *core.RequestEvent) error {
	var req struct {
		PointsValue *int `json:"points_value"`
	}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	points := h.cfg.DefaultWinPoints
	if req.PointsValue != nil {
		points = *req.PointsValue
	}

	team, err := h.ranking.RecordWin(e.Request.Context(), e.Request.PathValue("name"), points)
	if err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Rankings updated successfully",
		"team":    team,
	})
}

// RecordLoss - one played, one lost, points untouched
func (h *TeamHandler) RecordLoss(e *core.RequestEvent) error {
	team, err := h.ranking.RecordLoss(e.Request.Context(), e.Request.PathValue("name"))
	if err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Rankings updated successfully",
		"team":    team,
	})
}

// SetPoints - administrative points override, match counters untouched
func (h *TeamHandler) SetPoints(e *core.RequestEvent) error {
	var req struct {
		PointsValue *int `json:"points_value"`
	}
	if err := e.BindBody(&req); err != nil || req.PointsValue == nil {
		return apis.NewBadRequestError("points_value is required", err)
	}

	team, err := h.ranking.SetPoints(e.Request.Context(), e.Request.PathValue("name"), *req.PointsValue)
	if err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Rankings updated successfully",
		"team":    team,
	})
}

// SetNetRunRate - recompute NRR from innings aggregates
func (h *TeamHandler) SetNetRunRate(e *core.RequestEvent) error {
	var req models.NetRunRateRequest
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	team, err := h.ranking.SetNetRunRate(e.Request.Context(), e.Request.PathValue("name"), req)
	if err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Net run rate updated successfully",
		"team":    team,
	})
}
