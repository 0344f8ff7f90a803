package services

import (
	"context"

	"github.com/pocketbase/pocketbase/core"

	"cricketsync/internal/status"
	"cricketsync/models"
)

// RosterService manages player records. Players reference their team by
// name, matching how scorecards and team sheets identify them.
type RosterService struct {
	app core.App
}

func NewRosterService(app core.App) *RosterService {
	return &RosterService{app: app}
}

func (s *RosterService) CreatePlayer(ctx context.Context, req models.CreatePlayerRequest) (*models.Player, error) {
	if req.Name == "" || req.Team == "" || req.Role == "" {
		return nil, status.ErrValidation
	}

	collection, err := s.app.FindCollectionByNameOrId("players")
	if err != nil {
		return nil, storeErr(err)
	}

	record := core.NewRecord(collection)
	record.Set("name", req.Name)
	record.Set("team", req.Team)
	record.Set("college", req.College)
	record.Set("role", req.Role)
	record.Set("matches_played", req.MatchesPlayed)
	record.Set("runs_scored", req.RunsScored)
	record.Set("wickets_taken", req.WicketsTaken)
	record.Set("batting_average", req.BattingAverage)
	record.Set("bowling_average", req.BowlingAverage)
	record.Set("highest_score", req.HighestScore)
	record.Set("best_bowling", req.BestBowling)

	if err := s.app.Save(record); err != nil {
		return nil, storeErr(err)
	}

	player := models.PlayerFromRecord(record)
	return &player, nil
}

func (s *RosterService) DeletePlayer(ctx context.Context, playerID string) error {
	record, err := s.app.FindRecordById("players", playerID)
	if err != nil {
		return status.ErrValidation
	}
	if err := s.app.Delete(record); err != nil {
		return storeErr(err)
	}
	return nil
}

// ListPlayers returns the roster ordered by runs scored, top scorers first.
func (s *RosterService) ListPlayers(ctx context.Context) ([]models.Player, error) {
	records, err := s.app.FindRecordsByFilter("players", "id != ''", "-runs_scored", 0, 0)
	if err != nil {
		return nil, storeErr(err)
	}

	players := make([]models.Player, 0, len(records))
	for _, record := range records {
		players = append(players, models.PlayerFromRecord(record))
	}
	return players, nil
}
