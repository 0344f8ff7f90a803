package services

import (
	"context"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"

	"cricketsync/internal/status"
	"cricketsync/models"
)

// RankingService applies match outcomes and administrative overrides to the
// team table. Counters carry no bounds checking: issuing inconsistent
// outcomes is the caller's responsibility.
type RankingService struct {
	app core.App
}

func NewRankingService(app core.App) *RankingService {
	return &RankingService{app: app}
}

func (s *RankingService) CreateTeam(ctx context.Context, req models.CreateTeamRequest) (*models.Team, error) {
	if req.Name == "" || req.College == "" {
		return nil, status.ErrValidation
	}

	collection, err := s.app.FindCollectionByNameOrId("teams")
	if err != nil {
		return nil, storeErr(err)
	}

	record := core.NewRecord(collection)
	record.Set("name", req.Name)
	record.Set("college", req.College)
	record.Set("captain", req.Captain)
	record.Set("coach", req.Coach)
	record.Set("matches_played", 0)
	record.Set("matches_won", 0)
	record.Set("matches_lost", 0)
	record.Set("points", 0)
	record.Set("net_run_rate", req.NetRunRate)

	if err := s.app.Save(record); err != nil {
		return nil, storeErr(err)
	}

	team := models.TeamFromRecord(record)
	return &team, nil
}

// RecordWin counts one played and one won match and awards points (the
// handler defaults an omitted value to two, the league standard).
func (s *RankingService) RecordWin(ctx context.Context, teamName string, points int) (*models.Team, error) {
	record, err := s.findTeamByName(teamName)
	if err != nil {
		return nil, err
	}

	record.Set("matches_played", record.GetInt("matches_played")+1)
	record.Set("matches_won", record.GetInt("matches_won")+1)
	record.Set("points", record.GetInt("points")+points)

	if err := s.app.Save(record); err != nil {
		return nil, storeErr(err)
	}

	team := models.TeamFromRecord(record)
	return &team, nil
}

// RecordLoss counts one played and one lost match; points stay put.
func (s *RankingService) RecordLoss(ctx context.Context, teamName string) (*models.Team, error) {
	record, err := s.findTeamByName(teamName)
	if err != nil {
		return nil, err
	}

	record.Set("matches_played", record.GetInt("matches_played")+1)
	record.Set("matches_lost", record.GetInt("matches_lost")+1)

	if err := s.app.Save(record); err != nil {
		return nil, storeErr(err)
	}

	team := models.TeamFromRecord(record)
	return &team, nil
}

// SetPoints overwrites the points total without touching any match counter.
// This is an administrative override, not a match outcome.
func (s *RankingService) SetPoints(ctx context.Context, teamName string, points int) (*models.Team, error) {
	record, err := s.findTeamByName(teamName)
	if err != nil {
		return nil, err
	}

	record.Set("points", points)

	if err := s.app.Save(record); err != nil {
		return nil, storeErr(err)
	}

	team := models.TeamFromRecord(record)
	return &team, nil
}

// SetNetRunRate recomputes NRR = runsFor/oversFaced - runsAgainst/oversBowled
// with decimal arithmetic, rounded to three places.
func (s *RankingService) SetNetRunRate(ctx context.Context, teamName string, req models.NetRunRateRequest) (*models.Team, error) {
	oversFaced, err := decimal.NewFromString(req.OversFaced)
	if err != nil || oversFaced.IsZero() {
		return nil, status.ErrValidation
	}
	oversBowled, err := decimal.NewFromString(req.OversBowled)
	if err != nil || oversBowled.IsZero() {
		return nil, status.ErrValidation
	}

	record, findErr := s.findTeamByName(teamName)
	if findErr != nil {
		return nil, findErr
	}

	nrr := decimal.NewFromInt(int64(req.RunsFor)).Div(oversFaced).
		Sub(decimal.NewFromInt(int64(req.RunsAgainst)).Div(oversBowled)).
		Round(3)
	record.Set("net_run_rate", nrr.InexactFloat64())

	if err := s.app.Save(record); err != nil {
		return nil, storeErr(err)
	}

	team := models.TeamFromRecord(record)
	return &team, nil
}

// ListRankings orders teams by points, ties broken by net run rate.
func (s *RankingService) ListRankings(ctx context.Context) ([]models.Team, error) {
	records, err := s.app.FindRecordsByFilter("teams", "id != ''", "-points,-net_run_rate", 0, 0)
	if err != nil {
		return nil, storeErr(err)
	}

	teams := make([]models.Team, 0, len(records))
	for _, record := range records {
		teams = append(teams, models.TeamFromRecord(record))
	}
	return teams, nil
}

func (s *RankingService) findTeamByName(teamName string) (*core.Record, error) {
	if teamName == "" {
		return nil, status.ErrTeamNotFound
	}
	record, err := s.app.FindFirstRecordByFilter("teams", "name = {:name}", dbx.Params{"name": teamName})
	if err != nil {
		return nil, status.ErrTeamNotFound
	}
	return record, nil
}
