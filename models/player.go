package models

import (
	"time"

	"github.com/pocketbase/pocketbase/core"
)

const (
	PlayerRoleBatsman      = "batsman"
	PlayerRoleBowler       = "bowler"
	PlayerRoleAllRounder   = "all_rounder"
	PlayerRoleWicketKeeper = "wicket_keeper"
)

type Player struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Team           string    `json:"team"` // team name, not a relation
	College        string    `json:"college"`
	Role           string    `json:"role"` // batsman, bowler, all_rounder, wicket_keeper
	MatchesPlayed  int       `json:"matches_played"`
	RunsScored     int       `json:"runs_scored"`
	WicketsTaken   int       `json:"wickets_taken"`
	BattingAverage float64   `json:"batting_average"`
	BowlingAverage float64   `json:"bowling_average"`
	HighestScore   int       `json:"highest_score"`
	BestBowling    string    `json:"best_bowling,omitempty"`
	Created        time.Time `json:"created"`
}

type CreatePlayerRequest struct {
	Name           string  `json:"name"`
	Team           string  `json:"team"`
	College        string  `json:"college"`
	Role           string  `json:"role"`
	MatchesPlayed  int     `json:"matches_played"`
	RunsScored     int     `json:"runs_scored"`
	WicketsTaken   int     `json:"wickets_taken"`
	BattingAverage float64 `json:"batting_average"`
	BowlingAverage float64 `json:"bowling_average"`
	HighestScore   int     `json:"highest_score"`
	BestBowling    string  `json:"best_bowling"`
}

func PlayerFromRecord(record *core.Record) Player {
	return Player{
		ID:             record.Id,
		Name:           record.GetString("name"),
		Team:           record.GetString("team"),
		College:        record.GetString("college"),
		Role:           record.GetString("role"),
		MatchesPlayed:  record.GetInt("matches_played"),
		RunsScored:     record.GetInt("runs_scored"),
		WicketsTaken:   record.GetInt("wickets_taken"),
		BattingAverage: record.GetFloat("batting_average"),
		BowlingAverage: record.GetFloat("bowling_average"),
		HighestScore:   record.GetInt("highest_score"),
		BestBowling:    record.GetString("best_bowling"),
		Created:        record.GetDateTime("created").Time(),
	}
}
