package models

import (
	"time"

	"github.com/pocketbase/pocketbase/core"
)

type Team struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	College       string    `json:"college"`
	Captain       string    `json:"captain,omitempty"`
	Coach         string    `json:"coach,omitempty"`
	MatchesPlayed int       `json:"matches_played"`
	MatchesWon    int       `json:"matches_won"`
	MatchesLost   int       `json:"matches_lost"`
	Points        int       `json:"points"`
	NetRunRate    float64   `json:"net_run_rate"`
	Created       time.Time `json:"created"`
	Updated       time.Time `json:"updated"`
}

type CreateTeamRequest struct {
	Name       string  `json:"name"`
	College    string  `json:"college"`
	Captain    string  `json:"captain"`
	Coach      string  `json:"coach"`
	NetRunRate float64 `json:"net_run_rate"`
}

// NetRunRateRequest carries the innings aggregates used to recompute a
// team's net run rate. Overs are decimal strings, e.g. "48.5".
type NetRunRateRequest struct {
	RunsFor     int    `json:"runs_for"`
	OversFaced  string `json:"overs_faced"`
	RunsAgainst int    `json:"runs_against"`
	OversBowled string `json:"overs_bowled"`
}

func TeamFromRecord(record *core.Record) Team {
	return Team{
		ID:            record.Id,
		Name:          record.GetString("name"),
		College:       record.GetString("college"),
		Captain:       record.GetString("captain"),
		Coach:         record.GetString("coach"),
		MatchesPlayed: record.GetInt("matches_played"),
		MatchesWon:    record.GetInt("matches_won"),
		MatchesLost:   record.GetInt("matches_lost"),
		Points:        record.GetInt("points"),
		NetRunRate:    record.GetFloat("net_run_rate"),
		Created:       record.GetDateTime("created").Time(),
		Updated:       record.GetDateTime("updated").Time(),
	}
}
