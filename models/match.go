package models

import (
	"time"

	"github.com/pocketbase/pocketbase/core"
)

const (
	MatchStatusUpcoming  = "upcoming"
	MatchStatusLive      = "live"
	MatchStatusCompleted = "completed"
)

type Match struct {
	ID             string    `json:"id"`
	Team1          string    `json:"team1"`
	Team2          string    `json:"team2"`
	MatchDate      time.Time `json:"match_date"`
	MatchTime      string    `json:"match_time"`
	Venue          string    `json:"venue"`
	TicketPrice    int64     `json:"ticket_price"`
	TotalSeats     int       `json:"total_seats"`
	AvailableSeats int       `json:"available_seats"`
	Status         string    `json:"status"` // upcoming, live, completed
	Team1Score     string    `json:"team1_score,omitempty"`
	Team2Score     string    `json:"team2_score,omitempty"`
	Winner         string    `json:"winner,omitempty"`
	ManOfMatch     string    `json:"man_of_match,omitempty"`
	MatchSummary   string    `json:"match_summary,omitempty"`
	Created        time.Time `json:"created"`
	Updated        time.Time `json:"updated"`
}

type CreateMatchRequest struct {
	Team1        string `json:"team1"`
	Team2        string `json:"team2"`
	MatchDate    string `json:"match_date"`
	MatchTime    string `json:"match_time"`
	Venue        string `json:"venue"`
	TicketPrice  int64  `json:"ticket_price"`
	TotalSeats   int    `json:"total_seats"`
	Status       string `json:"status"`
	Team1Score   string `json:"team1_score"`
	Team2Score   string `json:"team2_score"`
	Winner       string `json:"winner"`
	ManOfMatch   string `json:"man_of_match"`
	MatchSummary string `json:"match_summary"`
}

func MatchFromRecord(record *core.Record) Match {
	return Match{
		ID:             record.Id,
		Team1:          record.GetString("team1"),
		Team2:          record.GetString("team2"),
		MatchDate:      record.GetDateTime("match_date").Time(),
		MatchTime:      record.GetString("match_time"),
		Venue:          record.GetString("venue"),
		TicketPrice:    int64(record.GetInt("ticket_price")),
		TotalSeats:     record.GetInt("total_seats"),
		AvailableSeats: record.GetInt("available_seats"),
		Status:         record.GetString("status"),
		Team1Score:     record.GetString("team1_score"),
		Team2Score:     record.GetString("team2_score"),
		Winner:         record.GetString("winner"),
		ManOfMatch:     record.GetString("man_of_match"),
		MatchSummary:   record.GetString("match_summary"),
		Created:        record.GetDateTime("created").Time(),
		Updated:        record.GetDateTime("updated").Time(),
	}
}
