package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
)

// Collection constructors are shared between the registered migrations and
// the test setup so the schema has a single source of truth.

func MatchesCollection() *core.Collection {
	c := core.NewBaseCollection("matches")
	c.Fields.Add(
		&core.TextField{Name: "team1", Required: true},
		&core.TextField{Name: "team2", Required: true},
		&core.DateField{Name: "match_date", Required: true},
		&core.TextField{Name: "match_time"},
		&core.TextField{Name: "venue"},
		&core.NumberField{Name: "ticket_price", OnlyInt: true, Min: types.Pointer(0.0)},
		&core.NumberField{Name: "total_seats", OnlyInt: true, Min: types.Pointer(0.0)},
		&core.NumberField{Name: "available_seats", OnlyInt: true, Min: types.Pointer(0.0)},
		&core.SelectField{
			Name:      "status",
			Values:    []string{"upcoming", "live", "completed"},
			MaxSelect: 1,
			Required:  true,
		},
		&core.TextField{Name: "team1_score"},
		&core.TextField{Name: "team2_score"},
		&core.TextField{Name: "winner"},
		&core.TextField{Name: "man_of_match"},
		&core.TextField{Name: "match_summary"},
		&core.AutodateField{Name: "created", OnCreate: true},
		&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true},
	)
	return c
}

// TicketsCollection needs the id of the saved matches collection for its
// relation field, so it is built after matches exists.
func TicketsCollection(matchesCollectionID string) *core.Collection {
	c := core.NewBaseCollection("tickets")
	c.Fields.Add(
		&core.RelationField{
			Name:          "match",
			Required:      true,
			CollectionId:  matchesCollectionID,
			CascadeDelete: false,
			MaxSelect:     1,
		},
		// Denormalized snapshot of the match description at booking time.
		&core.TextField{Name: "match_details"},
		&core.NumberField{Name: "quantity", Required: true, OnlyInt: true, Min: types.Pointer(1.0)},
		&core.NumberField{Name: "total_amount", OnlyInt: true, Min: types.Pointer(0.0)},
		&core.TextField{Name: "booking_reference", Required: true},
		&core.TextField{Name: "seat_numbers"},
		&core.TextField{Name: "holder_name", Required: true},
		&core.EmailField{Name: "holder_email", Required: true},
		&core.TextField{Name: "holder_phone"},
		&core.SelectField{
			Name:      "status",
			Values:    []string{"confirmed", "pending", "cancelled"},
			MaxSelect: 1,
			Required:  true,
		},
		&core.AutodateField{Name: "created", OnCreate: true},
	)
	c.AddIndex("idx_tickets_booking_reference", true, "booking_reference", "")
	return c
}

func TeamsCollection() *core.Collection {
	c := core.NewBaseCollection("teams")
	c.Fields.Add(
		&core.TextField{Name: "name", Required: true},
		&core.TextField{Name: "college"},
		&core.TextField{Name: "captain"},
		&core.TextField{Name: "coach"},
		&core.NumberField{Name: "matches_played", OnlyInt: true},
		&core.NumberField{Name: "matches_won", OnlyInt: true},
		&core.NumberField{Name: "matches_lost", OnlyInt: true},
		&core.NumberField{Name: "points", OnlyInt: true},
		&core.NumberField{Name: "net_run_rate"},
		&core.AutodateField{Name: "created", OnCreate: true},
		&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true},
	)
	c.AddIndex("idx_teams_name", true, "name", "")
	return c
}

func PlayersCollection() *core.Collection {
	c := core.NewBaseCollection("players")
	c.Fields.Add(
		&core.TextField{Name: "name", Required: true},
		// Team is referenced by name on purpose; rosters survive team edits.
		&core.TextField{Name: "team"},
		&core.TextField{Name: "college"},
		&core.SelectField{
			Name:      "role",
			Values:    []string{"batsman", "bowler", "all_rounder", "wicket_keeper"},
			MaxSelect: 1,
			Required:  true,
		},
		&core.NumberField{Name: "matches_played", OnlyInt: true},
		&core.NumberField{Name: "runs_scored", OnlyInt: true},
		&core.NumberField{Name: "wickets_taken", OnlyInt: true},
		&core.NumberField{Name: "batting_average"},
		&core.NumberField{Name: "bowling_average"},
		&core.NumberField{Name: "highest_score", OnlyInt: true},
		&core.TextField{Name: "best_bowling"},
		&core.AutodateField{Name: "created", OnCreate: true},
	)
	return c
}

// CreateCollections saves every collection the service owns, skipping the
// ones that already exist. Tests use it directly against a fresh app.
func CreateCollections(app core.App) error {
	for _, c := range []*core.Collection{MatchesCollection(), TeamsCollection(), PlayersCollection()} {
		if _, err := app.FindCollectionByNameOrId(c.Name); err == nil {
			continue
		}
		if err := app.Save(c); err != nil {
			return err
		}
	}

	if _, err := app.FindCollectionByNameOrId("tickets"); err == nil {
		return nil
	}
	matches, err := app.FindCollectionByNameOrId("matches")
	if err != nil {
		return err
	}
	return app.Save(TicketsCollection(matches.Id))
}
