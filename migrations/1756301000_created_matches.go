package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		if err := app.Save(MatchesCollection()); err != nil {
			return err
		}

		matches, err := app.FindCollectionByNameOrId("matches")
		if err != nil {
			return err
		}
		return app.Save(TicketsCollection(matches.Id))
	}, func(app core.App) error {
		for _, name := range []string{"tickets", "matches"} {
			collection, err := app.FindCollectionByNameOrId(name)
			if err != nil {
				continue
			}
			if err := app.Delete(collection); err != nil {
				return err
			}
		}
		return nil
	})
}
