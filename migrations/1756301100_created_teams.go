package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		if err := app.Save(TeamsCollection()); err != nil {
			return err
		}
		return app.Save(PlayersCollection())
	}, func(app core.App) error {
		for _, name := range []string{"players", "teams"} {
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
