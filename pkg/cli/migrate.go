package cli

import (
	"context"

	"github.com/m-mizutani/octogate/pkg/cli/config"
	"github.com/m-mizutani/octogate/pkg/repository/postgres"
	"github.com/m-mizutani/octogate/pkg/utils/logging"
	"github.com/m-mizutani/octogate/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func migrateCommand() *cli.Command {
	var database config.Database

	return &cli.Command{
		Name:  "migrate",
		Usage: "Create the users table in PostgreSQL if it does not exist",
		Flags: database.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			db, err := database.OpenPostgres(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(db)

			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}

			logging.Default().Info("migration completed")
			return nil
		},
	}
}
