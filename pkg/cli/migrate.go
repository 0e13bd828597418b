package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdMigrate() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending PostgreSQL schema migrations",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Postgres(ctx)
			if err != nil {
				return err
			}
			defer closeWithLog(ctx, "repository", repo)

			applied, err := repo.Migrate(ctx)
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Migrations applied", "count", len(applied), "versions", applied)
			return nil
		},
	}
}
