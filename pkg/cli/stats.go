package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/cli/config"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdStats() *cli.Command {
	var (
		repoCfg      config.Repository
		dashboardCfg config.Dashboard
	)

	return &cli.Command{
		Name:  "stats",
		Usage: "Print the dashboard statistics as JSON",
		Flags: joinFlags(repoCfg.Flags(), dashboardCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			dashboardConfig, err := dashboardCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer closeWithLog(ctx, "repository", repo)

			dashboardUC, err := usecase.NewDashboard(repo, dashboardConfig)
			if err != nil {
				return goerr.Wrap(err, "failed to create dashboard use case")
			}

			return printStats(ctx, os.Stdout, dashboardUC)
		},
	}
}

func printStats(ctx context.Context, w io.Writer, dashboard usecase.DashboardUseCase) error {
	stats, err := dashboard.Stats(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stats); err != nil {
		return goerr.Wrap(err, "failed to write stats")
	}
	return nil
}
