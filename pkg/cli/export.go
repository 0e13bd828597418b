package cli

import (
	"context"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/cli/config"
	controller "github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/controller/http"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/usecase"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var (
		repoCfg      config.Repository
		dashboardCfg config.Dashboard
		browserCfg   config.Browser
		storageCfg   config.Storage
		slackCfg     config.Slack
		outputDir    string
		region       string
	)

	flags := joinFlags(
		repoCfg.Flags(),
		dashboardCfg.Flags(),
		browserCfg.Flags(),
		storageCfg.Flags(),
		slackCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Directory receiving the PDF report",
				Value:       ".",
				Destination: &outputDir,
			},
			&cli.StringFlag{
				Name:        "region",
				Usage:       "Element id of the captured region",
				Value:       controller.DashboardRegionID,
				Destination: &region,
			},
		},
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Render the dashboard and save it as a PDF report",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			dashboardConfig, err := dashboardCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer closeWithLog(ctx, "repository", repo)

			blob, _, err := storageCfg.Configure(ctx)
			if err != nil {
				return err
			}

			dashboardUC, err := usecase.NewDashboard(repo, dashboardConfig)
			if err != nil {
				return goerr.Wrap(err, "failed to create dashboard use case")
			}

			// The page is served on a private loopback port for the browser only
			server, err := controller.NewServer(ctx, "127.0.0.1:0", controller.UseCases{Dashboard: dashboardUC})
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}
			ln, err := net.Listen("tcp", "127.0.0.1:0")
			if err != nil {
				return goerr.Wrap(err, "failed to listen on loopback")
			}
			serveInBackground(ctx, server.Server, ln)
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = server.Shutdown(shutdownCtx)
			}()

			browser := browserCfg.Configure(config.DashboardURLOf(ln.Addr().String()))
			defer closeWithLog(ctx, "browser", browser)

			// the local copy is written first so a failed write archives nothing
			var path string
			opts := []usecase.Option{
				usecase.WithStatsSource(dashboardUC),
				usecase.WithReportSaver(func(ctx context.Context, result *model.ExportedReport) error {
					var err error
					path, err = writeReport(outputDir, result)
					return err
				}),
			}
			if blob != nil {
				opts = append(opts, usecase.WithBlobStorage(blob))
			}
			if notifier := slackCfg.ConfigureOptional(logger, dashboardConfig.Report.Title); notifier != nil {
				opts = append(opts, usecase.WithNotifier(notifier))
			}
			exportUC, err := usecase.NewExport(browser, dashboardConfig.Report, opts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create export use case")
			}

			result, err := exportUC.ExportRegion(ctx, region)
			if err != nil {
				return err
			}
			logger.Info("Report saved", slog.String("path", path), slog.Int("pages", result.Pages))

			// the Slack post runs in the background and must finish before exit
			waitCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()
			return async.Wait(waitCtx)
		},
	}
}

// writeReport saves the report content under dir and returns its path. The
// content goes to a temporary file first so an interrupted write never leaves
// a truncated report behind.
func writeReport(dir string, result *model.ExportedReport) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", goerr.Wrap(err, "failed to create output directory",
			goerr.V("dir", dir), goerr.T(model.ErrTagSave))
	}

	path := filepath.Join(dir, result.FileName)
	tmp, err := os.CreateTemp(dir, "."+result.FileName+".*.tmp")
	if err != nil {
		return "", goerr.Wrap(err, "failed to create temporary report file",
			goerr.V("dir", dir), goerr.T(model.ErrTagSave))
	}
	defer func() {
		// no-op once renamed
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(result.Content); err != nil {
		_ = tmp.Close()
		return "", goerr.Wrap(err, "failed to write report",
			goerr.V("path", tmp.Name()), goerr.T(model.ErrTagSave))
	}
	if err := tmp.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to write report",
			goerr.V("path", tmp.Name()), goerr.T(model.ErrTagSave))
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", goerr.Wrap(err, "failed to set report permissions",
			goerr.V("path", tmp.Name()), goerr.T(model.ErrTagSave))
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", goerr.Wrap(err, "failed to move report into place",
			goerr.V("path", path), goerr.T(model.ErrTagSave))
	}
	return path, nil
}
