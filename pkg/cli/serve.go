package cli

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/cli/config"
	controller "github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/controller/http"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/usecase"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		repoCfg      config.Repository
		dashboardCfg config.Dashboard
		browserCfg   config.Browser
		storageCfg   config.Storage
		slackCfg     config.Slack
		noExport     bool
	)

	flags := joinFlags(
		serverCfg.Flags(),
		repoCfg.Flags(),
		dashboardCfg.Flags(),
		browserCfg.Flags(),
		storageCfg.Flags(),
		slackCfg.Flags(),
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "no-export",
				Usage:       "Disable PDF export (no browser is started)",
				Category:    "Export",
				Sources:     cli.EnvVars("SMARTQUALI_NO_EXPORT"),
				Destination: &noExport,
			},
		},
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting smartquali server",
				slog.Any("server", serverCfg),
				slog.Any("repository", repoCfg),
				slog.Any("dashboard", dashboardCfg),
				slog.Any("browser", browserCfg),
				slog.Any("storage", storageCfg),
				slog.Any("slack", slackCfg),
			)

			dashboardConfig, err := dashboardCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer closeWithLog(ctx, "repository", repo)

			blob, files, err := storageCfg.Configure(ctx)
			if err != nil {
				return err
			}

			queryCache := dashboardCfg.ConfigureCache()
			dashboardUC, err := usecase.NewDashboard(repo, dashboardConfig, usecase.WithQueryCache(queryCache))
			if err != nil {
				return goerr.Wrap(err, "failed to create dashboard use case")
			}

			recordOpts := []usecase.Option{usecase.WithQueryCache(queryCache)}
			if blob != nil {
				recordOpts = append(recordOpts, usecase.WithBlobStorage(blob))
			}
			uc := controller.UseCases{
				Dashboard: dashboardUC,
				Records:   usecase.NewRecords(repo, recordOpts...),
			}

			if !noExport {
				browser := browserCfg.Configure(serverCfg.DashboardURL())
				defer closeWithLog(ctx, "browser", browser)

				exportOpts := []usecase.Option{usecase.WithStatsSource(dashboardUC)}
				if blob != nil {
					exportOpts = append(exportOpts, usecase.WithBlobStorage(blob))
				}
				if notifier := slackCfg.ConfigureOptional(logger, dashboardConfig.Report.Title); notifier != nil {
					exportOpts = append(exportOpts, usecase.WithNotifier(notifier))
				}

				exportUC, err := usecase.NewExport(browser, dashboardConfig.Report, exportOpts...)
				if err != nil {
					return goerr.Wrap(err, "failed to create export use case")
				}
				uc.Export = exportUC
			}

			var serverOpts []controller.Option
			if files != nil {
				serverOpts = append(serverOpts, controller.WithFiles(files))
			}

			server, err := controller.NewServer(ctx, serverCfg.Addr, uc, serverOpts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			ln, err := net.Listen("tcp", serverCfg.Addr)
			if err != nil {
				return goerr.Wrap(err, "failed to listen", goerr.V("addr", serverCfg.Addr))
			}
			serveInBackground(ctx, server.Server, ln)

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}
			if err := async.Wait(shutdownCtx); err != nil {
				logger.Warn("Report notifications still pending at shutdown", "error", err)
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
