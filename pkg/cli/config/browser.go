package config

import (
	"log/slog"
	"time"

	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/service/raster"
	"github.com/urfave/cli/v3"
)

// Browser holds the headless browser configuration used by PDF export
type Browser struct {
	Bin        string
	ControlURL string
	NoSandbox  bool
	Timeout    time.Duration
}

// Flags returns CLI flags for Browser configuration
func (b *Browser) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "browser-bin",
			Usage:       "Chromium executable (default: detect or download)",
			Category:    "Export",
			Sources:     cli.EnvVars("SMARTQUALI_BROWSER_BIN"),
			Destination: &b.Bin,
		},
		&cli.StringFlag{
			Name:        "browser-url",
			Usage:       "DevTools URL of a running browser",
			Category:    "Export",
			Sources:     cli.EnvVars("SMARTQUALI_BROWSER_URL"),
			Destination: &b.ControlURL,
		},
		&cli.BoolFlag{
			Name:        "browser-no-sandbox",
			Usage:       "Disable the browser sandbox (containers)",
			Category:    "Export",
			Sources:     cli.EnvVars("SMARTQUALI_BROWSER_NO_SANDBOX"),
			Destination: &b.NoSandbox,
		},
		&cli.DurationFlag{
			Name:        "export-timeout",
			Usage:       "Timeout of a single region capture",
			Category:    "Export",
			Value:       raster.DefaultTimeout,
			Sources:     cli.EnvVars("SMARTQUALI_EXPORT_TIMEOUT"),
			Destination: &b.Timeout,
		},
	}
}

// Configure creates a rasterizer capturing pageURL
func (b *Browser) Configure(pageURL string) *raster.Browser {
	return raster.New(raster.Config{
		PageURL:    pageURL,
		ControlURL: b.ControlURL,
		BrowserBin: b.Bin,
		NoSandbox:  b.NoSandbox,
		Timeout:    b.Timeout,
	})
}

// LogValue returns structured log value
func (b Browser) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("bin", b.Bin),
		slog.String("control_url", b.ControlURL),
		slog.Bool("no_sandbox", b.NoSandbox),
		slog.Duration("timeout", b.Timeout),
	)
}
