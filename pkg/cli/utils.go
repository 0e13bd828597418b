package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// serveInBackground serves srv on ln until it is shut down
func serveInBackground(ctx context.Context, srv *http.Server, ln net.Listener) {
	go func() {
		ctxlog.From(ctx).Info("HTTP server starting", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ctxlog.From(ctx).Error("HTTP server error", slog.Any("error", err))
		}
	}()
}

// closeWithLog closes c and logs a failure
func closeWithLog(ctx context.Context, name string, c interface{ Close() error }) {
	if err := c.Close(); err != nil {
		ctxlog.From(ctx).Warn("Failed to close "+name, "error", err)
	}
}
