package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr string
	// PageURL overrides the dashboard URL opened by the browser for PDF export
	PageURL string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("SMARTQUALI_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "page-url",
			Usage:       "Dashboard URL captured by PDF export (default: http://<addr>/dashboard)",
			Sources:     cli.EnvVars("SMARTQUALI_PAGE_URL"),
			Destination: &s.PageURL,
		},
	}
}

// DashboardURL returns the page captured by PDF export
func (s *Server) DashboardURL() string {
	if s.PageURL != "" {
		return s.PageURL
	}
	return DashboardURLOf(s.Addr)
}

// DashboardURLOf returns the dashboard URL served on addr
func DashboardURLOf(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		addr = "localhost" + addr
	}
	return "http://" + addr + "/dashboard"
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.String("page_url", s.DashboardURL()),
	)
}
