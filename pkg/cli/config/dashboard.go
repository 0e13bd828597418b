package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/service/cache"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Dashboard holds dashboard presentation and query cache configuration
type Dashboard struct {
	ConfigPath string
	Timezone   string
	CacheSize  int
	CacheTTL   time.Duration
}

// Flags returns CLI flags for Dashboard configuration
func (d *Dashboard) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dashboard-config",
			Aliases:     []string{"c"},
			Usage:       "YAML file with chart buckets and report settings",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("SMARTQUALI_DASHBOARD_CONFIG"),
			Destination: &d.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "timezone",
			Usage:       "IANA time zone of report timestamps and date windows (overrides the file)",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("SMARTQUALI_TIMEZONE"),
			Destination: &d.Timezone,
		},
		&cli.IntFlag{
			Name:        "cache-size",
			Usage:       "Number of cached dashboard queries, 0 disables the cache",
			Category:    "Dashboard",
			Value:       16,
			Sources:     cli.EnvVars("SMARTQUALI_CACHE_SIZE"),
			Destination: &d.CacheSize,
		},
		&cli.DurationFlag{
			Name:        "cache-ttl",
			Usage:       "Lifetime of a cached dashboard query",
			Category:    "Dashboard",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("SMARTQUALI_CACHE_TTL"),
			Destination: &d.CacheTTL,
		},
	}
}

// Configure loads the dashboard configuration, falling back to the built-in one
func (d *Dashboard) Configure() (*model.DashboardConfig, error) {
	cfg := model.DefaultDashboardConfig()
	if d.ConfigPath != "" {
		loaded, err := LoadDashboardConfigFromFile(d.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if d.Timezone != "" {
		cfg.Report.Timezone = d.Timezone
		if err := cfg.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid timezone", goerr.V("timezone", d.Timezone))
		}
	}
	return cfg, nil
}

// ConfigureCache creates the query cache, or nil when disabled
func (d *Dashboard) ConfigureCache() *cache.QueryCache {
	if d.CacheSize <= 0 || d.CacheTTL <= 0 {
		return nil
	}
	return cache.New(d.CacheSize, d.CacheTTL)
}

// LoadDashboardConfigFromFile loads the dashboard configuration from a YAML file.
// Omitted sections keep their built-in values.
func LoadDashboardConfigFromFile(path string) (*model.DashboardConfig, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	config := model.DefaultDashboardConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid configuration",
			goerr.V("path", path))
	}

	return config, nil
}

// LogValue returns structured log value
func (d Dashboard) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", d.ConfigPath),
		slog.String("timezone", d.Timezone),
		slog.Int("cache_size", d.CacheSize),
		slog.Duration("cache_ttl", d.CacheTTL),
	)
}
