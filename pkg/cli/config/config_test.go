package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/cli/config"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestLoadDashboardConfigFromFile(t *testing.T) {
	t.Run("partial override keeps defaults", func(t *testing.T) {
		path := writeFile(t, `
report:
  title: Usine de Lyon
  footer: Usine de Lyon - Qualité
  file_prefix: Lyon_Dashboard
  timezone: Europe/Paris
unknown_values: reject
`)
		cfg, err := config.LoadDashboardConfigFromFile(path)
		gt.NoError(t, err).Required()
		gt.Equal(t, "Usine de Lyon", cfg.Report.Title)
		gt.Equal(t, "Lyon_Dashboard", cfg.Report.FilePrefix)
		gt.Equal(t, model.UnknownValueReject, cfg.UnknownValues)
		gt.Equal(t, 5, len(cfg.Charts.NCStatus))
		gt.Equal(t, 5, cfg.RecentLimit)
	})

	t.Run("chart labels", func(t *testing.T) {
		path := writeFile(t, `
charts:
  audit_type:
    - {key: interne, label: Internal, color: "#111111"}
    - {key: externe, label: External, color: "#222222"}
    - {key: fournisseur, label: Supplier, color: "#333333"}
    - {key: client, label: Customer, color: "#444444"}
`)
		cfg, err := config.LoadDashboardConfigFromFile(path)
		gt.NoError(t, err).Required()
		gt.Equal(t, "Supplier", cfg.Charts.AuditType[2].Label)
	})

	t.Run("incomplete chart", func(t *testing.T) {
		path := writeFile(t, `
charts:
  nc_priority:
    - {key: basse, label: Low}
`)
		_, err := config.LoadDashboardConfigFromFile(path)
		gt.Error(t, err)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := config.LoadDashboardConfigFromFile(writeFile(t, "report: [\n"))
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadDashboardConfigFromFile(filepath.Join(t.TempDir(), "none.yaml"))
		gt.Error(t, err)
	})
}

func TestDashboardConfigure(t *testing.T) {
	d := config.Dashboard{Timezone: "Europe/Paris"}
	cfg, err := d.Configure()
	gt.NoError(t, err).Required()
	gt.Equal(t, "Europe/Paris", cfg.Report.Timezone)
	gt.Equal(t, "SmartQuali_Dashboard", cfg.Report.FilePrefix)

	d = config.Dashboard{Timezone: "Mars/Olympus"}
	_, err = d.Configure()
	gt.Error(t, err)
}

func TestDashboardConfigureCache(t *testing.T) {
	d := config.Dashboard{CacheSize: 0, CacheTTL: time.Minute}
	gt.True(t, d.ConfigureCache() == nil)

	d = config.Dashboard{CacheSize: 8, CacheTTL: time.Minute}
	gt.True(t, d.ConfigureCache() != nil)
}

func TestServerDashboardURL(t *testing.T) {
	s := config.Server{Addr: "localhost:8080"}
	gt.Equal(t, "http://localhost:8080/dashboard", s.DashboardURL())

	s = config.Server{Addr: ":9000"}
	gt.Equal(t, "http://localhost:9000/dashboard", s.DashboardURL())

	s = config.Server{Addr: ":9000", PageURL: "https://quali.example.com/dashboard"}
	gt.Equal(t, "https://quali.example.com/dashboard", s.DashboardURL())
}

func TestRepositoryBackend(t *testing.T) {
	gt.Equal(t, "memory", config.Repository{}.Backend())
	gt.Equal(t, "firestore", config.Repository{FirestoreProjectID: "p"}.Backend())
	gt.Equal(t, "postgres", config.Repository{DatabaseURL: "postgres://x", FirestoreProjectID: "p"}.Backend())
}

func TestStorageConfigure(t *testing.T) {
	s := config.Storage{}
	blob, files, err := s.Configure(t.Context())
	gt.NoError(t, err)
	gt.True(t, blob == nil)
	gt.True(t, files == nil)

	s = config.Storage{Dir: t.TempDir(), BaseURL: "/files"}
	blob, files, err = s.Configure(t.Context())
	gt.NoError(t, err).Required()
	gt.True(t, files != nil)
	gt.Equal(t, "/files/reports/a.pdf", blob.PublicURL("reports/a.pdf"))
}

func TestLoggerConfigure(t *testing.T) {
	l := config.Logger{Level: "debug", Format: "json"}
	_, err := l.Configure()
	gt.NoError(t, err)

	l = config.Logger{Level: "info", Format: "xml"}
	_, err = l.Configure()
	gt.Error(t, err)

	l = config.Logger{Level: "loud", Format: "auto"}
	_, err = l.Configure()
	gt.Error(t, err)
}
