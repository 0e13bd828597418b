package config

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/service/storage"
	"github.com/urfave/cli/v3"
)

// Storage holds blob storage configuration for archived reports and document files.
// A GCS bucket wins over a local directory; without either, storage is disabled.
type Storage struct {
	Bucket  string
	Prefix  string
	Dir     string
	BaseURL string
}

// Flags returns CLI flags for Storage configuration
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "Google Cloud Storage bucket",
			Category:    "Storage",
			Sources:     cli.EnvVars("SMARTQUALI_GCS_BUCKET"),
			Destination: &s.Bucket,
		},
		&cli.StringFlag{
			Name:        "gcs-prefix",
			Usage:       "Object name prefix in the bucket",
			Category:    "Storage",
			Sources:     cli.EnvVars("SMARTQUALI_GCS_PREFIX"),
			Destination: &s.Prefix,
		},
		&cli.StringFlag{
			Name:        "storage-dir",
			Usage:       "Local directory for stored files, served under /files",
			Category:    "Storage",
			Sources:     cli.EnvVars("SMARTQUALI_STORAGE_DIR"),
			Destination: &s.Dir,
		},
		&cli.StringFlag{
			Name:        "storage-base-url",
			Usage:       "Public base URL of the local directory",
			Category:    "Storage",
			Value:       "/files",
			Sources:     cli.EnvVars("SMARTQUALI_STORAGE_BASE_URL"),
			Destination: &s.BaseURL,
		},
	}
}

// IsConfigured reports whether any storage backend is set
func (s *Storage) IsConfigured() bool {
	return s.Bucket != "" || s.Dir != ""
}

// Configure creates the blob storage. The returned file system is non-nil only for
// local storage and should be served under /files. Both are nil when not configured.
func (s *Storage) Configure(ctx context.Context) (interfaces.BlobStorage, http.FileSystem, error) {
	switch {
	case s.Bucket != "":
		gcs, err := storage.NewGCS(ctx, s.Bucket, s.Prefix)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to init GCS storage", goerr.V("bucket", s.Bucket))
		}
		return gcs, nil, nil

	case s.Dir != "":
		local, err := storage.NewLocal(s.Dir, s.BaseURL)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to init local storage", goerr.V("dir", s.Dir))
		}
		return local, http.Dir(local.Root()), nil

	default:
		return nil, nil, nil
	}
}

// LogValue returns structured log value
func (s Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("bucket", s.Bucket),
		slog.String("prefix", s.Prefix),
		slog.String("dir", s.Dir),
		slog.String("base_url", s.BaseURL),
	)
}
