package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Repository holds record store configuration. PostgreSQL wins over Firestore;
// without either the in-memory store is used.
type Repository struct {
	DatabaseURL        string
	FirestoreProjectID string
	FirestoreDatabase  string
}

// Flags returns CLI flags for Repository configuration
func (f *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "database-url",
			Usage:       "PostgreSQL connection URL",
			Category:    "Repository",
			Sources:     cli.EnvVars("SMARTQUALI_DATABASE_URL"),
			Destination: &f.DatabaseURL,
		},
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore",
			Category:    "Repository",
			Sources:     cli.EnvVars("SMARTQUALI_FIRESTORE_PROJECT"),
			Destination: &f.FirestoreProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Repository",
			Value:       "(default)",
			Sources:     cli.EnvVars("SMARTQUALI_FIRESTORE_DATABASE"),
			Destination: &f.FirestoreDatabase,
		},
	}
}

// Configure creates and returns the configured repository
func (f *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	switch {
	case f.DatabaseURL != "":
		repo, err := repository.NewPostgres(ctx, f.DatabaseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to init postgres")
		}
		return repo, nil

	case f.FirestoreProjectID != "":
		repo, err := repository.NewFirestore(ctx, f.FirestoreProjectID, f.FirestoreDatabase)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to init firestore",
				goerr.V("project", f.FirestoreProjectID),
				goerr.V("database", f.FirestoreDatabase),
			)
		}
		return repo, nil

	default:
		logger.Warn("Using memory database. The data will be removed when shutting down")
		return repository.NewMemory(), nil
	}
}

// Postgres opens the PostgreSQL repository. It fails when no database URL is set.
func (f *Repository) Postgres(ctx context.Context) (*repository.Postgres, error) {
	if f.DatabaseURL == "" {
		return nil, goerr.New("database URL is required, set SMARTQUALI_DATABASE_URL")
	}
	repo, err := repository.NewPostgres(ctx, f.DatabaseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init postgres")
	}
	return repo, nil
}

// Backend returns the name of the selected store
func (f Repository) Backend() string {
	switch {
	case f.DatabaseURL != "":
		return "postgres"
	case f.FirestoreProjectID != "":
		return "firestore"
	default:
		return "memory"
	}
}

// LogValue returns structured log value
func (f Repository) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", f.Backend()),
		slog.Bool("has_database_url", f.DatabaseURL != ""),
		slog.String("firestore_project", f.FirestoreProjectID),
		slog.String("firestore_database", f.FirestoreDatabase),
	)
}
