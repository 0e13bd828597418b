package repository

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Postgres implements Repository interface with PostgreSQL
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a connection pool and checks connectivity
func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse database URL")
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create connection pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, goerr.Wrap(err, "failed to ping database",
			goerr.V("host", config.ConnConfig.Host),
			goerr.V("database", config.ConnConfig.Database))
	}

	ctxlog.From(ctx).Info("PostgreSQL repository initialized successfully",
		"host", config.ConnConfig.Host,
		"database", config.ConnConfig.Database,
	)

	return &Postgres{pool: pool}, nil
}

// Migrate applies embedded SQL migrations that were not applied yet and returns their names
func (p *Postgres) Migrate(ctx context.Context) ([]string, error) {
	logger := ctxlog.From(ctx)

	if _, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ DEFAULT now()
		)`); err != nil {
		return nil, goerr.Wrap(err, "failed to create migrations table")
	}

	files, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list migrations")
	}
	sort.Strings(files)

	var applied []string
	for _, file := range files {
		version := strings.TrimPrefix(file, "migrations/")

		var count int
		if err := p.pool.QueryRow(ctx,
			"SELECT COUNT(*) FROM schema_migrations WHERE version = $1", version,
		).Scan(&count); err != nil {
			return applied, goerr.Wrap(err, "failed to check migration", goerr.V("version", version))
		}
		if count > 0 {
			continue
		}

		content, err := migrationFiles.ReadFile(file)
		if err != nil {
			return applied, goerr.Wrap(err, "failed to read migration", goerr.V("version", version))
		}

		if err := pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(content)); err != nil {
				return goerr.Wrap(err, "failed to execute migration")
			}
			if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
				return goerr.Wrap(err, "failed to record migration")
			}
			return nil
		}); err != nil {
			return applied, goerr.Wrap(err, "migration failed", goerr.V("version", version))
		}

		logger.Info("Applied migration", "version", version)
		applied = append(applied, version)
	}

	return applied, nil
}

// withFilters appends a WHERE clause for the conditions and a LIMIT when positive
func withFilters(base string, conds []string, order string, limit int, args []any) (string, []any) {
	var sb strings.Builder
	sb.WriteString(base)
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(order)
	if limit > 0 {
		args = append(args, limit)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}
	return sb.String(), args
}

func notFound(err error, msg string, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return goerr.Wrap(model.ErrRecordNotFound, msg, goerr.V("id", id))
	}
	return goerr.Wrap(err, msg, goerr.V("id", id))
}

func execDelete(ctx context.Context, pool *pgxpool.Pool, table, id string) error {
	result, err := pool.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return goerr.Wrap(err, "failed to delete record", goerr.V("table", table), goerr.V("id", id))
	}
	if result.RowsAffected() == 0 {
		return goerr.Wrap(model.ErrRecordNotFound, "failed to delete record",
			goerr.V("table", table), goerr.V("id", id))
	}
	return nil
}

const ncColumns = `id, nc_number, title, description, status, priority, cause, corrective_action,
	assigned_to, created_by, created_at, updated_at, due_date, closed_at, attachment_url`

func scanNonConformity(row pgx.Row) (*model.NonConformity, error) {
	var nc model.NonConformity
	if err := row.Scan(&nc.ID, &nc.Number, &nc.Title, &nc.Description, &nc.Status, &nc.Priority,
		&nc.Cause, &nc.CorrectiveAction, &nc.AssignedTo, &nc.CreatedBy, &nc.CreatedAt,
		&nc.UpdatedAt, &nc.DueDate, &nc.ClosedAt, &nc.AttachmentURL); err != nil {
		return nil, err
	}
	return &nc, nil
}

// PutNonConformity inserts or replaces a non-conformity
func (p *Postgres) PutNonConformity(ctx context.Context, nc *model.NonConformity) error {
	if nc == nil {
		return goerr.New("non-conformity is nil")
	}
	if nc.ID == "" {
		return goerr.New("non-conformity ID is empty")
	}

	_, err := p.pool.Exec(ctx,
		`INSERT INTO non_conformities (`+ncColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 ON CONFLICT (id) DO UPDATE SET
		   nc_number = EXCLUDED.nc_number, title = EXCLUDED.title, description = EXCLUDED.description,
		   status = EXCLUDED.status, priority = EXCLUDED.priority, cause = EXCLUDED.cause,
		   corrective_action = EXCLUDED.corrective_action, assigned_to = EXCLUDED.assigned_to,
		   updated_at = EXCLUDED.updated_at, due_date = EXCLUDED.due_date, closed_at = EXCLUDED.closed_at,
		   attachment_url = EXCLUDED.attachment_url`,
		nc.ID.String(), nc.Number, nc.Title, nc.Description, nc.Status.String(), nc.Priority.String(),
		nc.Cause, nc.CorrectiveAction, nc.AssignedTo, nc.CreatedBy, nc.CreatedAt, nc.UpdatedAt,
		nc.DueDate, nc.ClosedAt, nc.AttachmentURL,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to save non-conformity", goerr.V("id", nc.ID))
	}
	return nil
}

// GetNonConformity retrieves a non-conformity by ID
func (p *Postgres) GetNonConformity(ctx context.Context, id types.NonConformityID) (*model.NonConformity, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+ncColumns+" FROM non_conformities WHERE id = $1", id.String())
	nc, err := scanNonConformity(row)
	if err != nil {
		return nil, notFound(err, "failed to get non-conformity", id.String())
	}
	return nc, nil
}

// DeleteNonConformity deletes a non-conformity
func (p *Postgres) DeleteNonConformity(ctx context.Context, id types.NonConformityID) error {
	return execDelete(ctx, p.pool, "non_conformities", id.String())
}

// ListNonConformities lists non-conformities matching the query, newest first
func (p *Postgres) ListNonConformities(ctx context.Context, query model.NonConformityQuery) ([]*model.NonConformity, error) {
	var conds []string
	var args []any
	if len(query.Statuses) > 0 {
		statuses := make([]string, len(query.Statuses))
		for i, s := range query.Statuses {
			statuses[i] = s.String()
		}
		args = append(args, statuses)
		conds = append(conds, "status = ANY($1)")
	}

	sql, args := withFilters("SELECT "+ncColumns+" FROM non_conformities", conds, "created_at DESC, id ASC", query.Limit, args)
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list non-conformities")
	}
	defer rows.Close()

	var result []*model.NonConformity
	for rows.Next() {
		nc, err := scanNonConformity(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan non-conformity")
		}
		result = append(result, nc)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate non-conformities")
	}
	return result, nil
}

const auditColumns = `id, audit_number, title, audit_type, status, audit_date, auditor_id, score,
	observations, created_by, created_at, report_url`

func scanAudit(row pgx.Row) (*model.Audit, error) {
	var a model.Audit
	if err := row.Scan(&a.ID, &a.Number, &a.Title, &a.Type, &a.Status, &a.AuditDate, &a.AuditorID,
		&a.Score, &a.Observations, &a.CreatedBy, &a.CreatedAt, &a.ReportURL); err != nil {
		return nil, err
	}
	a.AuditDate = model.DateOf(a.AuditDate)
	return &a, nil
}

// PutAudit inserts or replaces an audit
func (p *Postgres) PutAudit(ctx context.Context, audit *model.Audit) error {
	if audit == nil {
		return goerr.New("audit is nil")
	}
	if audit.ID == "" {
		return goerr.New("audit ID is empty")
	}

	_, err := p.pool.Exec(ctx,
		`INSERT INTO audits (`+auditColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET
		   audit_number = EXCLUDED.audit_number, title = EXCLUDED.title, audit_type = EXCLUDED.audit_type,
		   status = EXCLUDED.status, audit_date = EXCLUDED.audit_date, auditor_id = EXCLUDED.auditor_id,
		   score = EXCLUDED.score, observations = EXCLUDED.observations, report_url = EXCLUDED.report_url`,
		audit.ID.String(), audit.Number, audit.Title, audit.Type.String(), audit.Status.String(),
		model.DateOf(audit.AuditDate), audit.AuditorID, audit.Score, audit.Observations,
		audit.CreatedBy, audit.CreatedAt, audit.ReportURL,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to save audit", goerr.V("id", audit.ID))
	}
	return nil
}

// GetAudit retrieves an audit by ID
func (p *Postgres) GetAudit(ctx context.Context, id types.AuditID) (*model.Audit, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+auditColumns+" FROM audits WHERE id = $1", id.String())
	a, err := scanAudit(row)
	if err != nil {
		return nil, notFound(err, "failed to get audit", id.String())
	}
	return a, nil
}

// DeleteAudit deletes an audit
func (p *Postgres) DeleteAudit(ctx context.Context, id types.AuditID) error {
	return execDelete(ctx, p.pool, "audits", id.String())
}

// ListAudits lists audits within the query date range, earliest first
func (p *Postgres) ListAudits(ctx context.Context, query model.AuditQuery) ([]*model.Audit, error) {
	var conds []string
	var args []any
	if !query.From.IsZero() {
		args = append(args, model.DateOf(query.From))
		conds = append(conds, "audit_date >= $"+strconv.Itoa(len(args)))
	}
	if !query.To.IsZero() {
		args = append(args, model.DateOf(query.To))
		conds = append(conds, "audit_date <= $"+strconv.Itoa(len(args)))
	}

	sql, args := withFilters("SELECT "+auditColumns+" FROM audits", conds, "audit_date ASC, id ASC", query.Limit, args)
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list audits")
	}
	defer rows.Close()

	var result []*model.Audit
	for rows.Next() {
		a, err := scanAudit(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan audit")
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate audits")
	}
	return result, nil
}

const actionColumns = `id, action_number, action_type, status, description, assigned_to, due_date,
	nc_id, audit_id, effectiveness_verified, created_by, created_at`

func scanAction(row pgx.Row) (*model.Action, error) {
	var a model.Action
	var ncID, auditID *string
	if err := row.Scan(&a.ID, &a.Number, &a.Type, &a.Status, &a.Description, &a.AssignedTo, &a.DueDate,
		&ncID, &auditID, &a.EffectivenessVerified, &a.CreatedBy, &a.CreatedAt); err != nil {
		return nil, err
	}
	if ncID != nil {
		id := types.NonConformityID(*ncID)
		a.NCID = &id
	}
	if auditID != nil {
		id := types.AuditID(*auditID)
		a.AuditID = &id
	}
	return &a, nil
}

// PutAction inserts or replaces an action
func (p *Postgres) PutAction(ctx context.Context, action *model.Action) error {
	if action == nil {
		return goerr.New("action is nil")
	}
	if action.ID == "" {
		return goerr.New("action ID is empty")
	}

	var ncID, auditID *string
	if action.NCID != nil {
		s := action.NCID.String()
		ncID = &s
	}
	if action.AuditID != nil {
		s := action.AuditID.String()
		auditID = &s
	}

	_, err := p.pool.Exec(ctx,
		`INSERT INTO actions (`+actionColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET
		   action_number = EXCLUDED.action_number, action_type = EXCLUDED.action_type,
		   status = EXCLUDED.status, description = EXCLUDED.description,
		   assigned_to = EXCLUDED.assigned_to, due_date = EXCLUDED.due_date, nc_id = EXCLUDED.nc_id,
		   audit_id = EXCLUDED.audit_id, effectiveness_verified = EXCLUDED.effectiveness_verified`,
		action.ID.String(), action.Number, action.Type.String(), action.Status.String(), action.Description,
		action.AssignedTo, action.DueDate, ncID, auditID, action.EffectivenessVerified,
		action.CreatedBy, action.CreatedAt,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to save action", goerr.V("id", action.ID))
	}
	return nil
}

// GetAction retrieves an action by ID
func (p *Postgres) GetAction(ctx context.Context, id types.ActionID) (*model.Action, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+actionColumns+" FROM actions WHERE id = $1", id.String())
	a, err := scanAction(row)
	if err != nil {
		return nil, notFound(err, "failed to get action", id.String())
	}
	return a, nil
}

// DeleteAction deletes an action
func (p *Postgres) DeleteAction(ctx context.Context, id types.ActionID) error {
	return execDelete(ctx, p.pool, "actions", id.String())
}

// ListActions lists actions matching the query, newest first
func (p *Postgres) ListActions(ctx context.Context, query model.ActionQuery) ([]*model.Action, error) {
	var conds []string
	var args []any
	if len(query.Statuses) > 0 {
		statuses := make([]string, len(query.Statuses))
		for i, s := range query.Statuses {
			statuses[i] = s.String()
		}
		args = append(args, statuses)
		conds = append(conds, "status = ANY($1)")
	}

	sql, args := withFilters("SELECT "+actionColumns+" FROM actions", conds, "created_at DESC, id ASC", query.Limit, args)
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list actions")
	}
	defer rows.Close()

	var result []*model.Action
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan action")
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate actions")
	}
	return result, nil
}

const documentColumns = `id, document_number, title, category, version, file_url, is_active,
	expiry_date, created_by, created_at`

func scanDocument(row pgx.Row) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(&d.ID, &d.Number, &d.Title, &d.Category, &d.Version, &d.FileURL, &d.IsActive,
		&d.ExpiryDate, &d.CreatedBy, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

// PutDocument inserts or replaces a document
func (p *Postgres) PutDocument(ctx context.Context, doc *model.Document) error {
	if doc == nil {
		return goerr.New("document is nil")
	}
	if doc.ID == "" {
		return goerr.New("document ID is empty")
	}

	_, err := p.pool.Exec(ctx,
		`INSERT INTO documents (`+documentColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		   document_number = EXCLUDED.document_number, title = EXCLUDED.title,
		   category = EXCLUDED.category, version = EXCLUDED.version, file_url = EXCLUDED.file_url,
		   is_active = EXCLUDED.is_active, expiry_date = EXCLUDED.expiry_date`,
		doc.ID.String(), doc.Number, doc.Title, doc.Category, doc.Version, doc.FileURL, doc.IsActive,
		doc.ExpiryDate, doc.CreatedBy, doc.CreatedAt,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to save document", goerr.V("id", doc.ID))
	}
	return nil
}

// GetDocument retrieves a document by ID
func (p *Postgres) GetDocument(ctx context.Context, id types.DocumentID) (*model.Document, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+documentColumns+" FROM documents WHERE id = $1", id.String())
	d, err := scanDocument(row)
	if err != nil {
		return nil, notFound(err, "failed to get document", id.String())
	}
	return d, nil
}

// DeleteDocument deletes a document
func (p *Postgres) DeleteDocument(ctx context.Context, id types.DocumentID) error {
	return execDelete(ctx, p.pool, "documents", id.String())
}

// ListDocuments lists documents matching the query, newest first
func (p *Postgres) ListDocuments(ctx context.Context, query model.DocumentQuery) ([]*model.Document, error) {
	var conds []string
	if query.ActiveOnly {
		conds = append(conds, "is_active")
	}

	sql, args := withFilters("SELECT "+documentColumns+" FROM documents", conds, "created_at DESC, id ASC", query.Limit, nil)
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list documents")
	}
	defer rows.Close()

	var result []*model.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan document")
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate documents")
	}
	return result, nil
}

// PutProfile inserts or replaces a user profile
func (p *Postgres) PutProfile(ctx context.Context, profile *model.UserProfile) error {
	if profile == nil {
		return goerr.New("profile is nil")
	}
	if profile.ID == "" {
		return goerr.New("profile ID is empty")
	}

	_, err := p.pool.Exec(ctx,
		`INSERT INTO profiles (id, email, first_name, last_name, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET
		   email = EXCLUDED.email, first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name`,
		profile.ID.String(), profile.Email, profile.FirstName, profile.LastName, profile.CreatedAt,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to save profile", goerr.V("id", profile.ID))
	}
	return nil
}

// ListProfiles lists every user profile, oldest first
func (p *Postgres) ListProfiles(ctx context.Context) ([]*model.UserProfile, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, email, first_name, last_name, created_at FROM profiles ORDER BY created_at ASC`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list profiles")
	}
	defer rows.Close()

	var result []*model.UserProfile
	for rows.Next() {
		var up model.UserProfile
		if err := rows.Scan(&up.ID, &up.Email, &up.FirstName, &up.LastName, &up.CreatedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan profile")
		}
		result = append(result, &up)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate profiles")
	}
	return result, nil
}

// NextRecordNumber atomically increments the per-year counter of the collection
func (p *Postgres) NextRecordNumber(ctx context.Context, collection types.Collection, year int) (int, error) {
	if collection.RecordPrefix() == "" {
		return 0, goerr.New("collection is not numbered", goerr.V("collection", collection))
	}

	var next int
	err := p.pool.QueryRow(ctx,
		`INSERT INTO record_counters (collection, year, current_number) VALUES ($1, $2, 1)
		 ON CONFLICT (collection, year) DO UPDATE SET current_number = record_counters.current_number + 1
		 RETURNING current_number`,
		collection.String(), year,
	).Scan(&next)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to get next record number",
			goerr.V("collection", collection), goerr.V("year", year))
	}
	return next, nil
}

// Close closes the connection pool
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

var _ interfaces.Repository = (*Postgres)(nil) // Compile-time interface check
