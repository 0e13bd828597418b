package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/service/cache"
)

// Blob storage folders of uploaded files
const (
	DocumentPathPrefix     = "documents/"
	AuditReportPathPrefix  = "audits/"
	NCAttachmentPathPrefix = "non-conformities/"
)

// Records manages non-conformities, audits, actions, documents and profiles.
// Every mutation invalidates the cached dashboard reads of its collection.
type Records struct {
	repo    interfaces.Repository
	cache   *cache.QueryCache
	storage interfaces.BlobStorage
	now     func() time.Time
}

var _ RecordsUseCase = (*Records)(nil)

// NewRecords creates a records use case
func NewRecords(repo interfaces.Repository, opts ...Option) *Records {
	o := newOptions(opts)
	return &Records{
		repo:    repo,
		cache:   o.cache,
		storage: o.storage,
		now:     o.now,
	}
}

func (u *Records) nextNumber(ctx context.Context, c types.Collection, at time.Time) (string, error) {
	seq, err := u.repo.NextRecordNumber(ctx, c, at.Year())
	if err != nil {
		return "", goerr.Wrap(err, "failed to allocate record number", goerr.V("collection", c))
	}
	return types.FormatRecordNumber(c, at.Year(), seq), nil
}

func (u *Records) changed(ctx context.Context, c types.Collection) {
	u.cache.InvalidateCollection(c)
	ctxlog.From(ctx).Debug("collection changed", "collection", c)
}

// CreateNonConformity records a new open non-conformity
func (u *Records) CreateNonConformity(ctx context.Context, req *model.CreateNonConformityRequest) (*model.NonConformity, error) {
	priority := req.Priority
	if priority == "" {
		priority = types.NCPriorityMedium
	}
	nc, err := model.NewNonConformity(req.Title, req.Description, priority, req.CreatedBy)
	if err != nil {
		return nil, err
	}
	dueDate, err := model.ParseDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	now := u.now()
	nc.CreatedAt = now
	nc.UpdatedAt = now
	nc.Cause = req.Cause
	nc.AssignedTo = req.AssignedTo
	nc.DueDate = dueDate

	if nc.Number, err = u.nextNumber(ctx, types.CollectionNonConformities, now); err != nil {
		return nil, err
	}
	if err := u.repo.PutNonConformity(ctx, nc); err != nil {
		return nil, goerr.Wrap(err, "failed to save non-conformity", goerr.V("id", nc.ID))
	}
	u.changed(ctx, types.CollectionNonConformities)

	ctxlog.From(ctx).Info("Non-conformity created", "id", nc.ID, "number", nc.Number)
	return nc, nil
}

// GetNonConformity returns a non-conformity by ID
func (u *Records) GetNonConformity(ctx context.Context, id types.NonConformityID) (*model.NonConformity, error) {
	return u.repo.GetNonConformity(ctx, id)
}

// ListNonConformities lists non-conformities, newest first
func (u *Records) ListNonConformities(ctx context.Context, query model.NonConformityQuery) ([]*model.NonConformity, error) {
	return u.repo.ListNonConformities(ctx, query)
}

// UpdateNonConformityStatus changes the status of a non-conformity
func (u *Records) UpdateNonConformityStatus(ctx context.Context, id types.NonConformityID, status types.NCStatus) (*model.NonConformity, error) {
	nc, err := u.repo.GetNonConformity(ctx, id)
	if err != nil {
		return nil, err
	}

	prev := nc.Status
	if err := nc.SetStatus(status, u.now()); err != nil {
		return nil, err
	}
	if err := u.repo.PutNonConformity(ctx, nc); err != nil {
		return nil, goerr.Wrap(err, "failed to save non-conformity", goerr.V("id", id))
	}
	u.changed(ctx, types.CollectionNonConformities)

	ctxlog.From(ctx).Info("Non-conformity status updated",
		"id", id,
		"from", prev,
		"to", status,
	)
	return nc, nil
}

// UpdateNonConformity applies a partial update to a non-conformity
func (u *Records) UpdateNonConformity(ctx context.Context, id types.NonConformityID, req *model.UpdateNonConformityRequest) (*model.NonConformity, error) {
	nc, err := u.repo.GetNonConformity(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(nc, u.now()); err != nil {
		return nil, err
	}
	if err := u.repo.PutNonConformity(ctx, nc); err != nil {
		return nil, goerr.Wrap(err, "failed to save non-conformity", goerr.V("id", id))
	}
	u.changed(ctx, types.CollectionNonConformities)

	ctxlog.From(ctx).Info("Non-conformity updated", "id", id, "status", nc.Status)
	return nc, nil
}

// UploadNonConformityAttachment stores a file and links it to the non-conformity
func (u *Records) UploadNonConformityAttachment(ctx context.Context, id types.NonConformityID, filename string, r io.Reader, contentType string) (*model.NonConformity, error) {
	nc, err := u.repo.GetNonConformity(ctx, id)
	if err != nil {
		return nil, err
	}

	now := u.now()
	url, err := u.upload(ctx, RecordFilePath(NCAttachmentPathPrefix, id.String(), filename, now), filename, r, contentType)
	if err != nil {
		return nil, err
	}

	nc.AttachmentURL = url
	nc.UpdatedAt = now
	if err := u.repo.PutNonConformity(ctx, nc); err != nil {
		return nil, goerr.Wrap(err, "failed to save non-conformity", goerr.V("id", id))
	}
	u.changed(ctx, types.CollectionNonConformities)
	return nc, nil
}

// DeleteNonConformity deletes a non-conformity
func (u *Records) DeleteNonConformity(ctx context.Context, id types.NonConformityID) error {
	if err := u.repo.DeleteNonConformity(ctx, id); err != nil {
		return err
	}
	u.changed(ctx, types.CollectionNonConformities)
	return nil
}

// CreateAudit plans a new audit
func (u *Records) CreateAudit(ctx context.Context, req *model.CreateAuditRequest) (*model.Audit, error) {
	auditDate, err := model.ParseDate(req.AuditDate)
	if err != nil {
		return nil, err
	}
	if auditDate == nil {
		return nil, goerr.New("audit date is required", goerr.T(model.ErrTagValidation))
	}

	audit, err := model.NewAudit(req.Title, req.Type, *auditDate, req.AuditorID, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	now := u.now()
	audit.CreatedAt = now
	audit.Observations = req.Observations

	if audit.Number, err = u.nextNumber(ctx, types.CollectionAudits, now); err != nil {
		return nil, err
	}
	if err := u.repo.PutAudit(ctx, audit); err != nil {
		return nil, goerr.Wrap(err, "failed to save audit", goerr.V("id", audit.ID))
	}
	u.changed(ctx, types.CollectionAudits)

	ctxlog.From(ctx).Info("Audit created", "id", audit.ID, "number", audit.Number)
	return audit, nil
}

// GetAudit returns an audit by ID
func (u *Records) GetAudit(ctx context.Context, id types.AuditID) (*model.Audit, error) {
	return u.repo.GetAudit(ctx, id)
}

// ListAudits lists audits by date
func (u *Records) ListAudits(ctx context.Context, query model.AuditQuery) ([]*model.Audit, error) {
	return u.repo.ListAudits(ctx, query)
}

// UpdateAudit applies a partial update to an audit
func (u *Records) UpdateAudit(ctx context.Context, id types.AuditID, req *model.UpdateAuditRequest) (*model.Audit, error) {
	audit, err := u.repo.GetAudit(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(audit); err != nil {
		return nil, err
	}
	if err := u.repo.PutAudit(ctx, audit); err != nil {
		return nil, goerr.Wrap(err, "failed to save audit", goerr.V("id", id))
	}
	u.changed(ctx, types.CollectionAudits)

	ctxlog.From(ctx).Info("Audit updated", "id", id, "status", audit.Status)
	return audit, nil
}

// UploadAuditReport stores an audit report file and links it to the audit
func (u *Records) UploadAuditReport(ctx context.Context, id types.AuditID, filename string, r io.Reader, contentType string) (*model.Audit, error) {
	audit, err := u.repo.GetAudit(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := u.upload(ctx, RecordFilePath(AuditReportPathPrefix, id.String(), filename, u.now()), filename, r, contentType)
	if err != nil {
		return nil, err
	}

	audit.ReportURL = url
	if err := u.repo.PutAudit(ctx, audit); err != nil {
		return nil, goerr.Wrap(err, "failed to save audit", goerr.V("id", id))
	}
	u.changed(ctx, types.CollectionAudits)
	return audit, nil
}

// DeleteAudit deletes an audit
func (u *Records) DeleteAudit(ctx context.Context, id types.AuditID) error {
	if err := u.repo.DeleteAudit(ctx, id); err != nil {
		return err
	}
	u.changed(ctx, types.CollectionAudits)
	return nil
}

// CreateAction plans a new CAPA action. Linked records must exist.
func (u *Records) CreateAction(ctx context.Context, req *model.CreateActionRequest) (*model.Action, error) {
	dueDate, err := model.ParseDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	if dueDate == nil {
		return nil, goerr.New("due date is required", goerr.T(model.ErrTagValidation))
	}

	action, err := model.NewAction(req.Type, req.Description, req.AssignedTo, *dueDate, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	if req.NCID != "" {
		id := types.NonConformityID(req.NCID)
		if _, err := u.repo.GetNonConformity(ctx, id); err != nil {
			return nil, goerr.Wrap(err, "linked non-conformity not found",
				goerr.V("nc_id", id), goerr.T(model.ErrTagValidation))
		}
		action.NCID = &id
	}
	if req.AuditID != "" {
		id := types.AuditID(req.AuditID)
		if _, err := u.repo.GetAudit(ctx, id); err != nil {
			return nil, goerr.Wrap(err, "linked audit not found",
				goerr.V("audit_id", id), goerr.T(model.ErrTagValidation))
		}
		action.AuditID = &id
	}

	now := u.now()
	action.CreatedAt = now

	if action.Number, err = u.nextNumber(ctx, types.CollectionActions, now); err != nil {
		return nil, err
	}
	if err := u.repo.PutAction(ctx, action); err != nil {
		return nil, goerr.Wrap(err, "failed to save action", goerr.V("id", action.ID))
	}
	u.changed(ctx, types.CollectionActions)

	ctxlog.From(ctx).Info("Action created", "id", action.ID, "number", action.Number)
	return action, nil
}

// GetAction returns an action by ID
func (u *Records) GetAction(ctx context.Context, id types.ActionID) (*model.Action, error) {
	return u.repo.GetAction(ctx, id)
}

// ListActions lists actions, newest first
func (u *Records) ListActions(ctx context.Context, query model.ActionQuery) ([]*model.Action, error) {
	return u.repo.ListActions(ctx, query)
}

// DeleteAction deletes an action
func (u *Records) DeleteAction(ctx context.Context, id types.ActionID) error {
	if err := u.repo.DeleteAction(ctx, id); err != nil {
		return err
	}
	u.changed(ctx, types.CollectionActions)
	return nil
}

// CreateDocument registers a new active document
func (u *Records) CreateDocument(ctx context.Context, req *model.CreateDocumentRequest) (*model.Document, error) {
	expiry, err := model.ParseDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	doc, err := model.NewDocument(req.Title, req.Category, req.Version, req.FileURL, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	now := u.now()
	doc.CreatedAt = now
	doc.ExpiryDate = expiry

	if doc.Number, err = u.nextNumber(ctx, types.CollectionDocuments, now); err != nil {
		return nil, err
	}
	if err := u.repo.PutDocument(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to save document", goerr.V("id", doc.ID))
	}
	u.changed(ctx, types.CollectionDocuments)

	ctxlog.From(ctx).Info("Document created", "id", doc.ID, "number", doc.Number)
	return doc, nil
}

// GetDocument returns a document by ID
func (u *Records) GetDocument(ctx context.Context, id types.DocumentID) (*model.Document, error) {
	return u.repo.GetDocument(ctx, id)
}

// ListDocuments lists documents, newest first
func (u *Records) ListDocuments(ctx context.Context, query model.DocumentQuery) ([]*model.Document, error) {
	return u.repo.ListDocuments(ctx, query)
}

// UpdateDocument applies a partial update to a document. Deactivating a
// document removes it from the active document count.
func (u *Records) UpdateDocument(ctx context.Context, id types.DocumentID, req *model.UpdateDocumentRequest) (*model.Document, error) {
	doc, err := u.repo.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(doc); err != nil {
		return nil, err
	}
	if err := u.repo.PutDocument(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to save document", goerr.V("id", id))
	}
	u.changed(ctx, types.CollectionDocuments)

	ctxlog.From(ctx).Info("Document updated", "id", id, "is_active", doc.IsActive)
	return doc, nil
}

// DeleteDocument deletes a document
func (u *Records) DeleteDocument(ctx context.Context, id types.DocumentID) error {
	if err := u.repo.DeleteDocument(ctx, id); err != nil {
		return err
	}
	u.changed(ctx, types.CollectionDocuments)
	return nil
}

// DocumentFilePath returns the storage path of an uploaded file: documents/<unix>-<random>.<ext>
func DocumentFilePath(filename string, at time.Time) string {
	name := fmt.Sprintf("%s%d-%s", DocumentPathPrefix, at.Unix(), strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" && ext != "." {
		name += ext
	}
	return name
}

// RecordFilePath returns the storage path of a file attached to a record: <prefix><id>/<unix>.<ext>
func RecordFilePath(prefix, id, filename string, at time.Time) string {
	name := fmt.Sprintf("%s%s/%d", prefix, id, at.Unix())
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" && ext != "." {
		name += ext
	}
	return name
}

// UploadDocumentFile stores a document file and returns its public URL
func (u *Records) UploadDocumentFile(ctx context.Context, filename string, r io.Reader, contentType string) (string, error) {
	return u.upload(ctx, DocumentFilePath(filename, u.now()), filename, r, contentType)
}

func (u *Records) upload(ctx context.Context, path, filename string, r io.Reader, contentType string) (string, error) {
	if u.storage == nil {
		return "", goerr.New("file storage is not configured", goerr.T(model.ErrTagValidation))
	}

	if err := u.storage.Upload(ctx, path, r, contentType); err != nil {
		return "", goerr.Wrap(err, "failed to upload file",
			goerr.V("filename", filename),
			goerr.V("path", path),
			goerr.T(model.ErrTagSave))
	}

	ctxlog.From(ctx).Info("File uploaded", "filename", filename, "path", path)
	return u.storage.PublicURL(path), nil
}

// CreateProfile registers a user profile
func (u *Records) CreateProfile(ctx context.Context, req *model.CreateProfileRequest) (*model.UserProfile, error) {
	profile, err := model.NewUserProfile(req.Email, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}
	profile.CreatedAt = u.now()

	if err := u.repo.PutProfile(ctx, profile); err != nil {
		return nil, goerr.Wrap(err, "failed to save profile", goerr.V("email", profile.Email))
	}
	u.changed(ctx, types.CollectionProfiles)
	return profile, nil
}

// ListProfiles lists user profiles
func (u *Records) ListProfiles(ctx context.Context) ([]*model.UserProfile, error) {
	return u.repo.ListProfiles(ctx)
}
