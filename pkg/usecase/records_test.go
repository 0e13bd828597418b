package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces/mocks"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/repository"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/service/cache"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/usecase"
)

func TestRecordsNonConformity(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	uc := usecase.NewRecords(repo, usecase.WithClock(fixedClock))

	nc1, err := uc.CreateNonConformity(ctx, &model.CreateNonConformityRequest{
		Title:     "Défaut de soudure",
		DueDate:   "2025-04-01",
		CreatedBy: "u1",
	})
	gt.NoError(t, err).Required()
	gt.Equal(t, "NC-2025-001", nc1.Number)
	gt.Equal(t, types.NCStatusOpen, nc1.Status)
	gt.Equal(t, types.NCPriorityMedium, nc1.Priority)
	gt.True(t, nc1.CreatedAt.Equal(fixedNow))
	gt.True(t, nc1.DueDate != nil)

	nc2, err := uc.CreateNonConformity(ctx, &model.CreateNonConformityRequest{
		Title:     "Étiquetage manquant",
		Priority:  types.NCPriorityCritical,
		CreatedBy: "u1",
	})
	gt.NoError(t, err).Required()
	gt.Equal(t, "NC-2025-002", nc2.Number)

	t.Run("status update stamps closing time", func(t *testing.T) {
		updated, err := uc.UpdateNonConformityStatus(ctx, nc1.ID, types.NCStatusClosed)
		gt.NoError(t, err).Required()
		gt.True(t, updated.ClosedAt != nil)

		stored, err := uc.GetNonConformity(ctx, nc1.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.NCStatusClosed, stored.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := uc.UpdateNonConformityStatus(ctx, nc1.ID, types.NCStatus("open"))
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
	})

	t.Run("list by status", func(t *testing.T) {
		open, err := uc.ListNonConformities(ctx, model.NonConformityQuery{Statuses: types.OpenNCStatuses()})
		gt.NoError(t, err).Required()
		gt.Equal(t, 1, len(open))
		gt.Equal(t, nc2.ID, open[0].ID)
	})

	t.Run("delete", func(t *testing.T) {
		gt.NoError(t, uc.DeleteNonConformity(ctx, nc2.ID))
		_, err := uc.GetNonConformity(ctx, nc2.ID)
		gt.True(t, goerr.HasTag(err, model.ErrTagNotFound))
		gt.True(t, goerr.HasTag(uc.DeleteNonConformity(ctx, nc2.ID), model.ErrTagNotFound))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := uc.CreateNonConformity(ctx, &model.CreateNonConformityRequest{CreatedBy: "u1"})
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))

		_, err = uc.CreateNonConformity(ctx, &model.CreateNonConformityRequest{Title: "x", CreatedBy: "u1", DueDate: "01/04/2025"})
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
	})
}

func TestRecordsAuditsAndActions(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	uc := usecase.NewRecords(repo, usecase.WithClock(fixedClock))

	audit, err := uc.CreateAudit(ctx, &model.CreateAuditRequest{
		Title:     "Audit ISO 9001",
		Type:      types.AuditTypeExternal,
		AuditDate: "2025-03-20",
		AuditorID: "u2",
		CreatedBy: "u1",
	})
	gt.NoError(t, err).Required()
	gt.Equal(t, "AUD-2025-001", audit.Number)
	gt.True(t, audit.AuditDate.Equal(date(2025, 3, 20)))

	_, err = uc.CreateAudit(ctx, &model.CreateAuditRequest{Title: "x", Type: types.AuditTypeInternal, AuditorID: "u2", CreatedBy: "u1"})
	gt.True(t, goerr.HasTag(err, model.ErrTagValidation))

	nc, err := uc.CreateNonConformity(ctx, &model.CreateNonConformityRequest{Title: "NC", CreatedBy: "u1"})
	gt.NoError(t, err).Required()

	action, err := uc.CreateAction(ctx, &model.CreateActionRequest{
		Type:        types.ActionTypeCorrective,
		Description: "Former les opérateurs",
		AssignedTo:  "u3",
		DueDate:     "2025-04-15",
		NCID:        nc.ID.String(),
		AuditID:     audit.ID.String(),
		CreatedBy:   "u1",
	})
	gt.NoError(t, err).Required()
	gt.Equal(t, "ACT-2025-001", action.Number)
	gt.Equal(t, types.ActionStatusPlanned, action.Status)
	gt.Equal(t, nc.ID, *action.NCID)
	gt.Equal(t, audit.ID, *action.AuditID)

	t.Run("linked record must exist", func(t *testing.T) {
		_, err := uc.CreateAction(ctx, &model.CreateActionRequest{
			Type:        types.ActionTypePreventive,
			Description: "x",
			AssignedTo:  "u3",
			DueDate:     "2025-04-15",
			NCID:        "missing",
			CreatedBy:   "u1",
		})
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
	})

	t.Run("list and delete", func(t *testing.T) {
		audits, err := uc.ListAudits(ctx, model.AuditQuery{From: date(2025, 3, 1), To: date(2025, 3, 31)})
		gt.NoError(t, err).Required()
		gt.Equal(t, 1, len(audits))

		actions, err := uc.ListActions(ctx, model.ActionQuery{Statuses: []types.ActionStatus{types.ActionStatusPlanned}})
		gt.NoError(t, err).Required()
		gt.Equal(t, 1, len(actions))

		gt.NoError(t, uc.DeleteAction(ctx, action.ID))
		gt.NoError(t, uc.DeleteAudit(ctx, audit.ID))
		_, err = uc.GetAudit(ctx, audit.ID)
		gt.True(t, goerr.HasTag(err, model.ErrTagNotFound))
	})
}

func TestRecordsDocuments(t *testing.T) {
	ctx := context.Background()
	storage := &mocks.BlobStorageMock{
		UploadFunc: func(ctx context.Context, path string, r io.Reader, contentType string) error {
			_, err := io.Copy(io.Discard, r)
			return err
		},
		PublicURLFunc: func(path string) string {
			return "https://files.example.com/" + path
		},
	}
	uc := usecase.NewRecords(repository.NewMemory(), usecase.WithClock(fixedClock), usecase.WithBlobStorage(storage))

	url, err := uc.UploadDocumentFile(ctx, "Procédure Qualité.PDF", strings.NewReader("%PDF"), "application/pdf")
	gt.NoError(t, err).Required()
	gt.Equal(t, 1, len(storage.UploadCalls()))
	path := storage.UploadCalls()[0].Path
	gt.True(t, strings.HasPrefix(path, "documents/1742034600-"))
	gt.True(t, strings.HasSuffix(path, ".pdf"))
	gt.Equal(t, "https://files.example.com/"+path, url)

	doc, err := uc.CreateDocument(ctx, &model.CreateDocumentRequest{
		Title:     "Procédure Qualité",
		Category:  "procedure",
		Version:   "1.0",
		FileURL:   url,
		CreatedBy: "u1",
	})
	gt.NoError(t, err).Required()
	gt.Equal(t, "DOC-2025-001", doc.Number)
	gt.True(t, doc.IsActive)

	docs, err := uc.ListDocuments(ctx, model.DocumentQuery{ActiveOnly: true})
	gt.NoError(t, err).Required()
	gt.Equal(t, 1, len(docs))

	gt.NoError(t, uc.DeleteDocument(ctx, doc.ID))
	_, err = uc.GetDocument(ctx, doc.ID)
	gt.Error(t, err)

	t.Run("upload failure", func(t *testing.T) {
		failing := &mocks.BlobStorageMock{
			UploadFunc: func(ctx context.Context, path string, r io.Reader, contentType string) error {
				return errors.New("denied")
			},
		}
		uc := usecase.NewRecords(repository.NewMemory(), usecase.WithBlobStorage(failing))
		_, err := uc.UploadDocumentFile(ctx, "a.pdf", strings.NewReader("x"), "application/pdf")
		gt.True(t, goerr.HasTag(err, model.ErrTagSave))
	})

	t.Run("no storage", func(t *testing.T) {
		uc := usecase.NewRecords(repository.NewMemory())
		_, err := uc.UploadDocumentFile(ctx, "a.pdf", strings.NewReader("x"), "application/pdf")
		gt.Error(t, err)
	})
}

func TestDocumentFilePath(t *testing.T) {
	at := time.Unix(1700000000, 0)
	p1 := usecase.DocumentFilePath("scan.JPG", at)
	p2 := usecase.DocumentFilePath("scan.JPG", at)

	gt.True(t, strings.HasPrefix(p1, "documents/1700000000-"))
	gt.True(t, strings.HasSuffix(p1, ".jpg"))
	gt.NotEqual(t, p1, p2)
	gt.Equal(t, "documents/1700000000-", usecase.DocumentFilePath("README", at)[:len("documents/1700000000-")])
	gt.False(t, strings.Contains(usecase.DocumentFilePath("README", at), "."))
}

func TestRecordsProfiles(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewRecords(repository.NewMemory(), usecase.WithClock(fixedClock))

	_, err := uc.CreateProfile(ctx, &model.CreateProfileRequest{Email: "marie@example.com", FirstName: "Marie"})
	gt.NoError(t, err).Required()
	_, err = uc.CreateProfile(ctx, &model.CreateProfileRequest{Email: "invalid"})
	gt.True(t, goerr.HasTag(err, model.ErrTagValidation))

	profiles, err := uc.ListProfiles(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, 1, len(profiles))
	gt.Equal(t, "Marie", profiles[0].DisplayName())
}

func TestRecordsInvalidateDashboard(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	c := cache.New(16, time.Hour)

	dashboard, err := usecase.NewDashboard(repo, utcConfig(), usecase.WithClock(fixedClock), usecase.WithQueryCache(c))
	gt.NoError(t, err).Required()
	records := usecase.NewRecords(repo, usecase.WithClock(fixedClock), usecase.WithQueryCache(c))

	stats, err := dashboard.Stats(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, 0, stats.NCStats.TotalCount)
	gt.Equal(t, 5, c.Len())

	_, err = records.CreateNonConformity(ctx, &model.CreateNonConformityRequest{Title: "NC", CreatedBy: "u1"})
	gt.NoError(t, err).Required()
	gt.Equal(t, 4, c.Len())

	stats, err = dashboard.Stats(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, 1, stats.NCStats.TotalCount)
	gt.Equal(t, 1, stats.NCStats.OpenCount)
}

func TestRecordsUpdateNonConformity(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewRecords(repository.NewMemory(), usecase.WithClock(fixedClock))

	nc, err := uc.CreateNonConformity(ctx, &model.CreateNonConformityRequest{
		Title:     "Défaut de soudure",
		DueDate:   "2025-04-01",
		CreatedBy: "u1",
	})
	gt.NoError(t, err).Required()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		priority := types.NCPriorityHigh
		action := "Remplacer la buse"
		updated, err := uc.UpdateNonConformity(ctx, nc.ID, &model.UpdateNonConformityRequest{
			Priority:         &priority,
			CorrectiveAction: &action,
		})
		gt.NoError(t, err).Required()
		gt.Equal(t, types.NCPriorityHigh, updated.Priority)
		gt.Equal(t, "Défaut de soudure", updated.Title)
		gt.True(t, updated.DueDate != nil)

		stored, err := uc.GetNonConformity(ctx, nc.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, "Remplacer la buse", stored.CorrectiveAction)
	})

	t.Run("closing stamps closed_at and clears due date", func(t *testing.T) {
		status := types.NCStatusClosed
		empty := ""
		updated, err := uc.UpdateNonConformity(ctx, nc.ID, &model.UpdateNonConformityRequest{
			Status:  &status,
			DueDate: &empty,
		})
		gt.NoError(t, err).Required()
		gt.True(t, updated.ClosedAt != nil)
		gt.True(t, updated.DueDate == nil)

		// same status is accepted alongside other edits
		title := "Défaut de soudure ligne 2"
		updated, err = uc.UpdateNonConformity(ctx, nc.ID, &model.UpdateNonConformityRequest{
			Status: &status,
			Title:  &title,
		})
		gt.NoError(t, err).Required()
		gt.Equal(t, title, updated.Title)
		gt.Equal(t, types.NCStatusClosed, updated.Status)
	})

	t.Run("invalid input is rejected and not stored", func(t *testing.T) {
		empty := ""
		_, err := uc.UpdateNonConformity(ctx, nc.ID, &model.UpdateNonConformityRequest{Title: &empty})
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))

		stored, err := uc.GetNonConformity(ctx, nc.ID)
		gt.NoError(t, err).Required()
		gt.NotEqual(t, "", stored.Title)

		bad := types.NCPriority("urgent")
		_, err = uc.UpdateNonConformity(ctx, nc.ID, &model.UpdateNonConformityRequest{Priority: &bad})
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := uc.UpdateNonConformity(ctx, "missing", &model.UpdateNonConformityRequest{})
		gt.True(t, goerr.HasTag(err, model.ErrTagNotFound))
	})
}

func TestRecordsUpdateAudit(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewRecords(repository.NewMemory(), usecase.WithClock(fixedClock))

	audit, err := uc.CreateAudit(ctx, &model.CreateAuditRequest{
		Title:     "Audit ISO 9001",
		Type:      types.AuditTypeInternal,
		AuditDate: "2025-03-20",
		AuditorID: "u2",
		CreatedBy: "u1",
	})
	gt.NoError(t, err).Required()

	t.Run("status score and observations", func(t *testing.T) {
		status := types.AuditStatusDone
		score := 87.5
		obs := "Deux écarts mineurs"
		updated, err := uc.UpdateAudit(ctx, audit.ID, &model.UpdateAuditRequest{
			Status:       &status,
			Score:        &score,
			Observations: &obs,
		})
		gt.NoError(t, err).Required()

		stored, err := uc.GetAudit(ctx, audit.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.AuditStatusDone, stored.Status)
		gt.Equal(t, 87.5, *stored.Score)
		gt.Equal(t, obs, stored.Observations)
		gt.Equal(t, audit.Number, updated.Number)
	})

	t.Run("reschedule", func(t *testing.T) {
		d := "2025-04-02"
		updated, err := uc.UpdateAudit(ctx, audit.ID, &model.UpdateAuditRequest{AuditDate: &d})
		gt.NoError(t, err).Required()
		gt.True(t, updated.AuditDate.Equal(date(2025, 4, 2)))

		empty := ""
		_, err = uc.UpdateAudit(ctx, audit.ID, &model.UpdateAuditRequest{AuditDate: &empty})
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
	})

	t.Run("score out of range", func(t *testing.T) {
		score := 120.0
		_, err := uc.UpdateAudit(ctx, audit.ID, &model.UpdateAuditRequest{Score: &score})
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))

		stored, err := uc.GetAudit(ctx, audit.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, 87.5, *stored.Score)
	})

	t.Run("invalid status", func(t *testing.T) {
		status := types.AuditStatus("done")
		_, err := uc.UpdateAudit(ctx, audit.ID, &model.UpdateAuditRequest{Status: &status})
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
	})
}

func TestRecordsUpdateDocument(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	c := cache.New(16, time.Hour)

	dashboard, err := usecase.NewDashboard(repo, utcConfig(), usecase.WithClock(fixedClock), usecase.WithQueryCache(c))
	gt.NoError(t, err).Required()
	records := usecase.NewRecords(repo, usecase.WithClock(fixedClock), usecase.WithQueryCache(c))

	doc, err := records.CreateDocument(ctx, &model.CreateDocumentRequest{
		Title:     "Procédure Qualité",
		Category:  "procedure",
		Version:   "1.0",
		CreatedBy: "u1",
	})
	gt.NoError(t, err).Required()

	stats, err := dashboard.Stats(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, 1, stats.DocumentStats.ActiveCount)

	inactive := false
	version := "1.1"
	updated, err := records.UpdateDocument(ctx, doc.ID, &model.UpdateDocumentRequest{
		IsActive: &inactive,
		Version:  &version,
	})
	gt.NoError(t, err).Required()
	gt.False(t, updated.IsActive)
	gt.Equal(t, "1.1", updated.Version)

	stats, err = dashboard.Stats(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, 0, stats.DocumentStats.ActiveCount)

	t.Run("expiry date", func(t *testing.T) {
		expiry := "2026-01-31"
		updated, err := records.UpdateDocument(ctx, doc.ID, &model.UpdateDocumentRequest{ExpiryDate: &expiry})
		gt.NoError(t, err).Required()
		gt.True(t, updated.ExpiryDate.Equal(date(2026, 1, 31)))

		bad := "31/01/2026"
		_, err = records.UpdateDocument(ctx, doc.ID, &model.UpdateDocumentRequest{ExpiryDate: &bad})
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
	})

	t.Run("required fields stay required", func(t *testing.T) {
		empty := ""
		_, err := records.UpdateDocument(ctx, doc.ID, &model.UpdateDocumentRequest{Category: &empty})
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
	})
}

func TestRecordsAttachments(t *testing.T) {
	ctx := context.Background()
	storage := &mocks.BlobStorageMock{
		UploadFunc: func(ctx context.Context, path string, r io.Reader, contentType string) error {
			_, err := io.Copy(io.Discard, r)
			return err
		},
		PublicURLFunc: func(path string) string {
			return "https://files.example.com/" + path
		},
	}
	uc := usecase.NewRecords(repository.NewMemory(), usecase.WithClock(fixedClock), usecase.WithBlobStorage(storage))

	audit, err := uc.CreateAudit(ctx, &model.CreateAuditRequest{
		Title:     "Audit fournisseur",
		Type:      types.AuditTypeSupplier,
		AuditDate: "2025-03-20",
		AuditorID: "u2",
		CreatedBy: "u1",
	})
	gt.NoError(t, err).Required()
	nc, err := uc.CreateNonConformity(ctx, &model.CreateNonConformityRequest{Title: "NC", CreatedBy: "u1"})
	gt.NoError(t, err).Required()

	t.Run("audit report", func(t *testing.T) {
		updated, err := uc.UploadAuditReport(ctx, audit.ID, "Rapport.PDF", strings.NewReader("%PDF"), "application/pdf")
		gt.NoError(t, err).Required()

		calls := storage.UploadCalls()
		gt.Equal(t, 1, len(calls))
		gt.Equal(t, "audits/"+audit.ID.String()+"/1742034600.pdf", calls[0].Path)
		gt.Equal(t, "application/pdf", calls[0].ContentType)
		gt.Equal(t, "https://files.example.com/"+calls[0].Path, updated.ReportURL)

		stored, err := uc.GetAudit(ctx, audit.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, updated.ReportURL, stored.ReportURL)
	})

	t.Run("non-conformity attachment", func(t *testing.T) {
		updated, err := uc.UploadNonConformityAttachment(ctx, nc.ID, "photo.jpg", strings.NewReader("jpg"), "image/jpeg")
		gt.NoError(t, err).Required()
		gt.Equal(t, "https://files.example.com/non-conformities/"+nc.ID.String()+"/1742034600.jpg", updated.AttachmentURL)
	})

	t.Run("unknown record uploads nothing", func(t *testing.T) {
		before := len(storage.UploadCalls())
		_, err := uc.UploadAuditReport(ctx, "missing", "r.pdf", strings.NewReader("x"), "application/pdf")
		gt.True(t, goerr.HasTag(err, model.ErrTagNotFound))
		gt.Equal(t, before, len(storage.UploadCalls()))
	})

	t.Run("upload failure keeps previous report", func(t *testing.T) {
		failing := &mocks.BlobStorageMock{
			UploadFunc: func(ctx context.Context, path string, r io.Reader, contentType string) error {
				return errors.New("denied")
			},
		}
		repo := repository.NewMemory()
		uc := usecase.NewRecords(repo, usecase.WithClock(fixedClock), usecase.WithBlobStorage(failing))
		a, err := uc.CreateAudit(ctx, &model.CreateAuditRequest{
			Title: "A", Type: types.AuditTypeInternal, AuditDate: "2025-03-20", AuditorID: "u2", CreatedBy: "u1",
		})
		gt.NoError(t, err).Required()

		_, err = uc.UploadAuditReport(ctx, a.ID, "r.pdf", strings.NewReader("x"), "application/pdf")
		gt.True(t, goerr.HasTag(err, model.ErrTagSave))

		stored, err := uc.GetAudit(ctx, a.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, "", stored.ReportURL)
	})
}

func TestRecordFilePath(t *testing.T) {
	at := time.Unix(1700000000, 0)
	gt.Equal(t, "audits/a1/1700000000.pdf", usecase.RecordFilePath(usecase.AuditReportPathPrefix, "a1", "R.PDF", at))
	gt.Equal(t, "non-conformities/n1/1700000000", usecase.RecordFilePath(usecase.NCAttachmentPathPrefix, "n1", "README", at))
}
