package usecase

import (
	"context"
	"io"

	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
)

// DashboardUseCase aggregates the dashboard statistics
type DashboardUseCase interface {
	// Stats reads every collection and reduces it into the dashboard view model
	Stats(ctx context.Context) (*model.DashboardStats, error)
	// Config returns the presentation configuration
	Config() *model.DashboardConfig
}

// ExportUseCase turns a rendered dashboard region into a PDF report
type ExportUseCase interface {
	ExportRegion(ctx context.Context, regionID string) (*model.ExportedReport, error)
	IsExporting() bool
	State() model.ExportState
}

// RecordsUseCase manages the quality records behind the dashboard
type RecordsUseCase interface {
	CreateNonConformity(ctx context.Context, req *model.CreateNonConformityRequest) (*model.NonConformity, error)
	GetNonConformity(ctx context.Context, id types.NonConformityID) (*model.NonConformity, error)
	ListNonConformities(ctx context.Context, query model.NonConformityQuery) ([]*model.NonConformity, error)
	UpdateNonConformityStatus(ctx context.Context, id types.NonConformityID, status types.NCStatus) (*model.NonConformity, error)
	UpdateNonConformity(ctx context.Context, id types.NonConformityID, req *model.UpdateNonConformityRequest) (*model.NonConformity, error)
	UploadNonConformityAttachment(ctx context.Context, id types.NonConformityID, filename string, r io.Reader, contentType string) (*model.NonConformity, error)
	DeleteNonConformity(ctx context.Context, id types.NonConformityID) error

	CreateAudit(ctx context.Context, req *model.CreateAuditRequest) (*model.Audit, error)
	GetAudit(ctx context.Context, id types.AuditID) (*model.Audit, error)
	ListAudits(ctx context.Context, query model.AuditQuery) ([]*model.Audit, error)
	UpdateAudit(ctx context.Context, id types.AuditID, req *model.UpdateAuditRequest) (*model.Audit, error)
	UploadAuditReport(ctx context.Context, id types.AuditID, filename string, r io.Reader, contentType string) (*model.Audit, error)
	DeleteAudit(ctx context.Context, id types.AuditID) error

	CreateAction(ctx context.Context, req *model.CreateActionRequest) (*model.Action, error)
	GetAction(ctx context.Context, id types.ActionID) (*model.Action, error)
	ListActions(ctx context.Context, query model.ActionQuery) ([]*model.Action, error)
	DeleteAction(ctx context.Context, id types.ActionID) error

	CreateDocument(ctx context.Context, req *model.CreateDocumentRequest) (*model.Document, error)
	GetDocument(ctx context.Context, id types.DocumentID) (*model.Document, error)
	ListDocuments(ctx context.Context, query model.DocumentQuery) ([]*model.Document, error)
	UpdateDocument(ctx context.Context, id types.DocumentID, req *model.UpdateDocumentRequest) (*model.Document, error)
	DeleteDocument(ctx context.Context, id types.DocumentID) error
	UploadDocumentFile(ctx context.Context, filename string, r io.Reader, contentType string) (string, error)

	CreateProfile(ctx context.Context, req *model.CreateProfileRequest) (*model.UserProfile, error)
	ListProfiles(ctx context.Context) ([]*model.UserProfile, error)
}
