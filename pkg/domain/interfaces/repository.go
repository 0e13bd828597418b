package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	// Non-conformity operations
	PutNonConformity(ctx context.Context, nc *model.NonConformity) error
	GetNonConformity(ctx context.Context, id types.NonConformityID) (*model.NonConformity, error)
	DeleteNonConformity(ctx context.Context, id types.NonConformityID) error
	ListNonConformities(ctx context.Context, query model.NonConformityQuery) ([]*model.NonConformity, error)

	// Audit operations
	PutAudit(ctx context.Context, audit *model.Audit) error
	GetAudit(ctx context.Context, id types.AuditID) (*model.Audit, error)
	DeleteAudit(ctx context.Context, id types.AuditID) error
	ListAudits(ctx context.Context, query model.AuditQuery) ([]*model.Audit, error)

	// Action operations
	PutAction(ctx context.Context, action *model.Action) error
	GetAction(ctx context.Context, id types.ActionID) (*model.Action, error)
	DeleteAction(ctx context.Context, id types.ActionID) error
	ListActions(ctx context.Context, query model.ActionQuery) ([]*model.Action, error)

	// Document operations
	PutDocument(ctx context.Context, doc *model.Document) error
	GetDocument(ctx context.Context, id types.DocumentID) (*model.Document, error)
	DeleteDocument(ctx context.Context, id types.DocumentID) error
	ListDocuments(ctx context.Context, query model.DocumentQuery) ([]*model.Document, error)

	// Profile operations
	PutProfile(ctx context.Context, profile *model.UserProfile) error
	ListProfiles(ctx context.Context) ([]*model.UserProfile, error)

	// NextRecordNumber atomically allocates the next sequence number of the
	// collection for the given year, starting at 1
	NextRecordNumber(ctx context.Context, collection types.Collection, year int) (int, error)

	// Close closes the repository connection
	Close() error
}
