package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	countersCollection = "counters"

	// Field names
	fieldCurrentNumber = "current_number"
)

// Firestore implements Repository interface with Firestore.
// Field names in Firestore match Go struct field names (e.g., CreatedAt not created_at).
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permissions
	_, err = client.Collection(types.CollectionNonConformities.String()).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

func (f *Firestore) collection(c types.Collection) *firestore.CollectionRef {
	return f.client.Collection(c.String())
}

// putDoc writes v under the given document ID
func (f *Firestore) putDoc(ctx context.Context, c types.Collection, id string, v any) error {
	if id == "" {
		return goerr.New("document ID is empty", goerr.V("collection", c))
	}
	if _, err := f.collection(c).Doc(id).Set(ctx, v); err != nil {
		return goerr.Wrap(err, "failed to save document to firestore",
			goerr.V("collection", c), goerr.V("id", id))
	}
	return nil
}

// getDoc decodes the document into v, mapping NotFound to ErrRecordNotFound
func (f *Firestore) getDoc(ctx context.Context, c types.Collection, id string, v any) error {
	if id == "" {
		return goerr.New("document ID is empty", goerr.V("collection", c))
	}

	doc, err := f.collection(c).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrRecordNotFound, "failed to get document",
				goerr.V("collection", c), goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get document from firestore",
			goerr.V("collection", c), goerr.V("id", id))
	}

	if err := doc.DataTo(v); err != nil {
		return goerr.Wrap(err, "failed to decode document",
			goerr.V("collection", c), goerr.V("id", id))
	}
	return nil
}

// deleteDoc removes a document. Firestore deletes are idempotent, so existence is checked first.
func (f *Firestore) deleteDoc(ctx context.Context, c types.Collection, id string) error {
	ref := f.collection(c).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrRecordNotFound, "failed to delete document",
				goerr.V("collection", c), goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get document from firestore",
			goerr.V("collection", c), goerr.V("id", id))
	}

	if _, err := ref.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete document",
			goerr.V("collection", c), goerr.V("id", id))
	}
	return nil
}

// listDocs decodes every document returned by the query
func listDocs[T any](ctx context.Context, q firestore.Query, c types.Collection) ([]*T, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var result []*T
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate documents", goerr.V("collection", c))
		}

		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, goerr.Wrap(err, "failed to decode document",
				goerr.V("collection", c), goerr.V("id", doc.Ref.ID))
		}
		result = append(result, &v)
	}
	return result, nil
}

// PutNonConformity saves a non-conformity to Firestore
func (f *Firestore) PutNonConformity(ctx context.Context, nc *model.NonConformity) error {
	if nc == nil {
		return goerr.New("non-conformity is nil")
	}
	return f.putDoc(ctx, types.CollectionNonConformities, nc.ID.String(), nc)
}

// GetNonConformity retrieves a non-conformity by ID
func (f *Firestore) GetNonConformity(ctx context.Context, id types.NonConformityID) (*model.NonConformity, error) {
	var nc model.NonConformity
	if err := f.getDoc(ctx, types.CollectionNonConformities, id.String(), &nc); err != nil {
		return nil, err
	}
	return &nc, nil
}

// DeleteNonConformity deletes a non-conformity from Firestore
func (f *Firestore) DeleteNonConformity(ctx context.Context, id types.NonConformityID) error {
	return f.deleteDoc(ctx, types.CollectionNonConformities, id.String())
}

// ListNonConformities lists non-conformities matching the query, newest first
func (f *Firestore) ListNonConformities(ctx context.Context, query model.NonConformityQuery) ([]*model.NonConformity, error) {
	q := f.collection(types.CollectionNonConformities).Query
	if len(query.Statuses) > 0 {
		statuses := make([]string, len(query.Statuses))
		for i, s := range query.Statuses {
			statuses[i] = s.String()
		}
		q = q.Where("Status", "in", statuses)
	}

	// Sort in memory to avoid requiring a composite index
	ncs, err := listDocs[model.NonConformity](ctx, q, types.CollectionNonConformities)
	if err != nil {
		return nil, err
	}
	sortNonConformities(ncs)
	return applyLimit(ncs, query.Limit), nil
}

// PutAudit saves an audit to Firestore
func (f *Firestore) PutAudit(ctx context.Context, audit *model.Audit) error {
	if audit == nil {
		return goerr.New("audit is nil")
	}
	return f.putDoc(ctx, types.CollectionAudits, audit.ID.String(), audit)
}

// GetAudit retrieves an audit by ID
func (f *Firestore) GetAudit(ctx context.Context, id types.AuditID) (*model.Audit, error) {
	var audit model.Audit
	if err := f.getDoc(ctx, types.CollectionAudits, id.String(), &audit); err != nil {
		return nil, err
	}
	return &audit, nil
}

// DeleteAudit deletes an audit from Firestore
func (f *Firestore) DeleteAudit(ctx context.Context, id types.AuditID) error {
	return f.deleteDoc(ctx, types.CollectionAudits, id.String())
}

// ListAudits lists audits within the query date range, earliest first
func (f *Firestore) ListAudits(ctx context.Context, query model.AuditQuery) ([]*model.Audit, error) {
	q := f.collection(types.CollectionAudits).Query
	if !query.From.IsZero() {
		q = q.Where("AuditDate", ">=", model.DateOf(query.From))
	}
	if !query.To.IsZero() {
		q = q.Where("AuditDate", "<=", model.DateOf(query.To))
	}

	audits, err := listDocs[model.Audit](ctx, q, types.CollectionAudits)
	if err != nil {
		return nil, err
	}
	sortAudits(audits)
	return applyLimit(audits, query.Limit), nil
}

// PutAction saves an action to Firestore
func (f *Firestore) PutAction(ctx context.Context, action *model.Action) error {
	if action == nil {
		return goerr.New("action is nil")
	}
	return f.putDoc(ctx, types.CollectionActions, action.ID.String(), action)
}

// GetAction retrieves an action by ID
func (f *Firestore) GetAction(ctx context.Context, id types.ActionID) (*model.Action, error) {
	var action model.Action
	if err := f.getDoc(ctx, types.CollectionActions, id.String(), &action); err != nil {
		return nil, err
	}
	return &action, nil
}

// DeleteAction deletes an action from Firestore
func (f *Firestore) DeleteAction(ctx context.Context, id types.ActionID) error {
	return f.deleteDoc(ctx, types.CollectionActions, id.String())
}

// ListActions lists actions matching the query, newest first
func (f *Firestore) ListActions(ctx context.Context, query model.ActionQuery) ([]*model.Action, error) {
	q := f.collection(types.CollectionActions).Query
	if len(query.Statuses) > 0 {
		statuses := make([]string, len(query.Statuses))
		for i, s := range query.Statuses {
			statuses[i] = s.String()
		}
		q = q.Where("Status", "in", statuses)
	}

	actions, err := listDocs[model.Action](ctx, q, types.CollectionActions)
	if err != nil {
		return nil, err
	}
	sort.Slice(actions, func(i, j int) bool {
		if !actions[i].CreatedAt.Equal(actions[j].CreatedAt) {
			return actions[i].CreatedAt.After(actions[j].CreatedAt)
		}
		return actions[i].ID < actions[j].ID
	})
	return applyLimit(actions, query.Limit), nil
}

// PutDocument saves a document to Firestore
func (f *Firestore) PutDocument(ctx context.Context, doc *model.Document) error {
	if doc == nil {
		return goerr.New("document is nil")
	}
	return f.putDoc(ctx, types.CollectionDocuments, doc.ID.String(), doc)
}

// GetDocument retrieves a document by ID
func (f *Firestore) GetDocument(ctx context.Context, id types.DocumentID) (*model.Document, error) {
	var doc model.Document
	if err := f.getDoc(ctx, types.CollectionDocuments, id.String(), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteDocument deletes a document from Firestore
func (f *Firestore) DeleteDocument(ctx context.Context, id types.DocumentID) error {
	return f.deleteDoc(ctx, types.CollectionDocuments, id.String())
}

// ListDocuments lists documents matching the query, newest first
func (f *Firestore) ListDocuments(ctx context.Context, query model.DocumentQuery) ([]*model.Document, error) {
	q := f.collection(types.CollectionDocuments).Query
	if query.ActiveOnly {
		q = q.Where("IsActive", "==", true)
	}

	docs, err := listDocs[model.Document](ctx, q, types.CollectionDocuments)
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].CreatedAt.After(docs[j].CreatedAt)
		}
		return docs[i].ID < docs[j].ID
	})
	return applyLimit(docs, query.Limit), nil
}

// PutProfile saves a user profile to Firestore
func (f *Firestore) PutProfile(ctx context.Context, profile *model.UserProfile) error {
	if profile == nil {
		return goerr.New("profile is nil")
	}
	return f.putDoc(ctx, types.CollectionProfiles, profile.ID.String(), profile)
}

// ListProfiles lists every user profile, oldest first
func (f *Firestore) ListProfiles(ctx context.Context) ([]*model.UserProfile, error) {
	q := f.collection(types.CollectionProfiles).OrderBy("CreatedAt", firestore.Asc)
	return listDocs[model.UserProfile](ctx, q, types.CollectionProfiles)
}

// NextRecordNumber returns the next available sequence number using atomic increment
func (f *Firestore) NextRecordNumber(ctx context.Context, collection types.Collection, year int) (int, error) {
	if collection.RecordPrefix() == "" {
		return 0, goerr.New("collection is not numbered", goerr.V("collection", collection))
	}

	counterDoc := f.client.Collection(countersCollection).Doc(counterKey(collection, year))

	var nextNumber int
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(counterDoc)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				// Initialize counter if it doesn't exist
				nextNumber = 1
				return tx.Set(counterDoc, map[string]any{
					fieldCurrentNumber: nextNumber,
				})
			}
			return goerr.Wrap(err, "failed to get counter document")
		}

		currentNumber, err := doc.DataAt(fieldCurrentNumber)
		if err != nil {
			return goerr.Wrap(err, "failed to get current_number field")
		}

		// Handle both int and int64 types
		switch v := currentNumber.(type) {
		case int64:
			nextNumber = int(v) + 1
		case int:
			nextNumber = v + 1
		default:
			return goerr.New("unexpected type for current_number")
		}

		return tx.Update(counterDoc, []firestore.Update{
			{Path: fieldCurrentNumber, Value: nextNumber},
		})
	})

	if err != nil {
		return 0, goerr.Wrap(err, "failed to get next record number",
			goerr.V("collection", collection), goerr.V("year", year))
	}

	return nextNumber, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

var _ interfaces.Repository = (*Firestore)(nil) // Compile-time interface check
