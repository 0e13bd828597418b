package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/interfaces"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/model"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu              sync.RWMutex
	nonConformities map[types.NonConformityID]*model.NonConformity
	audits          map[types.AuditID]*model.Audit
	actions         map[types.ActionID]*model.Action
	documents       map[types.DocumentID]*model.Document
	profiles        map[types.ProfileID]*model.UserProfile
	counters        map[string]int
}

// NewMemory creates a new memory repository
func NewMemory() *Memory {
	return &Memory{
		nonConformities: make(map[types.NonConformityID]*model.NonConformity),
		audits:          make(map[types.AuditID]*model.Audit),
		actions:         make(map[types.ActionID]*model.Action),
		documents:       make(map[types.DocumentID]*model.Document),
		profiles:        make(map[types.ProfileID]*model.UserProfile),
		counters:        make(map[string]int),
	}
}

// PutNonConformity saves a non-conformity to memory
func (m *Memory) PutNonConformity(ctx context.Context, nc *model.NonConformity) error {
	if nc == nil {
		return goerr.New("non-conformity is nil")
	}
	if nc.ID == "" {
		return goerr.New("non-conformity ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ncCopy := *nc
	m.nonConformities[nc.ID] = &ncCopy
	return nil
}

// GetNonConformity retrieves a non-conformity by ID
func (m *Memory) GetNonConformity(ctx context.Context, id types.NonConformityID) (*model.NonConformity, error) {
	if id == "" {
		return nil, goerr.New("non-conformity ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	nc, exists := m.nonConformities[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrRecordNotFound, "failed to get non-conformity", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	ncCopy := *nc
	return &ncCopy, nil
}

// DeleteNonConformity removes a non-conformity
func (m *Memory) DeleteNonConformity(ctx context.Context, id types.NonConformityID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.nonConformities[id]; !exists {
		return goerr.Wrap(model.ErrRecordNotFound, "failed to delete non-conformity", goerr.V("id", id))
	}
	delete(m.nonConformities, id)
	return nil
}

// ListNonConformities lists non-conformities matching the query, newest first
func (m *Memory) ListNonConformities(ctx context.Context, query model.NonConformityQuery) ([]*model.NonConformity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.NonConformity, 0, len(m.nonConformities))
	for _, nc := range m.nonConformities {
		if !query.Match(nc) {
			continue
		}
		ncCopy := *nc
		result = append(result, &ncCopy)
	}

	sortNonConformities(result)
	return applyLimit(result, query.Limit), nil
}

// PutAudit saves an audit to memory
func (m *Memory) PutAudit(ctx context.Context, audit *model.Audit) error {
	if audit == nil {
		return goerr.New("audit is nil")
	}
	if audit.ID == "" {
		return goerr.New("audit ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	auditCopy := *audit
	m.audits[audit.ID] = &auditCopy
	return nil
}

// GetAudit retrieves an audit by ID
func (m *Memory) GetAudit(ctx context.Context, id types.AuditID) (*model.Audit, error) {
	if id == "" {
		return nil, goerr.New("audit ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	audit, exists := m.audits[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrRecordNotFound, "failed to get audit", goerr.V("id", id))
	}

	auditCopy := *audit
	return &auditCopy, nil
}

// DeleteAudit removes an audit
func (m *Memory) DeleteAudit(ctx context.Context, id types.AuditID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.audits[id]; !exists {
		return goerr.Wrap(model.ErrRecordNotFound, "failed to delete audit", goerr.V("id", id))
	}
	delete(m.audits, id)
	return nil
}

// ListAudits lists audits within the query date range, earliest first
func (m *Memory) ListAudits(ctx context.Context, query model.AuditQuery) ([]*model.Audit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.Audit, 0, len(m.audits))
	for _, audit := range m.audits {
		if !query.Match(audit) {
			continue
		}
		auditCopy := *audit
		result = append(result, &auditCopy)
	}

	sortAudits(result)
	return applyLimit(result, query.Limit), nil
}

// PutAction saves an action to memory
func (m *Memory) PutAction(ctx context.Context, action *model.Action) error {
	if action == nil {
		return goerr.New("action is nil")
	}
	if action.ID == "" {
		return goerr.New("action ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	actionCopy := *action
	m.actions[action.ID] = &actionCopy
	return nil
}

// GetAction retrieves an action by ID
func (m *Memory) GetAction(ctx context.Context, id types.ActionID) (*model.Action, error) {
	if id == "" {
		return nil, goerr.New("action ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	action, exists := m.actions[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrRecordNotFound, "failed to get action", goerr.V("id", id))
	}

	actionCopy := *action
	return &actionCopy, nil
}

// DeleteAction removes an action
func (m *Memory) DeleteAction(ctx context.Context, id types.ActionID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.actions[id]; !exists {
		return goerr.Wrap(model.ErrRecordNotFound, "failed to delete action", goerr.V("id", id))
	}
	delete(m.actions, id)
	return nil
}

// ListActions lists actions matching the query, newest first
func (m *Memory) ListActions(ctx context.Context, query model.ActionQuery) ([]*model.Action, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.Action, 0, len(m.actions))
	for _, action := range m.actions {
		if !query.Match(action) {
			continue
		}
		actionCopy := *action
		result = append(result, &actionCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return applyLimit(result, query.Limit), nil
}

// PutDocument saves a document to memory
func (m *Memory) PutDocument(ctx context.Context, doc *model.Document) error {
	if doc == nil {
		return goerr.New("document is nil")
	}
	if doc.ID == "" {
		return goerr.New("document ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	docCopy := *doc
	m.documents[doc.ID] = &docCopy
	return nil
}

// GetDocument retrieves a document by ID
func (m *Memory) GetDocument(ctx context.Context, id types.DocumentID) (*model.Document, error) {
	if id == "" {
		return nil, goerr.New("document ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, exists := m.documents[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrRecordNotFound, "failed to get document", goerr.V("id", id))
	}

	docCopy := *doc
	return &docCopy, nil
}

// DeleteDocument removes a document
func (m *Memory) DeleteDocument(ctx context.Context, id types.DocumentID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.documents[id]; !exists {
		return goerr.Wrap(model.ErrRecordNotFound, "failed to delete document", goerr.V("id", id))
	}
	delete(m.documents, id)
	return nil
}

// ListDocuments lists documents matching the query, newest first
func (m *Memory) ListDocuments(ctx context.Context, query model.DocumentQuery) ([]*model.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.Document, 0, len(m.documents))
	for _, doc := range m.documents {
		if !query.Match(doc) {
			continue
		}
		docCopy := *doc
		result = append(result, &docCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return applyLimit(result, query.Limit), nil
}

// PutProfile saves a user profile to memory
func (m *Memory) PutProfile(ctx context.Context, profile *model.UserProfile) error {
	if profile == nil {
		return goerr.New("profile is nil")
	}
	if profile.ID == "" {
		return goerr.New("profile ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	profileCopy := *profile
	m.profiles[profile.ID] = &profileCopy
	return nil
}

// ListProfiles lists every user profile, oldest first
func (m *Memory) ListProfiles(ctx context.Context) ([]*model.UserProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.UserProfile, 0, len(m.profiles))
	for _, p := range m.profiles {
		profileCopy := *p
		result = append(result, &profileCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// NextRecordNumber returns the next available sequence number of the collection for the year
func (m *Memory) NextRecordNumber(ctx context.Context, collection types.Collection, year int) (int, error) {
	if collection.RecordPrefix() == "" {
		return 0, goerr.New("collection is not numbered", goerr.V("collection", collection))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := counterKey(collection, year)
	m.counters[key]++
	return m.counters[key], nil
}

// Clear clears all data (useful for testing)
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nonConformities = make(map[types.NonConformityID]*model.NonConformity)
	m.audits = make(map[types.AuditID]*model.Audit)
	m.actions = make(map[types.ActionID]*model.Action)
	m.documents = make(map[types.DocumentID]*model.Document)
	m.profiles = make(map[types.ProfileID]*model.UserProfile)
	m.counters = make(map[string]int)
}

// Close closes the repository (no-op for memory)
func (m *Memory) Close() error {
	return nil
}

func counterKey(collection types.Collection, year int) string {
	return fmt.Sprintf("%s-%d", collection, year)
}

func sortNonConformities(ncs []*model.NonConformity) {
	sort.Slice(ncs, func(i, j int) bool {
		if !ncs[i].CreatedAt.Equal(ncs[j].CreatedAt) {
			return ncs[i].CreatedAt.After(ncs[j].CreatedAt)
		}
		return ncs[i].ID < ncs[j].ID
	})
}

func sortAudits(audits []*model.Audit) {
	sort.Slice(audits, func(i, j int) bool {
		if !audits[i].AuditDate.Equal(audits[j].AuditDate) {
			return audits[i].AuditDate.Before(audits[j].AuditDate)
		}
		return audits[i].ID < audits[j].ID
	})
}

func applyLimit[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

var _ interfaces.Repository = (*Memory)(nil) // Compile-time interface check
