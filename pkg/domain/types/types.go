package types

import (
	"fmt"

	"github.com/google/uuid"
)

// NonConformityID represents a non-conformity identifier
type NonConformityID string

// String returns the string representation
func (id NonConformityID) String() string {
	return string(id)
}

// NewNonConformityID creates a new NonConformityID
func NewNonConformityID() NonConformityID {
	return NonConformityID(uuid.New().String())
}

// AuditID represents an audit identifier
type AuditID string

// String returns the string representation
func (id AuditID) String() string {
	return string(id)
}

// NewAuditID creates a new AuditID
func NewAuditID() AuditID {
	return AuditID(uuid.New().String())
}

// ActionID represents a corrective or preventive action identifier
type ActionID string

// String returns the string representation
func (id ActionID) String() string {
	return string(id)
}

// NewActionID creates a new ActionID
func NewActionID() ActionID {
	return ActionID(uuid.New().String())
}

// DocumentID represents a controlled document identifier
type DocumentID string

// String returns the string representation
func (id DocumentID) String() string {
	return string(id)
}

// NewDocumentID creates a new DocumentID
func NewDocumentID() DocumentID {
	return DocumentID(uuid.New().String())
}

// ProfileID represents a user profile identifier
type ProfileID string

// String returns the string representation
func (id ProfileID) String() string {
	return string(id)
}

// NewProfileID creates a new ProfileID using UUID v7
func NewProfileID() (ProfileID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return ProfileID(id.String()), nil
}

// Collection names a record collection of the backing store
type Collection string

const (
	CollectionNonConformities Collection = "non_conformities"
	CollectionAudits          Collection = "audits"
	CollectionActions         Collection = "actions"
	CollectionDocuments       Collection = "documents"
	CollectionProfiles        Collection = "profiles"
)

// String returns the string representation
func (c Collection) String() string {
	return string(c)
}

// Collections lists every collection in a stable order
func Collections() []Collection {
	return []Collection{
		CollectionNonConformities,
		CollectionAudits,
		CollectionActions,
		CollectionDocuments,
		CollectionProfiles,
	}
}

// RecordPrefix returns the human readable number prefix of records in the collection.
// Profiles are not numbered and return an empty prefix.
func (c Collection) RecordPrefix() string {
	switch c {
	case CollectionNonConformities:
		return "NC"
	case CollectionAudits:
		return "AUD"
	case CollectionActions:
		return "ACT"
	case CollectionDocuments:
		return "DOC"
	default:
		return ""
	}
}

// FormatRecordNumber builds a record number such as "NC-2025-001"
func FormatRecordNumber(c Collection, year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", c.RecordPrefix(), year, seq)
}
