package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
)

// Document is a controlled quality document (procedure, form, record)
type Document struct {
	ID         types.DocumentID `json:"id"`
	Number     string           `json:"document_number"`
	Title      string           `json:"title"`
	Category   string           `json:"category"`
	Version    string           `json:"version"`
	FileURL    string           `json:"file_url"`
	IsActive   bool             `json:"is_active"`
	ExpiryDate *time.Time       `json:"expiry_date,omitempty"`
	CreatedBy  string           `json:"created_by"`
	CreatedAt  time.Time        `json:"created_at"`
}

// NewDocument creates an active document
func NewDocument(title, category, version, fileURL, createdBy string) (*Document, error) {
	d := &Document{
		ID:        types.NewDocumentID(),
		Title:     title,
		Category:  category,
		Version:   version,
		FileURL:   fileURL,
		IsActive:  true,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks required fields
func (d *Document) Validate() error {
	if d.ID == "" {
		return goerr.New("document ID is required", goerr.T(ErrTagValidation))
	}
	if d.Title == "" {
		return goerr.New("document title is required", goerr.T(ErrTagValidation))
	}
	if d.Category == "" {
		return goerr.New("document category is required", goerr.T(ErrTagValidation))
	}
	if d.Version == "" {
		return goerr.New("document version is required", goerr.T(ErrTagValidation))
	}
	return nil
}
