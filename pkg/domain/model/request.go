package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date. An empty string yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid date", goerr.V("date", s), goerr.T(ErrTagValidation))
	}
	return &t, nil
}

// CreateNonConformityRequest holds the user input of a new non-conformity
type CreateNonConformityRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Priority    types.NCPriority `json:"priority"`
	Cause       string           `json:"cause"`
	AssignedTo  string           `json:"assigned_to"`
	DueDate     string           `json:"due_date"`
	CreatedBy   string           `json:"created_by"`
}

// CreateAuditRequest holds the user input of a new audit
type CreateAuditRequest struct {
	Title        string          `json:"title"`
	Type         types.AuditType `json:"type"`
	AuditDate    string          `json:"audit_date"`
	AuditorID    string          `json:"auditor_id"`
	Observations string          `json:"observations"`
	CreatedBy    string          `json:"created_by"`
}

// CreateActionRequest holds the user input of a new CAPA action
type CreateActionRequest struct {
	Type        types.ActionType `json:"type"`
	Description string           `json:"description"`
	AssignedTo  string           `json:"assigned_to"`
	DueDate     string           `json:"due_date"`
	NCID        string           `json:"nc_id"`
	AuditID     string           `json:"audit_id"`
	CreatedBy   string           `json:"created_by"`
}

// CreateDocumentRequest holds the user input of a new document
type CreateDocumentRequest struct {
	Title      string `json:"title"`
	Category   string `json:"category"`
	Version    string `json:"version"`
	FileURL    string `json:"file_url"`
	ExpiryDate string `json:"expiry_date"`
	CreatedBy  string `json:"created_by"`
}

// CreateProfileRequest holds the user input of a new profile
type CreateProfileRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UpdateNonConformityRequest holds a partial update of a non-conformity. Nil
// fields are left unchanged; an empty due date clears it.
type UpdateNonConformityRequest struct {
	Title            *string           `json:"title"`
	Description      *string           `json:"description"`
	Status           *types.NCStatus   `json:"status"`
	Priority         *types.NCPriority `json:"priority"`
	Cause            *string           `json:"cause"`
	CorrectiveAction *string           `json:"corrective_action"`
	AssignedTo       *string           `json:"assigned_to"`
	DueDate          *string           `json:"due_date"`
	AttachmentURL    *string           `json:"attachment_url"`
}

// Apply merges the request into nc and validates the result
func (r *UpdateNonConformityRequest) Apply(nc *NonConformity, at time.Time) error {
	if r.Title != nil {
		nc.Title = *r.Title
	}
	if r.Description != nil {
		nc.Description = *r.Description
	}
	if r.Priority != nil {
		nc.Priority = *r.Priority
	}
	if r.Cause != nil {
		nc.Cause = *r.Cause
	}
	if r.CorrectiveAction != nil {
		nc.CorrectiveAction = *r.CorrectiveAction
	}
	if r.AssignedTo != nil {
		nc.AssignedTo = *r.AssignedTo
	}
	if r.AttachmentURL != nil {
		nc.AttachmentURL = *r.AttachmentURL
	}
	if r.DueDate != nil {
		due, err := ParseDate(*r.DueDate)
		if err != nil {
			return err
		}
		nc.DueDate = due
	}
	if r.Status != nil && *r.Status != nc.Status {
		if err := nc.SetStatus(*r.Status, at); err != nil {
			return err
		}
	}

	nc.UpdatedAt = at
	return nc.Validate()
}

// UpdateAuditRequest holds a partial update of an audit
type UpdateAuditRequest struct {
	Title        *string            `json:"title"`
	Type         *types.AuditType   `json:"type"`
	Status       *types.AuditStatus `json:"status"`
	AuditDate    *string            `json:"audit_date"`
	AuditorID    *string            `json:"auditor_id"`
	Score        *float64           `json:"score"`
	Observations *string            `json:"observations"`
	ReportURL    *string            `json:"report_url"`
}

// Apply merges the request into a and validates the result
func (r *UpdateAuditRequest) Apply(a *Audit) error {
	if r.Title != nil {
		a.Title = *r.Title
	}
	if r.Type != nil {
		a.Type = *r.Type
	}
	if r.Status != nil {
		a.Status = *r.Status
	}
	if r.AuditDate != nil {
		date, err := ParseDate(*r.AuditDate)
		if err != nil {
			return err
		}
		if date == nil {
			return goerr.New("audit date is required", goerr.T(ErrTagValidation))
		}
		a.AuditDate = DateOf(*date)
	}
	if r.AuditorID != nil {
		a.AuditorID = *r.AuditorID
	}
	if r.Score != nil {
		score := *r.Score
		a.Score = &score
	}
	if r.Observations != nil {
		a.Observations = *r.Observations
	}
	if r.ReportURL != nil {
		a.ReportURL = *r.ReportURL
	}
	return a.Validate()
}

// UpdateDocumentRequest holds a partial update of a document. An empty expiry
// date clears it.
type UpdateDocumentRequest struct {
	Title      *string `json:"title"`
	Category   *string `json:"category"`
	Version    *string `json:"version"`
	FileURL    *string `json:"file_url"`
	IsActive   *bool   `json:"is_active"`
	ExpiryDate *string `json:"expiry_date"`
}

// Apply merges the request into d and validates the result
func (r *UpdateDocumentRequest) Apply(d *Document) error {
	if r.Title != nil {
		d.Title = *r.Title
	}
	if r.Category != nil {
		d.Category = *r.Category
	}
	if r.Version != nil {
		d.Version = *r.Version
	}
	if r.FileURL != nil {
		d.FileURL = *r.FileURL
	}
	if r.IsActive != nil {
		d.IsActive = *r.IsActive
	}
	if r.ExpiryDate != nil {
		expiry, err := ParseDate(*r.ExpiryDate)
		if err != nil {
			return err
		}
		d.ExpiryDate = expiry
	}
	return d.Validate()
}
