package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
)

// Audit represents an internal or external quality audit
type Audit struct {
	ID           types.AuditID     `json:"id"`
	Number       string            `json:"audit_number"`
	Title        string            `json:"title"`
	Type         types.AuditType   `json:"type"`
	Status       types.AuditStatus `json:"status"`
	AuditDate    time.Time         `json:"audit_date"` // Calendar date, stored at midnight UTC
	AuditorID    string            `json:"auditor_id"`
	Score        *float64          `json:"score,omitempty"`
	Observations string            `json:"observations,omitempty"`
	ReportURL    string            `json:"report_url,omitempty"`
	CreatedBy    string            `json:"created_by"`
	CreatedAt    time.Time         `json:"created_at"`
}

// NewAudit creates a planned audit for the given calendar date
func NewAudit(title string, auditType types.AuditType, auditDate time.Time, auditorID, createdBy string) (*Audit, error) {
	a := &Audit{
		ID:        types.NewAuditID(),
		Title:     title,
		Type:      auditType,
		Status:    types.AuditStatusPlanned,
		AuditDate: DateOf(auditDate),
		AuditorID: auditorID,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks required fields and enum values
func (a *Audit) Validate() error {
	if a.ID == "" {
		return goerr.New("audit ID is required", goerr.T(ErrTagValidation))
	}
	if a.Title == "" {
		return goerr.New("audit title is required", goerr.T(ErrTagValidation))
	}
	if !a.Type.IsValid() {
		return goerr.New("invalid audit type", goerr.V("type", a.Type), goerr.T(ErrTagValidation))
	}
	if !a.Status.IsValid() {
		return goerr.New("invalid audit status", goerr.V("status", a.Status), goerr.T(ErrTagValidation))
	}
	if a.AuditDate.IsZero() {
		return goerr.New("audit date is required", goerr.T(ErrTagValidation))
	}
	if a.AuditorID == "" {
		return goerr.New("auditor is required", goerr.T(ErrTagValidation))
	}
	if a.Score != nil && (*a.Score < 0 || *a.Score > 100) {
		return goerr.New("audit score must be between 0 and 100",
			goerr.V("score", *a.Score), goerr.T(ErrTagValidation))
	}
	return nil
}

// DateOf truncates t to its calendar date (in t's location) expressed at midnight UTC
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
