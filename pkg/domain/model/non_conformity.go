package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
)

// NonConformity is a recorded quality deviation tracked until resolution
type NonConformity struct {
	ID               types.NonConformityID `json:"id"`
	Number           string                `json:"nc_number"`
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	Status           types.NCStatus        `json:"status"`
	Priority         types.NCPriority      `json:"priority"`
	Cause            string                `json:"cause,omitempty"`
	CorrectiveAction string                `json:"corrective_action,omitempty"`
	AssignedTo       string                `json:"assigned_to,omitempty"`
	CreatedBy        string                `json:"created_by"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
	DueDate          *time.Time            `json:"due_date,omitempty"`
	ClosedAt         *time.Time            `json:"closed_at,omitempty"`
	AttachmentURL    string                `json:"attachment_url,omitempty"`
}

// NewNonConformity creates an open non-conformity
func NewNonConformity(title, description string, priority types.NCPriority, createdBy string) (*NonConformity, error) {
	nc := &NonConformity{
		ID:          types.NewNonConformityID(),
		Title:       title,
		Description: description,
		Status:      types.NCStatusOpen,
		Priority:    priority,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}
	nc.UpdatedAt = nc.CreatedAt

	if err := nc.Validate(); err != nil {
		return nil, err
	}
	return nc, nil
}

// Validate checks required fields and enum values
func (nc *NonConformity) Validate() error {
	if nc.ID == "" {
		return goerr.New("non-conformity ID is required", goerr.T(ErrTagValidation))
	}
	if nc.Title == "" {
		return goerr.New("non-conformity title is required", goerr.T(ErrTagValidation))
	}
	if !nc.Status.IsValid() {
		return goerr.New("invalid non-conformity status",
			goerr.V("status", nc.Status), goerr.T(ErrTagValidation))
	}
	if !nc.Priority.IsValid() {
		return goerr.New("invalid non-conformity priority",
			goerr.V("priority", nc.Priority), goerr.T(ErrTagValidation))
	}
	if nc.CreatedBy == "" {
		return goerr.New("creator is required", goerr.T(ErrTagValidation))
	}
	return nil
}

// SetStatus moves the non-conformity to a new status. Closing stamps ClosedAt,
// reopening clears it.
func (nc *NonConformity) SetStatus(status types.NCStatus, at time.Time) error {
	if !status.IsValid() {
		return goerr.New("invalid non-conformity status",
			goerr.V("status", status), goerr.T(ErrTagValidation))
	}
	if nc.Status == status {
		return goerr.New("status is already set to the same value",
			goerr.V("status", status), goerr.T(ErrTagValidation))
	}

	nc.Status = status
	nc.UpdatedAt = at
	switch status {
	case types.NCStatusClosed:
		closedAt := at
		nc.ClosedAt = &closedAt
	case types.NCStatusOpen, types.NCStatusInProgress:
		nc.ClosedAt = nil
	}
	return nil
}
