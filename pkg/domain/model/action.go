package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
)

// Action is a corrective or preventive action (CAPA) linked to a non-conformity or an audit
type Action struct {
	ID                    types.ActionID         `json:"id"`
	Number                string                 `json:"action_number"`
	Type                  types.ActionType       `json:"type"`
	Status                types.ActionStatus     `json:"status"`
	Description           string                 `json:"description"`
	AssignedTo            string                 `json:"assigned_to"`
	DueDate               time.Time              `json:"due_date"`
	NCID                  *types.NonConformityID `json:"nc_id,omitempty"`
	AuditID               *types.AuditID         `json:"audit_id,omitempty"`
	EffectivenessVerified bool                   `json:"effectiveness_verified"`
	CreatedBy             string                 `json:"created_by"`
	CreatedAt             time.Time              `json:"created_at"`
}

// NewAction creates a planned action
func NewAction(actionType types.ActionType, description, assignedTo string, dueDate time.Time, createdBy string) (*Action, error) {
	a := &Action{
		ID:          types.NewActionID(),
		Type:        actionType,
		Status:      types.ActionStatusPlanned,
		Description: description,
		AssignedTo:  assignedTo,
		DueDate:     DateOf(dueDate),
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks required fields and enum values
func (a *Action) Validate() error {
	if a.ID == "" {
		return goerr.New("action ID is required", goerr.T(ErrTagValidation))
	}
	if !a.Type.IsValid() {
		return goerr.New("invalid action type", goerr.V("type", a.Type), goerr.T(ErrTagValidation))
	}
	if !a.Status.IsValid() {
		return goerr.New("invalid action status", goerr.V("status", a.Status), goerr.T(ErrTagValidation))
	}
	if a.Description == "" {
		return goerr.New("action description is required", goerr.T(ErrTagValidation))
	}
	if a.AssignedTo == "" {
		return goerr.New("action assignee is required", goerr.T(ErrTagValidation))
	}
	return nil
}
