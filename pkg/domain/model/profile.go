package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
)

// UserProfile represents a platform user
type UserProfile struct {
	ID        types.ProfileID `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"first_name,omitempty"`
	LastName  string          `json:"last_name,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewUserProfile creates a new profile
func NewUserProfile(email, firstName, lastName string) (*UserProfile, error) {
	id, err := types.NewProfileID()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate profile ID")
	}

	p := &UserProfile{
		ID:        id,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now(),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks required fields
func (p *UserProfile) Validate() error {
	if p.ID == "" {
		return goerr.New("profile ID is required", goerr.T(ErrTagValidation))
	}
	if !strings.Contains(p.Email, "@") {
		return goerr.New("invalid email", goerr.V("email", p.Email), goerr.T(ErrTagValidation))
	}
	return nil
}

// DisplayName returns the full name, falling back to the email
func (p *UserProfile) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return p.Email
	}
	return name
}
