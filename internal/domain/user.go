package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role discriminates the kinds of users. Roles are a tagged variant over a
// common identity and contact record, not separate entity hierarchies.
type Role string

const (
	RoleTrainer     Role = "trainer"
	RoleParticipant Role = "participant"
	RoleAdmin       Role = "admin"
)

// IsValid returns true if the value is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleTrainer, RoleParticipant, RoleAdmin:
		return true
	}
	return false
}

// UserAccount common identity and contact record shared by all roles.
// ExternalID is the identifier assigned by the external user directory;
// directory lookups themselves live outside this service.
type UserAccount struct {
	ID         uuid.UUID
	ExternalID string
	Role       Role
	FirstName  string
	LastName   string
	Email      string
	Phone      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName returns the user's full name
func (u *UserAccount) DisplayName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}
