package domain

import (
	"time"

	"github.com/google/uuid"
)

// LocationStatus active/inactive flag with a human-readable description
type LocationStatus struct {
	Active      bool
	Description string
}

// Equipment is a piece of equipment available at a location
type Equipment struct {
	ID          uuid.UUID
	LocationID  uuid.UUID
	Name        string
	Description string
	Amount      int
}

// Location is a bookable physical location
type Location struct {
	ID        uuid.UUID
	Name      string
	Capacity  int
	Status    LocationStatus
	Equipment []Equipment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the location can currently host courses
func (l *Location) IsActive() bool {
	return l.Status.Active
}

// Qualifies returns true if the location is active and can hold at least
// minCapacity participants
func (l *Location) Qualifies(minCapacity int) bool {
	return l.IsActive() && l.Capacity >= minCapacity
}
