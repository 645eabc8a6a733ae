package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/pkg/types"
)

// Address postal address of the organization
type Address struct {
	Street     string
	Number     string
	PostalCode string
	City       string
}

// OpeningTime is the opening window of the organization on one weekday.
// At most one entry per weekday is expected.
type OpeningTime struct {
	Weekday WeekDay
	Start   types.TimeOfDay
	End     types.TimeOfDay
}

// Company is the singleton organization configuration record. At most one
// instance exists; its absence is a valid, handled state.
type Company struct {
	ID               uuid.UUID
	Name             string
	ContactEmail     string
	ContactPhone     string
	RegistrationDate time.Time
	Address          Address
	OpeningTimes     []OpeningTime

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OpeningTimeFor returns the opening window for the given weekday, or nil if
// the organization is closed that day.
func (c *Company) OpeningTimeFor(day WeekDay) *OpeningTime {
	for i := range c.OpeningTimes {
		if c.OpeningTimes[i].Weekday == day {
			return &c.OpeningTimes[i]
		}
	}
	return nil
}
