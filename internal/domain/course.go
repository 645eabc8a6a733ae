package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillhub/SkillHub-SchedulingService/pkg/types"
)

// Availability is one recurring weekly time slot reserved by a course at a
// location. Its lifetime is bound to the owning course: created when the
// course's weekly schedule is saved, destroyed when the course is deleted or
// its schedule is replaced.
type Availability struct {
	ID         uuid.UUID
	CourseID   uuid.UUID
	LocationID uuid.UUID
	TrainerID  uuid.UUID
	Weekday    WeekDay
	Start      types.TimeOfDay
	End        types.TimeOfDay
}

// Course is a scheduled course with an inclusive calendar range during which
// its weekly availabilities are active.
type Course struct {
	ID              uuid.UUID
	Title           string
	Description     string
	StartDate       time.Time
	EndDate         time.Time
	MaxParticipants int
	PictureURLs     []string
	Availabilities  []Availability

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RunsDuring reports whether the course's inclusive date range intersects
// [queryStart, queryEnd]. Equal boundary dates count as overlapping. An
// availability is only relevant to conflict detection while this holds for
// its owning course.
func (c *Course) RunsDuring(queryStart, queryEnd time.Time) bool {
	return !c.StartDate.After(queryEnd) && !c.EndDate.Before(queryStart)
}

// HasEnded reports whether the course's date range lies entirely before ref
func (c *Course) HasEnded(ref time.Time) bool {
	return c.EndDate.Before(ref)
}

// RegistrationStatus represents the status of a course registration
type RegistrationStatus string

const (
	RegistrationRegistered RegistrationStatus = "registered"
	RegistrationWaitlisted RegistrationStatus = "waitlisted"
	RegistrationCancelled  RegistrationStatus = "cancelled"
)

// IsValid returns true if the value is a known registration status
func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationRegistered, RegistrationWaitlisted, RegistrationCancelled:
		return true
	}
	return false
}

// CourseRegistration links a participant to a course
type CourseRegistration struct {
	ID               uuid.UUID
	CourseID         uuid.UUID
	ParticipantID    uuid.UUID
	RegistrationDate time.Time
	Status           RegistrationStatus
}
