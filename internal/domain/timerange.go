package domain

import (
	"errors"

	"github.com/skillhub/SkillHub-SchedulingService/pkg/types"
)

// ErrInvalidTimeRange is returned when a range's start is not before its end
var ErrInvalidTimeRange = errors.New("domain: time range start must be before end")

// TimeRange is an ordered pair of instants representing a bookable interval
// [Start, End). Immutable once constructed.
type TimeRange struct {
	Start types.TimeOfDay
	End   types.TimeOfDay
}

// NewTimeRange constructs a TimeRange, rejecting empty and reversed ranges
func NewTimeRange(start, end types.TimeOfDay) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{Start: start, End: end}, nil
}

// DurationMinutes returns the length of the range in minutes
func (r TimeRange) DurationMinutes() int {
	return r.End.Minutes() - r.Start.Minutes()
}

// String formats the range as "HH:MM-HH:MM"
func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}
