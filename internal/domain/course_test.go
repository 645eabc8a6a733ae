package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCourse_RunsDuring(t *testing.T) {
	course := &Course{
		StartDate: day("2026-09-01"),
		EndDate:   day("2026-09-30"),
	}

	tests := []struct {
		name       string
		queryStart string
		queryEnd   string
		want       bool
	}{
		{"query inside course range", "2026-09-10", "2026-09-20", true},
		{"course inside query range", "2026-08-01", "2026-10-31", true},
		{"overlap at course start", "2026-08-15", "2026-09-05", true},
		{"overlap at course end", "2026-09-25", "2026-10-15", true},
		{"query end equals course start", "2026-08-01", "2026-09-01", true},
		{"query start equals course end", "2026-09-30", "2026-10-31", true},
		{"query entirely before course", "2026-08-01", "2026-08-31", false},
		{"query entirely after course", "2026-10-01", "2026-10-31", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, course.RunsDuring(day(tt.queryStart), day(tt.queryEnd)))
		})
	}
}

func TestCourse_HasEnded(t *testing.T) {
	course := &Course{
		StartDate: day("2026-09-01"),
		EndDate:   day("2026-09-30"),
	}

	assert.False(t, course.HasEnded(day("2026-09-30")))
	assert.True(t, course.HasEnded(day("2026-10-01")))
}

func TestLocation_Qualifies(t *testing.T) {
	active := &Location{Capacity: 20, Status: LocationStatus{Active: true}}
	inactive := &Location{Capacity: 20, Status: LocationStatus{Active: false, Description: "renovation"}}

	assert.True(t, active.Qualifies(20))
	assert.True(t, active.Qualifies(0))
	assert.False(t, active.Qualifies(21))
	assert.False(t, inactive.Qualifies(10))
}
