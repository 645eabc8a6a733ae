package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeOfDay wall-clock time with minute granularity, stored as minutes since midnight.
// Comparable value type; the zero value is 00:00.
type TimeOfDay struct {
	minutes int
}

// NewTimeOfDay creates a TimeOfDay from hour and minute.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{minutes: hour*60 + minute}
}

// ParseTimeOfDay parses a "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("types: parse time of day %q: %w", s, err)
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

// FromTime extracts the time of day from a time.Time.
func FromTime(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute())
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int { return t.minutes / 60 }

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int { return t.minutes % 60 }

// Minutes returns the total minutes since midnight.
func (t TimeOfDay) Minutes() int { return t.minutes }

// Before reports whether t is strictly before other.
func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }

// After reports whether t is strictly after other.
func (t TimeOfDay) After(other TimeOfDay) bool { return t.minutes > other.minutes }

// Equal reports whether t and other are the same instant.
func (t TimeOfDay) Equal(other TimeOfDay) bool { return t.minutes == other.minutes }

// AddMinutes returns t shifted forward by m minutes. The result may exceed
// 23:59; callers working on the day grid never dereference such values.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return TimeOfDay{minutes: t.minutes + m}
}

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalJSON implements json.Marshaler, emitting "HH:MM".
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler, expecting "HH:MM".
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("types: invalid time of day %s", s)
	}
	parsed, err := ParseTimeOfDay(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer for TIME columns.
func (t TimeOfDay) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute()), nil
}

// Scan implements sql.Scanner for TIME columns.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = FromTime(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case nil:
		*t = TimeOfDay{}
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeOfDay", src)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	// Postgres TIME values arrive as "HH:MM:SS"; seconds are dropped.
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
