package domain

// Slot grid constants. Every scheduling time value is quantized to this grid.
const (
	SlotDurationMinutes = 30
	SlotsPerDay         = 24 * 60 / SlotDurationMinutes
)

// Business validation constants
const (
	MaxDurationMinutes   = 24 * 60
	MaxTitleLength       = 200
	MaxNameLength        = 200
	MaxDescriptionLength = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
