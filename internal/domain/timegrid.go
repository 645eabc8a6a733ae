package domain

import "github.com/skillhub/SkillHub-SchedulingService/pkg/types"

// AllSlots returns the 48 canonical half-hour instants of a day in ascending
// order, 00:00 through 23:30. Each slot is identified by its start instant.
func AllSlots() []types.TimeOfDay {
	slots := make([]types.TimeOfDay, 0, SlotsPerDay)
	for i := 0; i < SlotsPerDay; i++ {
		slots = append(slots, types.NewTimeOfDay(0, 0).AddMinutes(i*SlotDurationMinutes))
	}
	return slots
}

// SlotAfter returns the grid slot following the given one. The result rolls
// past 23:30 only if the caller never dereferences it as a grid slot.
func SlotAfter(slot types.TimeOfDay) types.TimeOfDay {
	return slot.AddMinutes(SlotDurationMinutes)
}

// OnGrid reports whether the instant lies on the half-hour grid (:00 or :30).
func OnGrid(t types.TimeOfDay) bool {
	return t.Minutes()%SlotDurationMinutes == 0
}
