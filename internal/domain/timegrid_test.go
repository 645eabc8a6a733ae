package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillhub/SkillHub-SchedulingService/pkg/types"
)

func TestAllSlots(t *testing.T) {
	slots := AllSlots()

	require.Len(t, slots, SlotsPerDay)
	assert.Equal(t, "00:00", slots[0].String())
	assert.Equal(t, "00:30", slots[1].String())
	assert.Equal(t, "23:30", slots[len(slots)-1].String())
}

func TestSlotAfter(t *testing.T) {
	assert.Equal(t, "09:30", SlotAfter(types.NewTimeOfDay(9, 0)).String())
	assert.Equal(t, "10:00", SlotAfter(types.NewTimeOfDay(9, 30)).String())
}

func TestOnGrid(t *testing.T) {
	assert.True(t, OnGrid(types.NewTimeOfDay(9, 0)))
	assert.True(t, OnGrid(types.NewTimeOfDay(9, 30)))
	assert.False(t, OnGrid(types.NewTimeOfDay(9, 15)))
	assert.False(t, OnGrid(types.NewTimeOfDay(9, 1)))
}
