package filter_locations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillhub/SkillHub-SchedulingService/internal/domain"
	"github.com/skillhub/SkillHub-SchedulingService/pkg/types"
)

func tod(hour, minute int) types.TimeOfDay {
	return types.NewTimeOfDay(hour, minute)
}

func testCompany(openingTimes ...domain.OpeningTime) *domain.Company {
	return &domain.Company{
		Name:         "SkillHub",
		OpeningTimes: openingTimes,
	}
}

func TestOpeningSlots(t *testing.T) {
	tests := []struct {
		name      string
		company   *domain.Company
		day       domain.WeekDay
		wantCount int
		wantHas   []types.TimeOfDay
		wantLacks []types.TimeOfDay
	}{
		{
			name:      "nil company yields no slots",
			company:   nil,
			day:       domain.Monday,
			wantCount: 0,
		},
		{
			name:      "company without opening times yields no slots",
			company:   testCompany(),
			day:       domain.Monday,
			wantCount: 0,
		},
		{
			name: "weekday without opening entry yields no slots",
			company: testCompany(domain.OpeningTime{
				Weekday: domain.Monday, Start: tod(9, 0), End: tod(17, 0),
			}),
			day:       domain.Tuesday,
			wantCount: 0,
		},
		{
			name: "business day 09:00-17:00 yields 16 slots, close excluded",
			company: testCompany(domain.OpeningTime{
				Weekday: domain.Monday, Start: tod(9, 0), End: tod(17, 0),
			}),
			day:       domain.Monday,
			wantCount: 16,
			wantHas:   []types.TimeOfDay{tod(9, 0), tod(16, 30)},
			wantLacks: []types.TimeOfDay{tod(8, 30), tod(17, 0)},
		},
		{
			name: "full day 00:00-23:30 excludes only closing instant",
			company: testCompany(domain.OpeningTime{
				Weekday: domain.Sunday, Start: tod(0, 0), End: tod(23, 30),
			}),
			day:       domain.Sunday,
			wantCount: 47,
			wantHas:   []types.TimeOfDay{tod(0, 0), tod(23, 0)},
			wantLacks: []types.TimeOfDay{tod(23, 30)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := openingSlots(tt.company, tt.day)

			require.Len(t, slots, tt.wantCount)
			for _, want := range tt.wantHas {
				assert.True(t, containsSlot(slots, want), "expected slot %s", want)
			}
			for _, lack := range tt.wantLacks {
				assert.False(t, containsSlot(slots, lack), "unexpected slot %s", lack)
			}
		})
	}
}

func TestRemoveBookedSlots(t *testing.T) {
	booking := func(start, end types.TimeOfDay) *domain.Availability {
		return &domain.Availability{Weekday: domain.Monday, Start: start, End: end}
	}

	t.Run("booking removes fully occupied slots only", func(t *testing.T) {
		candidates := []types.TimeOfDay{tod(9, 30), tod(10, 0), tod(10, 30), tod(11, 0)}

		free := removeBookedSlots(candidates, []*domain.Availability{booking(tod(10, 0), tod(11, 0))})

		// 09:30 заканчивается к началу бронирования, 11:00 начинается в
		// момент его окончания
		require.Equal(t, []types.TimeOfDay{tod(9, 30), tod(11, 0)}, free)
	})

	t.Run("no bookings keeps candidates untouched", func(t *testing.T) {
		candidates := []types.TimeOfDay{tod(9, 0), tod(9, 30)}

		free := removeBookedSlots(candidates, nil)

		require.Equal(t, candidates, free)
	})

	t.Run("removal is idempotent", func(t *testing.T) {
		candidates := []types.TimeOfDay{tod(9, 0), tod(9, 30), tod(10, 0), tod(10, 30)}
		bookings := []*domain.Availability{booking(tod(9, 30), tod(10, 30))}

		once := removeBookedSlots(candidates, bookings)
		twice := removeBookedSlots(once, bookings)

		require.Equal(t, once, twice)
		require.Equal(t, []types.TimeOfDay{tod(9, 0), tod(10, 30)}, once)
	})

	t.Run("input slice order preserved across multiple bookings", func(t *testing.T) {
		candidates := []types.TimeOfDay{tod(9, 0), tod(9, 30), tod(10, 0), tod(10, 30), tod(11, 0)}
		bookings := []*domain.Availability{
			booking(tod(9, 30), tod(10, 0)),
			booking(tod(10, 30), tod(11, 0)),
		}

		free := removeBookedSlots(candidates, bookings)

		require.Equal(t, []types.TimeOfDay{tod(9, 0), tod(10, 0), tod(11, 0)}, free)
	})
}

func TestStartableRanges(t *testing.T) {
	t.Run("duration 30 accepts every free slot", func(t *testing.T) {
		free := []types.TimeOfDay{tod(9, 0), tod(11, 0), tod(15, 30)}

		ranges := startableRanges(free, 30)

		require.Len(t, ranges, len(free))
		for i, r := range ranges {
			assert.True(t, r.Start.Equal(free[i]))
			assert.True(t, r.End.Equal(free[i].AddMinutes(30)))
		}
	})

	t.Run("per-start enumeration yields overlapping windows", func(t *testing.T) {
		// Непрерывный свободный отрезок 09:00..11:00 (старты 09:00..10:30)
		free := []types.TimeOfDay{tod(9, 0), tod(9, 30), tod(10, 0), tod(10, 30)}

		ranges := startableRanges(free, 60)

		require.Equal(t, []domain.TimeRange{
			{Start: tod(9, 0), End: tod(10, 0)},
			{Start: tod(9, 30), End: tod(10, 30)},
			{Start: tod(10, 0), End: tod(11, 0)},
		}, ranges)
	})

	t.Run("gap in free slots breaks the window", func(t *testing.T) {
		// 10:00 занят
		free := []types.TimeOfDay{tod(9, 0), tod(9, 30), tod(10, 30)}

		ranges := startableRanges(free, 60)

		require.Equal(t, []domain.TimeRange{
			{Start: tod(9, 0), End: tod(10, 0)},
		}, ranges)
	})

	t.Run("duration longer than free run yields nothing", func(t *testing.T) {
		free := []types.TimeOfDay{tod(9, 0), tod(9, 30)}

		ranges := startableRanges(free, 90)

		require.Empty(t, ranges)
	})

	t.Run("no free slots yields nothing", func(t *testing.T) {
		ranges := startableRanges(nil, 30)

		require.Empty(t, ranges)
	})
}
