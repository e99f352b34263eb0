package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odacaict/domee.ro/models"
)

func mondaySchedule(day models.DaySchedule) models.WeeklySchedule {
	return models.WeeklySchedule{Monday: day}
}

// 2026-01-05 is a Monday.
const mondayDate = "2026-01-05"

func notToday() time.Time {
	return time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
}

func availableTimes(slots []models.TimeSlot) []string {
	var out []string
	for _, s := range slots {
		if s.Available {
			out = append(out, s.Time)
		}
	}
	return out
}

func TestComputeAvailableSlots_ReferenceScenario(t *testing.T) {
	schedule := mondaySchedule(models.DaySchedule{
		Open:   "09:00",
		Close:  "18:00",
		Breaks: []models.BreakInterval{{Start: "12:00", End: "13:00"}},
	})
	existing := []models.BookingInterval{{Time: "14:00", Duration: 60}}

	slots, err := ComputeAvailableSlots(schedule, mondayDate, 60, existing, 30, notToday())
	require.NoError(t, err)

	// 09:00 through 17:00 stepped by 30, since 17:30+60 overruns closing.
	require.Len(t, slots, 17)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "17:00", slots[len(slots)-1].Time)

	assert.Equal(t, []string{
		"09:00", "09:30", "10:00", "10:30", "11:00",
		"13:00", "15:00", "15:30", "16:00", "16:30", "17:00",
	}, availableTimes(slots))

	byTime := map[string]bool{}
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}
	// 11:30 runs into the 12:00 break; 13:00 ends exactly at the 14:00
	// booking so the half-open rule keeps it free; 13:30 collides.
	assert.False(t, byTime["11:30"])
	assert.True(t, byTime["13:00"])
	assert.False(t, byTime["13:30"])
	assert.False(t, byTime["14:00"])
	assert.False(t, byTime["14:30"])
}

func TestComputeAvailableSlots_ClosedDay(t *testing.T) {
	schedule := mondaySchedule(models.DaySchedule{Open: "09:00", Close: "18:00", Closed: true})
	slots, err := ComputeAvailableSlots(schedule, mondayDate, 30, nil, 30, notToday())
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_DurationNeverOverrunsClose(t *testing.T) {
	schedule := mondaySchedule(models.DaySchedule{Open: "09:00", Close: "11:00"})
	slots, err := ComputeAvailableSlots(schedule, mondayDate, 45, nil, 30, notToday())
	require.NoError(t, err)

	// 10:30+45 > 11:00, so the last candidate is 10:00.
	require.NotEmpty(t, slots)
	assert.Equal(t, "10:00", slots[len(slots)-1].Time)
	for _, s := range slots {
		assert.True(t, s.Time <= "10:00" || !s.Available)
	}
}

func TestComputeAvailableSlots_PastSlotsUnavailableToday(t *testing.T) {
	schedule := mondaySchedule(models.DaySchedule{Open: "09:00", Close: "18:00"})
	now := time.Date(2026, 1, 5, 13, 10, 0, 0, time.UTC) // the Monday itself

	slots, err := ComputeAvailableSlots(schedule, mondayDate, 30, nil, 30, now)
	require.NoError(t, err)

	for _, s := range slots {
		if s.Time < "13:10" {
			assert.False(t, s.Available, "slot %s lies in the past", s.Time)
		}
	}
	byTime := map[string]bool{}
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}
	assert.False(t, byTime["13:00"])
	assert.True(t, byTime["13:30"])
}

func TestComputeAvailableSlots_CancelledBookingsImposeNothing(t *testing.T) {
	schedule := mondaySchedule(models.DaySchedule{Open: "09:00", Close: "12:00"})

	// The caller passes only non-cancelled bookings; an empty set must leave
	// the whole morning open.
	slots, err := ComputeAvailableSlots(schedule, mondayDate, 30, nil, 30, notToday())
	require.NoError(t, err)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestComputeAvailableSlots_BookingExclusionIsHalfOpen(t *testing.T) {
	schedule := mondaySchedule(models.DaySchedule{Open: "09:00", Close: "12:00"})
	existing := []models.BookingInterval{{Time: "10:00", Duration: 30}}

	slots, err := ComputeAvailableSlots(schedule, mondayDate, 30, existing, 30, notToday())
	require.NoError(t, err)

	byTime := map[string]bool{}
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}
	assert.True(t, byTime["09:30"])  // ends exactly at booking start
	assert.False(t, byTime["10:00"]) // the booking itself
	assert.True(t, byTime["10:30"])  // starts exactly at booking end
}

func TestComputeAvailableSlots_Deterministic(t *testing.T) {
	schedule := mondaySchedule(models.DaySchedule{
		Open:   "08:00",
		Close:  "20:00",
		Breaks: []models.BreakInterval{{Start: "12:30", End: "13:30"}},
	})
	existing := []models.BookingInterval{
		{Time: "09:00", Duration: 90},
		{Time: "16:00", Duration: 45},
	}

	first, err := ComputeAvailableSlots(schedule, mondayDate, 45, existing, 15, notToday())
	require.NoError(t, err)
	second, err := ComputeAvailableSlots(schedule, mondayDate, 45, existing, 15, notToday())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeAvailableSlots_InvalidArguments(t *testing.T) {
	schedule := mondaySchedule(models.DaySchedule{Open: "09:00", Close: "18:00"})

	cases := []struct {
		name        string
		date        string
		duration    int
		granularity int
	}{
		{"zero duration", mondayDate, 0, 30},
		{"negative duration", mondayDate, -15, 30},
		{"zero granularity", mondayDate, 30, 0},
		{"garbage date", "not-a-date", 30, 30},
		{"reversed date format", "05-01-2026", 30, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeAvailableSlots(schedule, tc.date, tc.duration, nil, tc.granularity, notToday())
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestComputeAvailableSlots_MalformedScheduleRejected(t *testing.T) {
	schedule := mondaySchedule(models.DaySchedule{Open: "18:00", Close: "09:00"})
	_, err := ComputeAvailableSlots(schedule, mondayDate, 30, nil, 30, notToday())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSlotAvailable(t *testing.T) {
	schedule := mondaySchedule(models.DaySchedule{Open: "09:00", Close: "18:00"})
	existing := []models.BookingInterval{{Time: "10:00", Duration: 60}}

	ok, err := SlotAvailable(schedule, mondayDate, "09:00", 60, existing, notToday())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = SlotAvailable(schedule, mondayDate, "10:30", 60, existing, notToday())
	require.NoError(t, err)
	assert.False(t, ok)

	// Off-grid starts are never offered.
	ok, err = SlotAvailable(schedule, mondayDate, "10:12", 60, nil, notToday())
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = SlotAvailable(schedule, mondayDate, "25:00", 60, nil, notToday())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseClock(t *testing.T) {
	m, err := parseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	for _, bad := range []string{"", "9", "9:3x", "24:00", "12:60", "ab:cd"} {
		_, err := parseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}

	assert.Equal(t, "07:05", formatClock(425))
}
