package availability

import (
	"fmt"
	"time"

	"github.com/odacaict/domee.ro/models"
)

// DefaultGranularity is the step between candidate slot starts, in minutes.
const DefaultGranularity = 30

// ComputeAvailableSlots derives the bookable start times for one provider day.
// It is a pure function over its inputs: the provider's weekly schedule, the
// target date ("2006-01-02"), the requested service duration in minutes, the
// non-cancelled bookings already committed for that date, and the slot
// granularity. The returned slots cover every candidate start in ascending
// order, flagging each as available or not, so callers can render both states.
//
// A candidate is unavailable when its half-open interval [start, start+dur)
// overlaps a break or an existing booking, or when the date is today and the
// start lies before now.
func ComputeAvailableSlots(
	schedule models.WeeklySchedule,
	date string,
	serviceDuration int,
	existing []models.BookingInterval,
	granularity int,
	now time.Time,
) ([]models.TimeSlot, error) {
	if serviceDuration <= 0 {
		return nil, fmt.Errorf("%w: service duration must be positive, got %d", ErrInvalidArgument, serviceDuration)
	}
	if granularity <= 0 {
		return nil, fmt.Errorf("%w: slot granularity must be positive, got %d", ErrInvalidArgument, granularity)
	}

	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidArgument, date)
	}

	ds := schedule.ForWeekday(day.Weekday())
	if ds.Closed {
		return []models.TimeSlot{}, nil
	}

	open, err := parseClock(ds.Open)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid opening time %q", ErrInvalidArgument, ds.Open)
	}
	closeAt, err := parseClock(ds.Close)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid closing time %q", ErrInvalidArgument, ds.Close)
	}
	if open >= closeAt {
		return nil, fmt.Errorf("%w: opening time %q not before closing time %q", ErrInvalidArgument, ds.Open, ds.Close)
	}

	breaks, err := breakIntervals(ds.Breaks)
	if err != nil {
		return nil, err
	}
	booked := bookingIntervals(existing)

	// When the requested date is today, everything before the current clock
	// minute is gone for good.
	cutoff := -1
	if sameDay(day, now) {
		cutoff = now.Hour()*60 + now.Minute()
	}

	slots := make([]models.TimeSlot, 0, (closeAt-open)/granularity+1)
	for start := open; start+serviceDuration <= closeAt; start += granularity {
		end := start + serviceDuration
		free := start >= cutoff &&
			!overlapsAny(start, end, breaks) &&
			!overlapsAny(start, end, booked)
		slots = append(slots, models.TimeSlot{
			Time:      formatClock(start),
			Available: free,
		})
	}
	return slots, nil
}

// SlotAvailable reports whether one specific start time is bookable. It is
// the single-candidate view the reservation path validates against.
func SlotAvailable(
	schedule models.WeeklySchedule,
	date, slotTime string,
	serviceDuration int,
	existing []models.BookingInterval,
	now time.Time,
) (bool, error) {
	want, err := parseClock(slotTime)
	if err != nil {
		return false, fmt.Errorf("%w: invalid slot time %q", ErrInvalidArgument, slotTime)
	}
	slots, err := ComputeAvailableSlots(schedule, date, serviceDuration, existing, DefaultGranularity, now)
	if err != nil {
		return false, err
	}
	for _, s := range slots {
		m, _ := parseClock(s.Time)
		if m == want {
			return s.Available, nil
		}
	}
	// Off-grid or outside working hours.
	return false, nil
}

type interval struct {
	start, end int
}

// overlap of half-open intervals: [a1,a2) and [b1,b2) intersect iff
// a1 < b2 && b1 < a2.
func overlapsAny(start, end int, ivs []interval) bool {
	for _, iv := range ivs {
		if start < iv.end && iv.start < end {
			return true
		}
	}
	return false
}

func breakIntervals(breaks []models.BreakInterval) ([]interval, error) {
	ivs := make([]interval, 0, len(breaks))
	for _, b := range breaks {
		s, err := parseClock(b.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid break start %q", ErrInvalidArgument, b.Start)
		}
		e, err := parseClock(b.End)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid break end %q", ErrInvalidArgument, b.End)
		}
		ivs = append(ivs, interval{start: s, end: e})
	}
	return ivs, nil
}

func bookingIntervals(existing []models.BookingInterval) []interval {
	ivs := make([]interval, 0, len(existing))
	for _, b := range existing {
		s, err := parseClock(b.Time)
		if err != nil || b.Duration <= 0 {
			continue
		}
		ivs = append(ivs, interval{start: s, end: s + b.Duration})
	}
	return ivs
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
