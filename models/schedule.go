package models

import "time"

// WeeklySchedule maps every weekday to its working hours. It is owned by the
// provider profile and is read-only to the booking flow.
type WeeklySchedule struct {
	Monday    DaySchedule `bson:"monday" json:"monday"`
	Tuesday   DaySchedule `bson:"tuesday" json:"tuesday"`
	Wednesday DaySchedule `bson:"wednesday" json:"wednesday"`
	Thursday  DaySchedule `bson:"thursday" json:"thursday"`
	Friday    DaySchedule `bson:"friday" json:"friday"`
	Saturday  DaySchedule `bson:"saturday" json:"saturday"`
	Sunday    DaySchedule `bson:"sunday" json:"sunday"`
}

// DaySchedule holds opening hours for a single weekday. Times are "HH:MM"
// clock strings. When Closed is set, the remaining fields are ignored.
type DaySchedule struct {
	Open   string          `bson:"open" json:"open"`
	Close  string          `bson:"close" json:"close"`
	Closed bool            `bson:"closed" json:"closed"`
	Breaks []BreakInterval `bson:"breaks,omitempty" json:"breaks,omitempty"`
}

// BreakInterval is a half-open [Start, End) pause inside the working day.
type BreakInterval struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// ForWeekday returns the schedule of the weekday the given date falls on.
func (w WeeklySchedule) ForWeekday(day time.Weekday) DaySchedule {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}
