package domain

import "github.com/avetra/venue-booking-service/pkg/types"

// TimeWindow default start/end times stamped onto a booking for a slot
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// Canonical default windows. Every caller - form defaulting, slot
// semantics, calendar quick-add - uses this single table; callers must
// not carry their own copies of these bounds.
var (
	FullDayWindow = TimeWindow{Start: "09:00", End: "17:00"}
	MorningWindow = TimeWindow{Start: "09:00", End: "13:00"}
	EveningWindow = TimeWindow{Start: "14:00", End: "18:00"}
)

// WindowFor returns the default window for a slot selection
func WindowFor(isFullDay bool, timeOfDay *TimeOfDay) (TimeWindow, error) {
	if isFullDay {
		return FullDayWindow, nil
	}
	if timeOfDay == nil || !timeOfDay.IsValid() {
		return TimeWindow{}, ErrMissingTimeOfDay
	}
	if *timeOfDay == TimeMorning {
		return MorningWindow, nil
	}
	return EveningWindow, nil
}
