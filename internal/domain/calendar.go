package domain

import "time"

// DayDecoration calendar-cell decoration class for a date
type DayDecoration string

const (
	DecorationNone      DayDecoration = "none"
	DecorationPending   DayDecoration = "pending"
	DecorationConfirmed DayDecoration = "confirmed"
	// DecorationCancelled only appears when the caller deliberately feeds
	// cancelled bookings in for historical display
	DecorationCancelled DayDecoration = "cancelled"
)

// CalendarDay rendering decoration for one calendar cell
type CalendarDay struct {
	Date       time.Time
	Decoration DayDecoration
	Count      int // badge: number of non-cancelled bookings on the date
}

// DecorateDay maps a date's bookings to a cell decoration. Pure function;
// it never decides availability, only presentation.
//
// Any confirmed booking wins over pending. Cancelled bookings are not
// counted and only produce a decoration when they are all there is -
// the audit-display case.
func DecorateDay(date time.Time, bookings []*Booking) CalendarDay {
	day := CalendarDay{Date: TruncateToDay(date), Decoration: DecorationNone}

	hasConfirmed := false
	hasPending := false
	hasCancelled := false

	for _, b := range bookings {
		if !b.OccupiesDate(date) {
			continue
		}
		switch b.Status {
		case StatusConfirmed:
			hasConfirmed = true
			day.Count++
		case StatusPending:
			hasPending = true
			day.Count++
		case StatusCancelled:
			hasCancelled = true
		}
	}

	switch {
	case hasConfirmed:
		day.Decoration = DecorationConfirmed
	case hasPending:
		day.Decoration = DecorationPending
	case hasCancelled:
		day.Decoration = DecorationCancelled
	}

	return day
}

// DecorateRange maps every date in [from, to] to its decoration.
// Dates outside the range and bookings of other venues are the caller's
// concern; the function only walks days.
func DecorateRange(from, to time.Time, bookings []*Booking) []CalendarDay {
	from = TruncateToDay(from)
	to = TruncateToDay(to)

	days := make([]CalendarDay, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, DecorateDay(d, bookings))
	}
	return days
}
