package domain

import "time"

// DayAvailability derived slot occupancy for one venue and one calendar
// date. Ephemeral: recomputed from the latest booking set on every lookup,
// never stored.
type DayAvailability struct {
	VenueID int64
	Date    time.Time

	FullDayAvailable bool
	MorningAvailable bool
	EveningAvailable bool

	// Occupying bookings per slot, for UI display
	FullDayBookings []*Booking
	MorningBookings []*Booking
	EveningBookings []*Booking

	// Half-day bookings with no time of day - data errors surfaced to the
	// caller instead of being silently treated as free
	Malformed []*Booking
}

// HasFullDay returns true if a full-day booking locks the entire date
func (a *DayAvailability) HasFullDay() bool {
	return len(a.FullDayBookings) > 0
}

// OccupyingCount number of non-cancelled bookings touching the date
func (a *DayAvailability) OccupyingCount() int {
	return len(a.FullDayBookings) + len(a.MorningBookings) + len(a.EveningBookings) + len(a.Malformed)
}

// ComputeDayAvailability reduces a booking set to slot occupancy for one
// venue and date. Pure: same inputs always yield the same output.
//
// Rules:
//   - only bookings of the venue, on the date, not cancelled, count;
//   - any full-day booking locks all three slots;
//   - otherwise each of morning/evening has capacity exactly
//     MaxHalfDayPerSlot (= 1), and the full day is available only while
//     both half-day slots are empty.
func ComputeDayAvailability(venueID int64, date time.Time, bookings []*Booking) DayAvailability {
	result := DayAvailability{
		VenueID: venueID,
		Date:    TruncateToDay(date),
	}

	for _, b := range bookings {
		if b.VenueID != venueID || !b.OccupiesDate(date) || !b.IsActive() {
			continue
		}

		slots, err := OccupiedSlots(b)
		if err != nil {
			result.Malformed = append(result.Malformed, b)
			continue
		}

		for _, slot := range slots {
			switch slot {
			case SlotFullDay:
				result.FullDayBookings = append(result.FullDayBookings, b)
			case SlotMorning:
				result.MorningBookings = append(result.MorningBookings, b)
			case SlotEvening:
				result.EveningBookings = append(result.EveningBookings, b)
			}
		}
	}

	if result.HasFullDay() {
		return result
	}

	result.MorningAvailable = len(result.MorningBookings) < MaxHalfDayPerSlot
	result.EveningAvailable = len(result.EveningBookings) < MaxHalfDayPerSlot
	result.FullDayAvailable = len(result.MorningBookings) == 0 &&
		len(result.EveningBookings) == 0 &&
		len(result.Malformed) == 0

	return result
}
