package domain

import "errors"

// Slot the unit of venue-time allocation
type Slot string

const (
	SlotFullDay Slot = "full"
	SlotMorning Slot = "morning"
	SlotEvening Slot = "evening"
)

var (
	// ErrMissingTimeOfDay returned for a half-day booking without a
	// morning/evening choice. Such a record is a data error and is never
	// silently defaulted to morning.
	ErrMissingTimeOfDay = errors.New("domain: half-day booking requires time of day")
)

// OccupiedSlots maps a booking to the slots it occupies.
// A cancelled booking occupies nothing. A full-day booking occupies the
// full-day slot regardless of its TimeOfDay field. A half-day booking
// occupies exactly one of morning/evening.
func OccupiedSlots(b *Booking) ([]Slot, error) {
	if b.IsCancelled() {
		return nil, nil
	}

	if b.IsFullDay {
		return []Slot{SlotFullDay}, nil
	}

	if b.TimeOfDay == nil || !b.TimeOfDay.IsValid() {
		return nil, ErrMissingTimeOfDay
	}

	switch *b.TimeOfDay {
	case TimeMorning:
		return []Slot{SlotMorning}, nil
	default:
		return []Slot{SlotEvening}, nil
	}
}
