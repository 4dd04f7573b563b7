package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrIncompleteRequest returned when the candidate has no venue or no
	// date yet. The request is "not validatable yet", not invalid; callers
	// show no error for it.
	ErrIncompleteRequest = errors.New("domain: slot request has no venue or date yet")

	// ErrFullDayConflict returned when the date cannot take the request as
	// a whole: a full-day request against any occupied slot, or any request
	// against a date locked by a full-day booking.
	ErrFullDayConflict = errors.New("domain: date is already booked for this venue")

	// ErrTimeSlotTaken returned when the requested half-day slot is
	// occupied; wrapped with the slot name.
	ErrTimeSlotTaken = errors.New("domain: time slot is already booked")
)

// SlotRequest a candidate reservation to validate; never persisted
type SlotRequest struct {
	VenueID   int64
	Date      time.Time
	IsFullDay bool
	TimeOfDay *TimeOfDay

	// On edit, the booking's own prior row must not conflict with itself
	ExcludeBookingID *int64
}

// ValidateSlotRequest decides whether a candidate booking may be placed
// against the given booking set. The same function backs both the
// interactive form check and the final pre-persist check inside the
// write transaction; only the moment of surfacing differs.
//
// Returns nil on acceptance, otherwise one of ErrIncompleteRequest,
// ErrMissingTimeOfDay, ErrFullDayConflict, ErrTimeSlotTaken.
func ValidateSlotRequest(req SlotRequest, bookings []*Booking) error {
	if req.VenueID == 0 || req.Date.IsZero() {
		return ErrIncompleteRequest
	}

	if !req.IsFullDay && (req.TimeOfDay == nil || !req.TimeOfDay.IsValid()) {
		return ErrMissingTimeOfDay
	}

	avail := ComputeDayAvailability(req.VenueID, req.Date, excludeBooking(bookings, req.ExcludeBookingID))

	// A date locked by a full-day booking rejects everything as "day is
	// fully booked", including half-day requests - reporting the requested
	// slot alone would understate the conflict.
	if avail.HasFullDay() {
		return ErrFullDayConflict
	}

	if req.IsFullDay {
		if !avail.FullDayAvailable {
			return ErrFullDayConflict
		}
		return nil
	}

	switch *req.TimeOfDay {
	case TimeMorning:
		if !avail.MorningAvailable {
			return fmt.Errorf("%w: %s", ErrTimeSlotTaken, TimeMorning)
		}
	case TimeEvening:
		if !avail.EveningAvailable {
			return fmt.Errorf("%w: %s", ErrTimeSlotTaken, TimeEvening)
		}
	}

	return nil
}

// ConflictingSlot extracts the slot name from an ErrTimeSlotTaken error
func ConflictingSlot(err error) (TimeOfDay, bool) {
	if !errors.Is(err, ErrTimeSlotTaken) {
		return "", false
	}
	if strings.HasSuffix(err.Error(), string(TimeMorning)) {
		return TimeMorning, true
	}
	return TimeEvening, true
}

func excludeBooking(bookings []*Booking, excludeID *int64) []*Booking {
	if excludeID == nil {
		return bookings
	}
	filtered := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID == *excludeID {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}
