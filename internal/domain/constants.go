package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinGuestCount               = 1
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// MaxHalfDayPerSlot capacity of a single morning/evening slot.
// Some historical call sites allowed 2 bookings per slot; the canonical
// rule is 1. Changing this value is a product decision, not a bug fix.
const MaxHalfDayPerSlot = 1

// ActiveStatuses statuses that occupy a slot.
// Used when filtering bookings for availability computations.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses statuses that never occupy a slot.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
