package domain

import (
	"time"

	"github.com/avetra/venue-booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// TimeOfDay half-day slot selector
type TimeOfDay string

const (
	TimeMorning TimeOfDay = "morning"
	TimeEvening TimeOfDay = "evening"
)

// IsValid returns true for a known time-of-day value
func (t TimeOfDay) IsValid() bool {
	return t == TimeMorning || t == TimeEvening
}

// EventType well-known event types; free-form values are allowed too
type EventType string

const (
	EventWedding    EventType = "wedding"
	EventCorporate  EventType = "corporate"
	EventBirthday   EventType = "birthday"
	EventConference EventType = "conference"
	EventOther      EventType = "other"
)

// Booking represents a venue reservation in the system
type Booking struct {
	ID        int64
	VenueID   int64
	ClientID  *int64 // nil for wedding bookings identified by ClientName
	EventName string
	EventType EventType

	Date      time.Time // day-truncated venue-local date
	StartTime types.TimeString
	EndTime   types.TimeString
	IsFullDay bool
	TimeOfDay *TimeOfDay // required iff !IsFullDay

	GuestCount    int
	TotalAmount   float64
	DepositAmount float64
	DepositPaid   bool
	Status        BookingStatus
	Notes         *string

	// Wedding bookings carry client details inline instead of a client row
	ClientName *string
	BrideName  *string
	GroomName  *string
	Phone      *string
	Address    *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking can still be edited
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// OccupiesDate returns true if the booking sits on the given calendar day
func (b *Booking) OccupiesDate(date time.Time) bool {
	return SameDay(b.Date, date)
}

// IsWedding returns true for wedding bookings
func (b *Booking) IsWedding() bool {
	return b.EventType == EventWedding
}

// VenueBookingsFilter фильтр для выборки бронирований
type VenueBookingsFilter struct {
	VenueID          *int64         // nil - все площадки
	StartDate        *time.Time     // начало периода (включительно)
	EndDate          *time.Time     // конец периода (включительно)
	Status           *BookingStatus // конкретный статус
	IncludeCancelled bool           // включать ли отмененные
}

// TruncateToDay drops the time-of-day component, keeping the location
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay returns true if both timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
