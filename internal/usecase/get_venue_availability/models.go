package get_venue_availability

import (
	"time"

	"github.com/avetra/venue-booking-service/internal/domain"
)

// Request модель запроса доступности площадки на дату
type Request struct {
	VenueID int64
	Date    time.Time
}

// SlotInfo занятость одного слота
type SlotInfo struct {
	Available bool             `json:"available"`
	Bookings  []BookingSummary `json:"bookings"`
}

// BookingSummary краткие данные занимающего слот бронирования
type BookingSummary struct {
	ID        int64  `json:"id"`
	EventName string `json:"eventName"`
	EventType string `json:"eventType"`
	Status    string `json:"status"`
}

// Response доступность площадки на дату по всем трем слотам
type Response struct {
	VenueID int64     `json:"venueId"`
	Date    time.Time `json:"date"`

	FullDay SlotInfo `json:"fullDay"`
	Morning SlotInfo `json:"morning"`
	Evening SlotInfo `json:"evening"`

	// Полудневные записи без указания половины дня: ошибка данных,
	// которую админка показывает вместо того, чтобы считать слот свободным
	Malformed []BookingSummary `json:"malformed,omitempty"`
}

// toResponse строит ответ из доменной доступности
func toResponse(avail domain.DayAvailability) *Response {
	return &Response{
		VenueID: avail.VenueID,
		Date:    avail.Date,
		FullDay: SlotInfo{
			Available: avail.FullDayAvailable,
			Bookings:  toSummaries(avail.FullDayBookings),
		},
		Morning: SlotInfo{
			Available: avail.MorningAvailable,
			Bookings:  toSummaries(avail.MorningBookings),
		},
		Evening: SlotInfo{
			Available: avail.EveningAvailable,
			Bookings:  toSummaries(avail.EveningBookings),
		},
		Malformed: toSummaries(avail.Malformed),
	}
}

func toSummaries(bookings []*domain.Booking) []BookingSummary {
	summaries := make([]BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		summaries = append(summaries, BookingSummary{
			ID:        b.ID,
			EventName: b.EventName,
			EventType: string(b.EventType),
			Status:    string(b.Status),
		})
	}
	return summaries
}
