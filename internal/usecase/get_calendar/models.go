package get_calendar

import (
	"time"

	"github.com/avetra/venue-booking-service/internal/domain"
)

// MaxRangeDays максимальная длина запрашиваемого периода
// Календарь админки показывает месяц; год покрывает любой разумный запрос
const MaxRangeDays = 366

// Request модель запроса календарной раскраски за период
type Request struct {
	VenueID int64
	From    time.Time
	To      time.Time
}

// Day раскраска одного дня календаря
type Day struct {
	Date       time.Time `json:"date"`
	Decoration string    `json:"decoration"` // none | pending | confirmed | cancelled
	Count      int       `json:"count"`      // количество активных бронирований (бейдж)
}

// Response календарная раскраска за период, по дню на элемент
type Response struct {
	VenueID int64 `json:"venueId"`
	Days    []Day `json:"days"`
}

// toResponse строит ответ из доменной раскраски
func toResponse(venueID int64, days []domain.CalendarDay) *Response {
	result := make([]Day, 0, len(days))
	for _, d := range days {
		result = append(result, Day{
			Date:       d.Date,
			Decoration: string(d.Decoration),
			Count:      d.Count,
		})
	}
	return &Response{VenueID: venueID, Days: result}
}
