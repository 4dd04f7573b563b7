package check_slot

import (
	"time"

	"github.com/avetra/venue-booking-service/internal/domain"
)

// Причины недоступности слота в ответе проверки
const (
	// ReasonIncomplete площадка или дата еще не выбраны - проверять нечего,
	// форма не показывает ошибку
	ReasonIncomplete = "incomplete"

	// ReasonMissingTimeOfDay для полудневного бронирования не выбрана половина дня
	ReasonMissingTimeOfDay = "missing_time_of_day"

	// ReasonFullDayConflict дата занята целиком
	ReasonFullDayConflict = "full_day_conflict"

	// ReasonSlotTaken выбранная половина дня занята
	ReasonSlotTaken = "slot_taken"
)

// Request модель запроса на проверку доступности слота
// Повторяет слотовые поля формы бронирования; ExcludeBookingID передается
// при редактировании существующего бронирования
type Request struct {
	VenueID          int64
	Date             time.Time
	IsFullDay        bool
	TimeOfDay        *domain.TimeOfDay
	ExcludeBookingID *int64
}

// Response решение проверки доступности
// Недоступный слот - это не ошибка запроса: HTTP-ответ всегда 200,
// а решение лежит в теле
type Response struct {
	Available bool    `json:"available"`
	Reason    string  `json:"reason,omitempty"`          // одна из Reason*-констант
	Slot      *string `json:"conflictingSlot,omitempty"` // занятая половина дня при ReasonSlotTaken
}
