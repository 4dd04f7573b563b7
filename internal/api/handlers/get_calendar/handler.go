package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avetra/venue-booking-service/internal/api/handlers"
	"github.com/avetra/venue-booking-service/internal/domain"
	getCalendar "github.com/avetra/venue-booking-service/internal/usecase/get_calendar"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRangeRequired  = "необходимо указать параметры from и to"
	msgInvalidRange   = "некорректный период: from должен быть не позже to, период не длиннее года"
	msgVenueNotFound  = "площадка не найдена"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	query := r.URL.Query()
	rawFrom := query.Get("from")
	rawTo := query.Get("to")
	if rawFrom == "" || rawTo == "" {
		handlers.RespondBadRequest(w, msgRangeRequired)
		return
	}

	from, err := time.Parse(domain.DateFormat, rawFrom)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := time.Parse(domain.DateFormat, rawTo)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		VenueID: venueID,
		From:    from,
		To:      to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrVenueNotFound):
			h.logger.Warn("GET /venues/%d/calendar - Venue not found", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getCalendar.ErrInvalidRange):
			h.logger.Warn("GET /venues/%d/calendar - Invalid range: from=%s, to=%s", venueID, rawFrom, rawTo)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /venues/%d/calendar - Invalid input: %v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /venues/%d/calendar - Failed to build calendar: %v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
