package get_court_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/courtbook/court-booking-service/internal/api/handlers"
	"github.com/courtbook/court-booking-service/internal/domain"
	getAvailability "github.com/courtbook/court-booking-service/internal/usecase/get_court_availability"
)

const (
	msgInvalidCourtID       = "некорректный ID корта"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDate          = "отсутствует параметр date"
	msgCourtNotFound        = "корт не найден"
	msgNoServiceAssociation = "для корта не настроены услуги"
)

type Handler struct {
	useCase GetCourtAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetCourtAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем courtId из URL
	vars := mux.Vars(r)
	courtIDStr := vars["courtId"]

	courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{courtId}/availability - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// Извлекаем дату из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /courts/{courtId}/availability - Missing date parameter: court_id=%d", courtID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /courts/{courtId}/availability - Invalid date: court_id=%d, date=%s", courtID, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		CourtID: courtID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /courts/{courtId}/availability - Invalid input: court_id=%d", courtID)
			handlers.RespondBadRequest(w, msgInvalidCourtID)

		case errors.Is(err, getAvailability.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{courtId}/availability - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getAvailability.ErrNoServiceAssociation):
			h.logger.Warn("GET /courts/{courtId}/availability - No service association: court_id=%d", courtID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoServiceAssociation)

		default:
			h.logger.Error("GET /courts/{courtId}/availability - Failed to get availability: court_id=%d, error=%v",
				courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{courtId}/availability - Availability retrieved: court_id=%d, date=%s, slots=%d",
		courtID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
