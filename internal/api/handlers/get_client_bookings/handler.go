package get_client_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/courtbook/court-booking-service/internal/api/handlers"
	"github.com/courtbook/court-booking-service/internal/api/middleware"
	"github.com/courtbook/court-booking-service/internal/service/bookings"
	"github.com/courtbook/court-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgInvalidStatus   = "некорректный статус бронирования"
	msgMissingUserID   = "отсутствует ID клиента"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем clientId из URL
	vars := mux.Vars(r)
	clientIDStr := vars["clientId"]

	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{clientId}/bookings - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	// Получаем ID аутентифицированного клиента из контекста (через middleware Auth)
	authClientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /clients/{clientId}/bookings - Missing client ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Клиент может смотреть только свою историю
	if authClientID != clientID {
		h.logger.Warn("GET /clients/{clientId}/bookings - Access denied: client_id=%d, auth_client_id=%d",
			clientID, authClientID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	// includeInactive включает отменённые бронирования в выдачу
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	// Формируем запрос к сервису
	serviceReq := &models.GetClientBookingsRequest{
		ClientID:        clientID,
		Status:          statusPtr,
		IncludeInactive: includeInactive,
	}

	// Получаем бронирования клиента
	result, err := h.service.GetClientBookings(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /clients/{clientId}/bookings - Invalid status: client_id=%d, status=%s",
				clientID, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /clients/{clientId}/bookings - Failed to get bookings: client_id=%d, error=%v",
			clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/{clientId}/bookings - Bookings retrieved successfully: client_id=%d, count=%d",
		clientID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
