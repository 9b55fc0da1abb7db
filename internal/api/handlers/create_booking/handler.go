package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/courtbook/court-booking-service/internal/api/handlers"
	"github.com/courtbook/court-booking-service/internal/api/middleware"
	createBooking "github.com/courtbook/court-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidInput         = "некорректные параметры бронирования"
	msgPastDate             = "дата бронирования уже прошла"
	msgMissingUserID        = "отсутствует ID клиента"
	msgCourtNotFound        = "корт не найден"
	msgClientNotFound       = "клиент не найден"
	msgSlotNotFound         = "временной слот не найден"
	msgNoServiceAssociation = "для корта не настроены услуги"
	msgForeignService       = "услуга не принадлежит выбранному корту"
	msgPermissionDenied     = "клиенту запрещено бронирование"
	msgSlotTaken            = "слот %d уже забронирован на выбранную дату"
	msgBusy                 = "корт сейчас бронируется другим клиентом, повторите запрос"

	// retryAfterSeconds рекомендованная пауза перед повтором при конфликте
	retryAfterSeconds = 1
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем clientID из контекста (через middleware Auth)
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing client ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		var slotTaken *createBooking.SlotTakenError
		switch {
		case errors.As(err, &slotTaken):
			h.logger.Warn("POST /bookings - Slot already booked: client_id=%d, court_id=%d, slot_id=%d",
				clientID, req.CourtID, slotTaken.SlotID)
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf(msgSlotTaken, slotTaken.SlotID))

		case errors.Is(err, createBooking.ErrBusy):
			h.logger.Warn("POST /bookings - Court busy: client_id=%d, court_id=%d", clientID, req.CourtID)
			handlers.RespondServiceUnavailable(w, msgBusy, retryAfterSeconds)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: client_id=%d, court_id=%d", clientID, req.CourtID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrPastDate):
			h.logger.Warn("POST /bookings - Past date: client_id=%d, date=%s", clientID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: client_id=%d, court_id=%d", clientID, req.CourtID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrNoServiceAssociation):
			h.logger.Warn("POST /bookings - No service association: court_id=%d", req.CourtID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoServiceAssociation)

		case errors.Is(err, createBooking.ErrForeignService):
			h.logger.Warn("POST /bookings - Foreign service: client_id=%d, court_id=%d, services=%v",
				clientID, req.CourtID, req.ServiceIDs)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgForeignService)

		case errors.Is(err, createBooking.ErrPermissionDenied):
			h.logger.Warn("POST /bookings - Permission denied: client_id=%d", clientID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, court_id=%d, error=%v",
				clientID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%d, court_id=%d, total=%.2f",
		result.BookingID, clientID, req.CourtID, result.Total)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
