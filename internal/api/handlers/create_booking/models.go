package create_booking

import (
	"time"

	"github.com/courtbook/court-booking-service/internal/domain"
	createBooking "github.com/courtbook/court-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID int64   `json:"courtId"`
	Date    string  `json:"date"` // "2025-10-15"
	SlotIDs []int64 `json:"slotIds"`

	// ServiceIDs опциональный список дополнительных услуг. Отсутствие поля
	// и явный пустой список различаются: при базовой услуге "none" первое
	// подавляет принудительное освещение, второе нет.
	ServiceIDs []int64 `json:"serviceIds,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID       int64   `json:"id"`
	ClientID int64   `json:"clientId"`
	CourtID  int64   `json:"courtId"`
	Date     string  `json:"date"`
	SlotIDs  []int64 `json:"slotIds"`
	LineIDs  []int64 `json:"lineIds"`
	Total    float64 `json:"total"`
	Status   string  `json:"status"`

	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CourtID:    r.CourtID,
		ClientID:   clientID,
		Date:       date,
		SlotIDs:    r.SlotIDs,
		ServiceIDs: r.ServiceIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.BookingID,
		ClientID:  resp.ClientID,
		CourtID:   resp.CourtID,
		Date:      resp.Date.Format(domain.DateFormat),
		SlotIDs:   resp.SlotIDs,
		LineIDs:   resp.LineIDs,
		Total:     resp.Total,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
