package models

import (
	"errors"
	"time"

	"github.com/courtbook/court-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	ClientID           int64  `json:"clientId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetClientBookingsRequest запрос на получение бронирований клиента
type GetClientBookingsRequest struct {
	ClientID        int64   `json:"clientId"`
	Status          *string `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool    `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetClientBookingsRequest) ToDomainFilter() (domain.ClientBookingsFilter, error) {
	filter := domain.ClientBookingsFilter{
		ClientID:        r.ClientID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingLineResponse одна строка бронирования (слот + услуга корта)
type BookingLineResponse struct {
	ID             int64 `json:"id"`
	CourtServiceID int64 `json:"courtServiceId"`
	SlotID         int64 `json:"slotId"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                 int64                 `json:"id"`
	ClientID           int64                 `json:"clientId"`
	ReservedDate       string                `json:"reservedDate"`
	Total              float64               `json:"total"`
	Status             string                `json:"status"`
	Lines              []BookingLineResponse `json:"lines"`
	CancellationReason *string               `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time            `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// Конвертеры

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	lines := make([]BookingLineResponse, 0, len(b.Lines))
	for _, line := range b.Lines {
		lines = append(lines, BookingLineResponse{
			ID:             line.ID,
			CourtServiceID: line.CourtServiceID,
			SlotID:         line.SlotID,
		})
	}

	return &BookingResponse{
		ID:                 b.ID,
		ClientID:           b.ClientID,
		ReservedDate:       b.ReservedDate.Format(domain.DateFormat),
		Total:              b.Total,
		Status:             string(b.Status),
		Lines:              lines,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking в BookingListResponse
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBooking(b))
	}
	return result
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusPending:
		return domain.StatusPending, nil
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusCancelled:
		return domain.StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}
