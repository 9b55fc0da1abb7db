package get_court_availability

import (
	"context"
	"time"

	"github.com/courtbook/court-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListBookedSlotIDs(ctx context.Context, courtServiceID int64, date time.Time) ([]int64, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	ListServices(ctx context.Context, courtID int64) ([]*domain.CourtService, error)
}

// SlotRepository интерфейс репозитория каталога слотов
type SlotRepository interface {
	ListAll(ctx context.Context) ([]*domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
