package create_booking

import (
	"context"
	"time"

	"github.com/courtbook/court-booking-service/internal/domain"
	"github.com/courtbook/court-booking-service/internal/integrations/clientservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CreateLines(ctx context.Context, lines []*domain.BookingLine) ([]*domain.BookingLine, error)
	HasLineForSlot(ctx context.Context, courtServiceID, slotID int64, date time.Time) (bool, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	ListServices(ctx context.Context, courtID int64) ([]*domain.CourtService, error)
}

// SlotRepository интерфейс репозитория каталога слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

// ClientServiceClient интерфейс клиента для ClientService
type ClientServiceClient interface {
	GetClient(ctx context.Context, clientID int64) (*clientservice.Client, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
