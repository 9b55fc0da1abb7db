package get_court_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtbook/court-booking-service/internal/domain"
	courtRepo "github.com/courtbook/court-booking-service/internal/infra/storage/court"
)

// UseCase use case получения доступности корта: каталог слотов с отметкой,
// какие из них уже заняты на запрошенную дату
type UseCase struct {
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	slotRepo    SlotRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	slotRepo SlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		slotRepo:    slotRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступности.
// Снимок консистентен на момент чтения; блокировки не берутся, поэтому
// к моменту бронирования слот может быть уже занят; создание бронирования
// перепроверяет конфликт под блокировкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCourtAvailability: court=%d, date=%s",
		req.CourtID, req.Date.Format(domain.DateFormat))

	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetCourtAvailability: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetCourtAvailability: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	services, err := uc.courtRepo.ListServices(ctx, req.CourtID)
	if err != nil {
		uc.logger.Error("GetCourtAvailability: failed to list services for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to list court services: %v", ErrInternal, err)
	}

	// Занятость учитывается по базовой услуге корта: именно по ней
	// создание бронирования проверяет конфликты
	base := domain.ResolveBaseService(services)
	if base == nil {
		uc.logger.Warn("GetCourtAvailability: court id=%d has no service associations", req.CourtID)
		return nil, ErrNoServiceAssociation
	}

	slots, err := uc.slotRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("GetCourtAvailability: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	bookedIDs, err := uc.bookingRepo.ListBookedSlotIDs(ctx, base.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetCourtAvailability: failed to list booked slots for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to list booked slots: %v", ErrInternal, err)
	}

	booked := make(map[int64]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	result := &Response{
		CourtID:    court.ID,
		CourtName:  court.Name,
		HourlyRate: court.HourlyRate,
		Date:       req.Date,
		Slots:      make([]SlotAvailability, 0, len(slots)),
	}
	for _, slot := range slots {
		_, taken := booked[slot.ID]
		result.Slots = append(result.Slots, SlotAvailability{
			SlotID:    slot.ID,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: !taken,
		})
	}

	uc.logger.Info("GetCourtAvailability: court=%d, date=%s, slots=%d, booked=%d",
		req.CourtID, req.Date.Format(domain.DateFormat), len(result.Slots), len(bookedIDs))

	return result, nil
}
