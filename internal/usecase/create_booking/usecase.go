package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtbook/court-booking-service/internal/domain"
	courtRepo "github.com/courtbook/court-booking-service/internal/infra/storage/court"
	slotRepo "github.com/courtbook/court-booking-service/internal/infra/storage/slot"
	clientClient "github.com/courtbook/court-booking-service/internal/integrations/clientservice"
	"github.com/courtbook/court-booking-service/pkg/txmanager"
)

// UseCase use case создания бронирования: валидация, разрешение базовой
// услуги, политика обязательного освещения, проверка конфликтов слотов,
// расчет стоимости и атомарное сохранение всего агрегата
type UseCase struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	slotRepo     SlotRepository
	clientClient ClientServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	singletonIDs map[int64]struct{}
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// singletonServiceIDs задает услуги, тарифицируемые один раз на бронирование
// (из конфигурации).
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	slotRepo SlotRepository,
	clientClient ClientServiceClient,
	txManager TransactionManager,
	singletonServiceIDs []int64,
	logger Logger,
) *UseCase {
	singletonIDs := make(map[int64]struct{}, len(singletonServiceIDs))
	for _, id := range singletonServiceIDs {
		singletonIDs[id] = struct{}{}
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		slotRepo:     slotRepo,
		clientClient: clientClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		singletonIDs: singletonIDs,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликтов и запись выполняются в одной сериализуемой транзакции
// с блокировкой строк услуг корта: из двух конкурирующих заявок на один
// (базовая услуга, слот, дата) не более одной проходит проверку и коммитится,
// вторая получает ErrSlotTaken либо ErrBusy.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, court=%d, date=%s, slots=%v, services=%v",
		req.ClientID, req.CourtID, req.Date.Format(domain.DateFormat), req.SlotIDs, req.ServiceIDs)

	// 1. Валидация входных данных и нормализация списка слотов
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}
	slotIDs := dedupeIDs(req.SlotIDs)

	// 2. Дата не может быть раньше сегодняшней
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: past date %s rejected for client=%d",
			req.Date.Format(domain.DateFormat), req.ClientID)
		return nil, ErrPastDate
	}

	// 3. Клиент должен существовать и иметь право бронировать
	client, err := uc.clientClient.GetClient(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientClient.ErrClientNotFound) {
			uc.logger.Warn("CreateBooking: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateBooking: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}
	if !client.CanBook {
		uc.logger.Warn("CreateBooking: client id=%d is not allowed to book", req.ClientID)
		return nil, ErrPermissionDenied
	}

	// Переменная для хранения результата
	var result *Response

	// 4. Критическая секция: проверка конфликтов и запись агрегата в одной
	// сериализуемой транзакции, без точек приостановки между захватом
	// блокировки и коммитом
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Корт
		court, err := uc.courtRepo.GetByID(txCtx, req.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
				return ErrCourtNotFound
			}
			uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
			return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}

		// 4.2. Услуги корта с write-intent блокировкой (FOR UPDATE NOWAIT).
		// Отказ в блокировке превращается в ErrBusy: заявка не ждёт, а
		// быстро завершается, чтобы вызывающая сторона могла повторить.
		services, err := uc.courtRepo.ListServices(txCtx, req.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrLockNotAvailable) {
				uc.logger.Warn("CreateBooking: court id=%d services locked by another booking", req.CourtID)
				return ErrBusy
			}
			uc.logger.Error("CreateBooking: failed to list services for court id=%d: %v", req.CourtID, err)
			return fmt.Errorf("%w: failed to list court services: %v", ErrInternal, err)
		}

		// 4.3. Базовая услуга и проверка принадлежности выбранных услуг
		base, err := resolveBaseService(services)
		if err != nil {
			uc.logger.Warn("CreateBooking: court id=%d has no service associations", req.CourtID)
			return err
		}

		for _, serviceID := range req.ServiceIDs {
			if findServiceByID(services, serviceID) == nil {
				uc.logger.Warn("CreateBooking: service id=%d does not belong to court id=%d",
					serviceID, req.CourtID)
				return fmt.Errorf("%w: service id=%d", ErrForeignService, serviceID)
			}
		}

		// 4.4. Запрошенные слоты должны существовать в каталоге
		slots := make([]*domain.TimeSlot, 0, len(slotIDs))
		for _, slotID := range slotIDs {
			slot, err := uc.slotRepo.GetByID(txCtx, slotID)
			if err != nil {
				if errors.Is(err, slotRepo.ErrSlotNotFound) {
					uc.logger.Warn("CreateBooking: slot id=%d not found", slotID)
					return fmt.Errorf("%w: slot id=%d", ErrSlotNotFound, slotID)
				}
				uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", slotID, err)
				return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
			}
			slots = append(slots, slot)
		}

		// 4.5. Правило обязательного освещения
		selected := dedupeIDs(req.ServiceIDs)
		finalServiceIDs := applyLightingPolicy(
			court, services, base, slots, selected, req.serviceListProvided(),
		)
		if len(finalServiceIDs) != len(selected) {
			uc.logger.Info("CreateBooking: lighting add-on forced for court id=%d", req.CourtID)
		}

		// 4.6. Проверка конфликтов: любой занятый слот отклоняет заявку целиком
		for _, slot := range slots {
			taken, err := uc.bookingRepo.HasLineForSlot(txCtx, base.ID, slot.ID, req.Date)
			if err != nil {
				uc.logger.Error("CreateBooking: conflict check failed for slot id=%d: %v", slot.ID, err)
				return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
			}
			if taken {
				uc.logger.Warn("CreateBooking: slot id=%d already booked for court id=%d on %s",
					slot.ID, req.CourtID, req.Date.Format(domain.DateFormat))
				return &SlotTakenError{SlotID: slot.ID}
			}
		}

		// 4.7. Итоговая стоимость, вычисляется один раз
		addons := make([]*domain.CourtService, 0, len(finalServiceIDs))
		for _, serviceID := range finalServiceIDs {
			if svc := findServiceByID(services, serviceID); svc != nil {
				addons = append(addons, svc)
			}
		}
		total := calculateTotal(court.HourlyRate, len(slotIDs), base, addons, uc.singletonIDs)

		// 4.8. Сохраняем бронирование и все строки как единое целое
		booking, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			ClientID:     req.ClientID,
			ReservedDate: req.Date,
			Total:        total,
			Status:       domain.StatusConfirmed,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// Одна строка на (слот, базовая услуга) плюс по строке на каждую
		// выбранную или принудительно добавленную услугу на каждом слоте
		lines := make([]*domain.BookingLine, 0, len(slots)*(1+len(addons)))
		for _, slot := range slots {
			lines = append(lines, &domain.BookingLine{
				BookingID:      booking.ID,
				CourtServiceID: base.ID,
				SlotID:         slot.ID,
				ReservedDate:   req.Date,
			})
			for _, addon := range addons {
				if addon.ID == base.ID {
					continue
				}
				lines = append(lines, &domain.BookingLine{
					BookingID:      booking.ID,
					CourtServiceID: addon.ID,
					SlotID:         slot.ID,
					ReservedDate:   req.Date,
				})
			}
		}

		created, err := uc.bookingRepo.CreateLines(txCtx, lines)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking lines: %v", err)
			return fmt.Errorf("%w: failed to create booking lines: %v", ErrInternal, err)
		}

		lineIDs := make([]int64, len(created))
		for i, line := range created {
			lineIDs[i] = line.ID
		}

		result = &Response{
			BookingID: booking.ID,
			ClientID:  booking.ClientID,
			CourtID:   req.CourtID,
			Date:      booking.ReservedDate,
			SlotIDs:   slotIDs,
			LineIDs:   lineIDs,
			Total:     booking.Total,
			Status:    string(booking.Status),
			CreatedAt: booking.CreatedAt,
		}
		return nil
	})

	if err != nil {
		// Конфликт сериализации на коммите равнозначен отказу в блокировке
		if errors.Is(err, txmanager.ErrRetryable) {
			uc.logger.Warn("CreateBooking: transaction conflict for court=%d, client=%d: %v",
				req.CourtID, req.ClientID, err)
			return nil, ErrBusy
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f, lines=%d",
		result.BookingID, result.Total, len(result.LineIDs))

	return result, nil
}
