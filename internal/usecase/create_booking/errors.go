package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (пустой список слотов, нулевые идентификаторы и т.п.)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPastDate возвращается, когда дата бронирования раньше сегодняшней
	ErrPastDate = errors.New("create_booking: reserved date is in the past")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrPermissionDenied возвращается, когда у клиента нет права бронировать
	ErrPermissionDenied = errors.New("create_booking: client is not allowed to book")

	// ErrSlotNotFound возвращается, когда запрошенный временной слот не существует
	ErrSlotNotFound = errors.New("create_booking: time slot not found")

	// ErrNoServiceAssociation возвращается, когда у корта нет ни одной услуги
	ErrNoServiceAssociation = errors.New("create_booking: court has no service associations")

	// ErrForeignService возвращается, когда выбранная услуга не принадлежит корту
	ErrForeignService = errors.New("create_booking: service does not belong to the court")

	// ErrSlotTaken возвращается, когда хотя бы один из запрошенных слотов занят.
	// Конкретный слот доступен через SlotTakenError (errors.As).
	ErrSlotTaken = errors.New("create_booking: slot already booked")

	// ErrBusy возвращается при конфликте блокировок или сериализации.
	// Единственная ошибка, которую вызывающая сторона может повторить.
	ErrBusy = errors.New("create_booking: resource is busy, retry later")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SlotTakenError ошибка занятого слота; несёт ID конфликтующего слота,
// чтобы вызывающая сторона могла предложить альтернативы
type SlotTakenError struct {
	SlotID int64
}

// Error реализует интерфейс error
func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("create_booking: slot %d already booked", e.SlotID)
}

// Is делает SlotTakenError совместимой с errors.Is(err, ErrSlotTaken)
func (e *SlotTakenError) Is(target error) bool {
	return target == ErrSlotTaken
}
