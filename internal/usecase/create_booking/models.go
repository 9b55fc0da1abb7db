package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CourtID  int64     // ID корта
	ClientID int64     // ID клиента
	Date     time.Time // Дата бронирования (без времени), сегодня или позже
	SlotIDs  []int64   // Запрошенные слоты, хотя бы один

	// ServiceIDs выбранные клиентом дополнительные услуги (ID связок
	// корт-услуга). nil означает, что список не передавался вовсе;
	// пустой ненулевой срез означает, что клиент явно передал пустой список.
	// Различие существенно для правила обязательного освещения.
	ServiceIDs []int64
}

// serviceListProvided сообщает, передал ли клиент список услуг явно
func (r *Request) serviceListProvided() bool {
	return r.ServiceIDs != nil
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID int64     // ID созданного бронирования
	ClientID  int64     // ID клиента
	CourtID   int64     // ID корта
	Date      time.Time // Дата бронирования
	SlotIDs   []int64   // Забронированные слоты (после нормализации)
	LineIDs   []int64   // ID созданных строк бронирования
	Total     float64   // Итоговая сумма, вычисленная один раз при создании
	Status    string    // Статус бронирования
	CreatedAt time.Time // Время создания
}
