package get_court_availability

import "time"

// Request модель запроса доступности корта на дату
type Request struct {
	CourtID int64     // ID корта
	Date    time.Time // Дата (без времени)
}

// SlotAvailability один слот каталога с признаком доступности
type SlotAvailability struct {
	SlotID    int64  // ID слота
	StartTime string // Время начала в формате HH:MM
	EndTime   string // Время конца в формате HH:MM
	Available bool   // Свободен ли слот на запрошенную дату
}

// Response модель ответа с доступностью всех слотов корта
type Response struct {
	CourtID    int64              // ID корта
	CourtName  string             // Название корта
	HourlyRate float64            // Базовая ставка за слот
	Date       time.Time          // Запрошенная дата
	Slots      []SlotAvailability // Все слоты каталога по возрастанию времени
}
