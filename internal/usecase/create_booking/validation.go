package create_booking

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.SlotIDs) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrInvalidInput)
	}

	for _, id := range req.SlotIDs {
		if id <= 0 {
			return fmt.Errorf("%w: slot id must be positive", ErrInvalidInput)
		}
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: service id must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// dedupeIDs убирает дубликаты идентификаторов, сохраняя порядок запроса
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	normalized := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		normalized = append(normalized, id)
	}
	return normalized
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня.
// Сравниваются календарные компоненты, а не моменты времени: дата запроса
// приходит в UTC, а now в зоне сервера, прямое Before их смешивает.
func isDateInPast(date, now time.Time) bool {
	dy, dm, dd := date.Date()
	ny, nm, nd := now.Date()
	if dy != ny {
		return dy < ny
	}
	if dm != nm {
		return dm < nm
	}
	return dd < nd
}
