package create_booking

import "github.com/courtbook/court-booking-service/internal/domain"

// lightingRequired сообщает, обязательна ли услуга освещения для заявки:
// корт крытый либо хотя бы один запрошенный слот начинается в 18:00 или позже
// (по настенным часам корта)
func lightingRequired(court *domain.Court, slots []*domain.TimeSlot) bool {
	if court.Covered {
		return true
	}
	for _, slot := range slots {
		if slot.StartsAtOrAfter(domain.LightingForcedFromHour) {
			return true
		}
	}
	return false
}

// applyLightingPolicy возвращает итоговый набор дополнительных услуг после
// применения правила обязательного освещения.
//
// Исключение для сентинела "none": если у базовой услуги явный вид "none" И
// клиент вовсе не передавал список услуг, правило подавляется и бронирование
// проходит без принудительного освещения. Если же при базе "none" клиент
// передал явный (даже пустой) список, его намерение трактуется буквально и
// принудительное правило применяется к этому списку.
func applyLightingPolicy(
	court *domain.Court,
	services []*domain.CourtService,
	base *domain.CourtService,
	slots []*domain.TimeSlot,
	selected []int64,
	selectionProvided bool,
) []int64 {
	if !lightingRequired(court, slots) {
		return selected
	}

	if base.Kind == domain.ServiceKindNone && !selectionProvided {
		// Явная ветка подавления: база "none" без списка услуг
		return selected
	}

	lighting := findLightingService(services)
	if lighting == nil {
		return selected
	}

	for _, id := range selected {
		if id == lighting.ID {
			return selected
		}
	}

	return append(selected, lighting.ID)
}
