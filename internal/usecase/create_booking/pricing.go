package create_booking

import "github.com/courtbook/court-booking-service/internal/domain"

// calculateTotal вычисляет итоговую стоимость бронирования:
//
//	total = базовая ставка * число слотов
//	      + сумма доплат за выбранные услуги (кроме базовой),
//
// где "разовые" услуги (singleton) тарифицируются один раз на бронирование,
// а остальные тарифицируются за каждый запрошенный слот. Результат детерминирован и
// сохраняется один раз при создании, без последующего пересчёта.
func calculateTotal(
	baseRate float64,
	numSlots int,
	base *domain.CourtService,
	addons []*domain.CourtService,
	singletonServiceIDs map[int64]struct{},
) float64 {
	total := baseRate * float64(numSlots)

	for _, addon := range addons {
		if addon.ID == base.ID {
			// Базовая услуга уже учтена ставкой, клиентский дубль пропускаем
			continue
		}
		if _, ok := singletonServiceIDs[addon.ServiceID]; ok {
			total += addon.AdditionalPrice
		} else {
			total += addon.AdditionalPrice * float64(numSlots)
		}
	}

	return total
}
