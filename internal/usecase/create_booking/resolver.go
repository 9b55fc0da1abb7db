package create_booking

import "github.com/courtbook/court-booking-service/internal/domain"

// resolveBaseService выбирает базовую услугу корта (арендную плату) среди
// всех его услуг по эвристике domain.ResolveBaseService. Корт без единой
// услуги забронировать нельзя.
func resolveBaseService(services []*domain.CourtService) (*domain.CourtService, error) {
	base := domain.ResolveBaseService(services)
	if base == nil {
		return nil, ErrNoServiceAssociation
	}
	return base, nil
}

// findServiceByID ищет услугу корта по ID связки; nil, если не найдена.
// Используется для проверки, что выбранные клиентом услуги принадлежат корту.
func findServiceByID(services []*domain.CourtService, id int64) *domain.CourtService {
	for _, svc := range services {
		if svc.ID == id {
			return svc
		}
	}
	return nil
}

// findLightingService ищет услугу освещения среди услуг корта; nil, если её нет
func findLightingService(services []*domain.CourtService) *domain.CourtService {
	for _, svc := range services {
		if svc.Kind == domain.ServiceKindLighting {
			return svc
		}
	}
	return nil
}
