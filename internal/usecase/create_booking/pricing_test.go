package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courtbook/court-booking-service/internal/domain"
)

func TestCalculateTotal(t *testing.T) {
	base := &domain.CourtService{ID: 1, ServiceID: 100, Kind: domain.ServiceKindRental}
	lighting := &domain.CourtService{ID: 2, ServiceID: 101, Kind: domain.ServiceKindLighting, AdditionalPrice: 50}
	cleaning := &domain.CourtService{ID: 3, ServiceID: 6, Kind: domain.ServiceKindOther, AdditionalPrice: 200}

	noSingletons := map[int64]struct{}{}
	singletons := map[int64]struct{}{6: {}, 8: {}}

	t.Run("base rate times slots plus per-slot addon", func(t *testing.T) {
		// 2 слота по 200 + освещение 50 за каждый слот
		total := calculateTotal(200, 2, base, []*domain.CourtService{lighting}, noSingletons)
		assert.InDelta(t, 500.0, total, 1e-9)
	})

	t.Run("no addons", func(t *testing.T) {
		total := calculateTotal(150, 3, base, nil, noSingletons)
		assert.InDelta(t, 450.0, total, 1e-9)
	})

	t.Run("singleton addon charged once", func(t *testing.T) {
		total := calculateTotal(100, 3, base, []*domain.CourtService{cleaning}, singletons)
		assert.InDelta(t, 500.0, total, 1e-9)
	})

	t.Run("base duplicate in addons is skipped", func(t *testing.T) {
		total := calculateTotal(100, 2, base, []*domain.CourtService{base, lighting}, noSingletons)
		assert.InDelta(t, 300.0, total, 1e-9)
	})

	t.Run("mixed singleton and per-slot", func(t *testing.T) {
		total := calculateTotal(100, 2, base, []*domain.CourtService{lighting, cleaning}, singletons)
		// 200 аренда + 100 освещение (2 слота) + 200 уборка (разово)
		assert.InDelta(t, 500.0, total, 1e-9)
	})

	t.Run("zero rate court", func(t *testing.T) {
		total := calculateTotal(0, 2, base, []*domain.CourtService{lighting}, noSingletons)
		assert.InDelta(t, 100.0, total, 1e-9)
	})
}
