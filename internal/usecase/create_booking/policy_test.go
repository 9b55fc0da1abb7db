package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courtbook/court-booking-service/internal/domain"
	"github.com/courtbook/court-booking-service/pkg/types"
)

func slot(id int64, start string) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:        id,
		StartTime: types.TimeString(start),
	}
}

func TestLightingRequired(t *testing.T) {
	open := &domain.Court{Covered: false}
	covered := &domain.Court{Covered: true}

	t.Run("covered court always requires lighting", func(t *testing.T) {
		assert.True(t, lightingRequired(covered, []*domain.TimeSlot{slot(1, "10:00")}))
	})

	t.Run("evening slot requires lighting", func(t *testing.T) {
		slots := []*domain.TimeSlot{slot(1, "10:00"), slot(2, "18:00")}
		assert.True(t, lightingRequired(open, slots))
	})

	t.Run("late evening slot requires lighting", func(t *testing.T) {
		assert.True(t, lightingRequired(open, []*domain.TimeSlot{slot(1, "21:00")}))
	})

	t.Run("daytime open court does not", func(t *testing.T) {
		slots := []*domain.TimeSlot{slot(1, "10:00"), slot(2, "17:00")}
		assert.False(t, lightingRequired(open, slots))
	})
}

func TestApplyLightingPolicy(t *testing.T) {
	lighting := &domain.CourtService{ID: 30, Kind: domain.ServiceKindLighting, AdditionalPrice: 100}
	rental := &domain.CourtService{ID: 10, Kind: domain.ServiceKindRental}
	noneBase := &domain.CourtService{ID: 20, Kind: domain.ServiceKindNone}
	services := []*domain.CourtService{rental, noneBase, lighting}

	covered := &domain.Court{Covered: true}
	open := &domain.Court{Covered: false}
	daySlots := []*domain.TimeSlot{slot(1, "10:00")}
	eveningSlots := []*domain.TimeSlot{slot(1, "19:00")}

	t.Run("lighting forced on covered court", func(t *testing.T) {
		result := applyLightingPolicy(covered, services, rental, daySlots, []int64{}, true)
		assert.Equal(t, []int64{30}, result)
	})

	t.Run("lighting forced on evening slots", func(t *testing.T) {
		result := applyLightingPolicy(open, services, rental, eveningSlots, nil, false)
		assert.Equal(t, []int64{30}, result)
	})

	t.Run("lighting not duplicated when already selected", func(t *testing.T) {
		result := applyLightingPolicy(covered, services, rental, daySlots, []int64{30}, true)
		assert.Equal(t, []int64{30}, result)
	})

	t.Run("not forced for daytime open court", func(t *testing.T) {
		result := applyLightingPolicy(open, services, rental, daySlots, []int64{10}, true)
		assert.Equal(t, []int64{10}, result)
	})

	t.Run("suppressed for none base without explicit selection", func(t *testing.T) {
		result := applyLightingPolicy(covered, services, noneBase, daySlots, nil, false)
		assert.Empty(t, result)
	})

	t.Run("honored for none base with explicit selection", func(t *testing.T) {
		result := applyLightingPolicy(covered, services, noneBase, daySlots, []int64{}, true)
		assert.Equal(t, []int64{30}, result)
	})

	t.Run("no lighting service on court", func(t *testing.T) {
		noLighting := []*domain.CourtService{rental}
		result := applyLightingPolicy(covered, noLighting, rental, daySlots, []int64{10}, true)
		assert.Equal(t, []int64{10}, result)
	})
}
