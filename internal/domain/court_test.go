package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyServiceKind(t *testing.T) {
	tests := []struct {
		name     string
		service  string
		expected ServiceKind
	}{
		{"none sentinel", "none", ServiceKindNone},
		{"none with spaces", "  None ", ServiceKindNone},
		{"lighting", "Lighting", ServiceKindLighting},
		{"floodlights", "Floodlight package", ServiceKindLighting},
		{"illumination", "Evening illumination", ServiceKindLighting},
		{"rental", "Court rental", ServiceKindRental},
		{"hire", "Racket court hire", ServiceKindRental},
		{"other", "Towel service", ServiceKindOther},
		{"empty", "", ServiceKindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyServiceKind(tt.service))
		})
	}
}

func TestClassifyCovered(t *testing.T) {
	assert.True(t, ClassifyCovered("covered clay court", "active"))
	assert.True(t, ClassifyCovered("", "indoor"))
	assert.True(t, ClassifyCovered("Domed arena", ""))
	assert.False(t, ClassifyCovered("open air court", "active"))
	assert.False(t, ClassifyCovered("", ""))
}

func TestResolveBaseService(t *testing.T) {
	t.Run("free non-lighting wins", func(t *testing.T) {
		services := []*CourtService{
			{ID: 1, Kind: ServiceKindLighting, AdditionalPrice: 0},
			{ID: 2, Kind: ServiceKindOther, AdditionalPrice: 0},
			{ID: 3, Kind: ServiceKindRental, AdditionalPrice: 100},
		}
		assert.Equal(t, int64(2), ResolveBaseService(services).ID)
	})

	t.Run("rental kind when no free candidate", func(t *testing.T) {
		services := []*CourtService{
			{ID: 1, Kind: ServiceKindOther, AdditionalPrice: 50},
			{ID: 2, Kind: ServiceKindRental, AdditionalPrice: 100},
		}
		assert.Equal(t, int64(2), ResolveBaseService(services).ID)
	})

	t.Run("free lighting as last free resort", func(t *testing.T) {
		services := []*CourtService{
			{ID: 1, Kind: ServiceKindOther, AdditionalPrice: 50},
			{ID: 2, Kind: ServiceKindLighting, AdditionalPrice: 0},
		}
		assert.Equal(t, int64(2), ResolveBaseService(services).ID)
	})

	t.Run("first service as fallback", func(t *testing.T) {
		services := []*CourtService{
			{ID: 7, Kind: ServiceKindOther, AdditionalPrice: 30},
			{ID: 8, Kind: ServiceKindOther, AdditionalPrice: 40},
		}
		assert.Equal(t, int64(7), ResolveBaseService(services).ID)
	})

	t.Run("no services", func(t *testing.T) {
		assert.Nil(t, ResolveBaseService(nil))
	})
}

func TestBookingStatusHelpers(t *testing.T) {
	confirmed := &Booking{Status: StatusConfirmed}
	pending := &Booking{Status: StatusPending}
	cancelled := &Booking{Status: StatusCancelled}

	assert.True(t, confirmed.IsActive())
	assert.True(t, confirmed.CanBeCancelled())
	assert.True(t, pending.CanBeCancelled())
	assert.False(t, cancelled.IsActive())
	assert.True(t, cancelled.IsCancelled())
	assert.False(t, cancelled.CanBeCancelled())
}
