package get_court_availability

import (
	"github.com/courtbook/court-booking-service/internal/domain"
	getAvailability "github.com/courtbook/court-booking-service/internal/usecase/get_court_availability"
)

// SlotResponse один слот каталога с признаком доступности
type SlotResponse struct {
	SlotID    int64  `json:"slotId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CourtID    int64          `json:"courtId"`
	CourtName  string         `json:"courtName"`
	HourlyRate float64        `json:"hourlyRate"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			SlotID:    slot.SlotID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Available: slot.Available,
		})
	}

	return &AvailabilityResponse{
		CourtID:    resp.CourtID,
		CourtName:  resp.CourtName,
		HourlyRate: resp.HourlyRate,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}
