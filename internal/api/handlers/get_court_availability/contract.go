package get_court_availability

import (
	"context"

	getAvailability "github.com/courtbook/court-booking-service/internal/usecase/get_court_availability"
)

type GetCourtAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
