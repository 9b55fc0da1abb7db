package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// LightingForcedFromHour is the wall-clock hour from which the lighting
// add-on becomes mandatory for a requested slot (18 = 6 PM, court-local time)
const LightingForcedFromHour = 18

// InactiveStatuses статусы бронирований, которые не занимают слоты
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses статусы бронирований, которые занимают слоты
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
