package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is the aggregate root of a reservation: one client, one date,
// one or more slot/service lines and a total computed once at creation.
type Booking struct {
	ID           int64
	ClientID     int64
	ReservedDate time.Time
	Total        float64
	Status       BookingStatus

	// Lines is populated on reads that fetch the full aggregate
	Lines []BookingLine

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingLine is one (slot, court service) row belonging to a booking.
// ReservedDate is denormalized from the booking so slot occupancy
// (one line per base service, slot and date) can be checked without a join.
type BookingLine struct {
	ID             int64
	BookingID      int64
	CourtServiceID int64
	SlotID         int64
	ReservedDate   time.Time
}

// IsActive returns true if the booking still occupies its slots
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// ClientBookingsFilter filter for listing a client's bookings
type ClientBookingsFilter struct {
	ClientID        int64
	Status          *BookingStatus
	IncludeInactive bool
}
