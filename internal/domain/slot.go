package domain

import "github.com/courtbook/court-booking-service/pkg/types"

// TimeSlot is a fixed catalog entry with wall-clock start and end times,
// shared by all courts and dates.
type TimeSlot struct {
	ID        int64
	StartTime types.TimeString
	EndTime   types.TimeString
}

// StartHour returns the hour component of the slot's start time
func (s *TimeSlot) StartHour() (int, error) {
	return s.StartTime.Hour()
}

// StartsAtOrAfter reports whether the slot begins at the given hour or later
func (s *TimeSlot) StartsAtOrAfter(hour int) bool {
	h, err := s.StartHour()
	if err != nil {
		return false
	}
	return h >= hour
}
