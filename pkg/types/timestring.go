package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timeStringLayout формат времени суток, используемый во всём сервисе
const timeStringLayout = "15:04"

// TimeString represents a wall-clock time of day as "HH:MM".
// It is stored in the database as a plain string and compared lexicographically,
// which is valid for the zero-padded 24-hour format.
type TimeString string

// NewTimeString creates a TimeString from a time.Time (date part is discarded)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
// Accepts "HH:MM:SS" as well (legacy rows), truncating the seconds.
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if parts := strings.Split(s, ":"); len(parts) == 3 {
		s = parts[0] + ":" + parts[1]
	}
	if _, err := time.Parse(timeStringLayout, s); err != nil {
		return "", fmt.Errorf("invalid time string format: %v", err)
	}
	return TimeString(s), nil
}

// String returns the "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" string
func (t TimeString) Validate() error {
	_, err := time.Parse(timeStringLayout, string(t))
	return err
}

// Hour returns the hour component (0-23)
func (t TimeString) Hour() (int, error) {
	parts := strings.SplitN(string(t), ":", 2)
	if len(parts) == 0 || parts[0] == "" {
		return 0, fmt.Errorf("invalid time string %q", string(t))
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time string %q: %v", string(t), err)
	}
	if h < 0 || h > 23 {
		return 0, fmt.Errorf("hour out of range in %q", string(t))
	}
	return h, nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result wraps around midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("invalid time string %q: %v", string(t), err)
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeStringLayout)), nil
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer so TimeString can be written directly
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner so TimeString can be read directly from rows
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}
