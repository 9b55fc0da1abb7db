package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("18:30")
	require.NoError(t, err)
	assert.Equal(t, "18:30", ts.String())

	// легаси формат с секундами усекается
	ts, err = NewTimeStringFromString("09:00:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("not a time")
	assert.Error(t, err)
}

func TestTimeStringHour(t *testing.T) {
	ts, err := NewTimeStringFromString("18:00")
	require.NoError(t, err)

	hour, err := ts.Hour()
	require.NoError(t, err)
	assert.Equal(t, 18, hour)
}

func TestTimeStringCompare(t *testing.T) {
	morning, _ := NewTimeStringFromString("08:00")
	evening, _ := NewTimeStringFromString("20:00")

	assert.True(t, morning.IsBefore(evening))
	assert.True(t, evening.IsAfter(morning))
	assert.False(t, morning.IsAfter(evening))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts, _ := NewTimeStringFromString("09:30")

	next, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "10:30", next.String())
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00:00"))
	assert.Equal(t, "14:00", ts.String())

	require.NoError(t, ts.Scan([]byte("15:00")))
	assert.Equal(t, "15:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 16, 30, 0, 0, time.UTC)))
	assert.Equal(t, "16:30", ts.String())
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 7, 5, 0, 0, time.UTC))
	assert.Equal(t, "07:05", ts.String())
}
