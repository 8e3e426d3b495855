package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09", DateKey(d))

	d, err = ParseDate("2025-03-09T15:30:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09", DateKey(d))

	_, err = ParseDate("09/03/2025")
	assert.Error(t, err)
}

func TestMonthRange(t *testing.T) {
	loc := Location(DefaultTimezone)

	first, last := MonthRange(time.Date(2024, time.February, 14, 10, 0, 0, 0, loc))
	assert.Equal(t, "2024-02-01", first)
	assert.Equal(t, "2024-02-29", last)

	first, last = MonthRange(time.Date(2025, time.December, 31, 23, 59, 0, 0, loc))
	assert.Equal(t, "2025-12-01", first)
	assert.Equal(t, "2025-12-31", last)
}
