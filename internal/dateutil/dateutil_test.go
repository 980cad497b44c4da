package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIn_UsesConfiguredZone(t *testing.T) {
	// 2024-05-01 02:30 UTC is still 2024-04-30 in New York.
	instant := time.Date(2024, 5, 1, 2, 30, 0, 0, time.UTC)
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01", KeyIn(instant, time.UTC))
	assert.Equal(t, "2024-04-30", KeyIn(instant, ny))
}

func TestRange_Inclusive(t *testing.T) {
	days := Range("2024-02-27", "2024-03-02")
	assert.Equal(t, []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}, days)
}

func TestRange_Inverted(t *testing.T) {
	assert.Nil(t, Range("2024-03-02", "2024-02-27"))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2024-01-01", AddDays("2023-12-31", 1))
	assert.Equal(t, "2023-12-22", AddDays("2023-12-31", -9))
}

func TestMonthBounds(t *testing.T) {
	from, to, err := MonthBounds("2024-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", from)
	assert.Equal(t, "2024-02-29", to)

	_, _, err = MonthBounds("2024-2")
	assert.Error(t, err)
}

func TestWeekdayIndex_MondayFirst(t *testing.T) {
	assert.Equal(t, 0, WeekdayIndex("2024-05-06")) // Monday
	assert.Equal(t, 6, WeekdayIndex("2024-05-05")) // Sunday
}

func TestDayOfMonth(t *testing.T) {
	assert.Equal(t, 9, DayOfMonth("2024-05-09"))
}
