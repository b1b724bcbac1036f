//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-02 is a Monday.
func monday(t *testing.T) time.Time {
	t.Helper()
	d, err := schedule.ParseDate("2025-06-02", time.UTC)
	require.NoError(t, err)
	return d
}

func TestMinutesOfDay(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "midnight", in: "00:00", want: 0},
		{name: "opening time", in: "11:00", want: 660},
		{name: "last minute of day", in: "23:59", want: 1439},
		{name: "missing colon", in: "1100", wantErr: true},
		{name: "hour out of range", in: "24:00", wantErr: true},
		{name: "minute out of range", in: "12:60", wantErr: true},
		{name: "not a number", in: "ab:cd", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := schedule.MinutesOfDay(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", schedule.FormatMinutes(0))
	assert.Equal(t, "09:05", schedule.FormatMinutes(545))
	assert.Equal(t, "21:00", schedule.FormatMinutes(1260))
}

func TestParseDate_NoonAnchored(t *testing.T) {
	d, err := schedule.ParseDate("2025-06-02", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 12, d.Hour())
	assert.Equal(t, time.Monday, d.Weekday())
	assert.Equal(t, "monday", schedule.DayName(d))

	_, err = schedule.ParseDate("06/02/2025", time.UTC)
	assert.Error(t, err)
}

func TestWeeklyHours_Check(t *testing.T) {
	hours := schedule.WeeklyHours{
		"monday": {Open: "11:00", Close: "22:00"},
		"sunday": {Closed: true},
	}

	t.Run("open within hours", func(t *testing.T) {
		res := hours.Check(monday(t), "12:30")
		assert.True(t, res.IsOpen)
		require.NotNil(t, res.Hours)
		assert.Equal(t, "11:00", res.Hours.Open)
	})

	t.Run("last seating boundary is inclusive", func(t *testing.T) {
		res := hours.Check(monday(t), "21:00")
		assert.True(t, res.IsOpen)

		res = hours.Check(monday(t), "21:01")
		assert.False(t, res.IsOpen)
		assert.Contains(t, res.Reason, "21:00")
		assert.Contains(t, res.Reason, "22:00")
	})

	t.Run("before opening", func(t *testing.T) {
		res := hours.Check(monday(t), "10:59")
		assert.False(t, res.IsOpen)
		assert.Contains(t, res.Reason, "11:00")
	})

	t.Run("closed day names the day", func(t *testing.T) {
		sunday, err := schedule.ParseDate("2025-06-01", time.UTC)
		require.NoError(t, err)

		res := hours.Check(sunday, "12:00")
		assert.False(t, res.IsOpen)
		assert.Contains(t, res.Reason, "Sunday")
	})

	t.Run("day without an entry is always open", func(t *testing.T) {
		tuesday, err := schedule.ParseDate("2025-06-03", time.UTC)
		require.NoError(t, err)

		res := hours.Check(tuesday, "03:00")
		assert.True(t, res.IsOpen)
	})

	t.Run("nil schedule is always open", func(t *testing.T) {
		var none schedule.WeeklyHours
		res := none.Check(monday(t), "04:00")
		assert.True(t, res.IsOpen)
	})

	t.Run("malformed requested time", func(t *testing.T) {
		res := hours.Check(monday(t), "noonish")
		assert.False(t, res.IsOpen)
	})
}

func TestWeeklyHours_BookableWindow(t *testing.T) {
	hours := schedule.WeeklyHours{
		"monday": {Open: "11:00", Close: "22:00"},
		"sunday": {Closed: true},
	}

	open, last, ok := hours.BookableWindow(monday(t))
	require.True(t, ok)
	assert.Equal(t, 660, open)
	assert.Equal(t, 1260, last)

	sunday, err := schedule.ParseDate("2025-06-01", time.UTC)
	require.NoError(t, err)
	_, _, ok = hours.BookableWindow(sunday)
	assert.False(t, ok)

	var none schedule.WeeklyHours
	open, last, ok = none.BookableWindow(monday(t))
	require.True(t, ok)
	assert.Equal(t, 0, open)
	assert.Equal(t, schedule.MinutesPerDay-1, last)
}
