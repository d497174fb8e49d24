package dateutil

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayIn(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 2024-06-09T20:00Z is already Monday morning in Jakarta
	ts := time.Date(2024, 6, 9, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-06-09", DayIn(ts, time.UTC).Format(DayLayout))
	assert.Equal(t, "2024-06-10", DayIn(ts, jakarta).Format(DayLayout))
	assert.Equal(t, time.Monday, DayIn(ts, jakarta).Weekday())
}

func TestParseDay(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"2024-06-03", "2024-06-03", true},
		{"2024-06-03T15:04:05Z", "2024-06-03", true},
		{"2024-06-03T23:30:00-05:00", "2024-06-04", true},
		{"03/06/2024", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseDay(c.input, time.UTC)
		if ok != c.ok {
			t.Errorf("ParseDay(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && got.Format(DayLayout) != c.want {
			t.Errorf("ParseDay(%q) = %s, want %s", c.input, got.Format(DayLayout), c.want)
		}
	}
}

func TestIsWeekend(t *testing.T) {
	// 2024-06-03 is a Monday
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		want := i == 5 || i == 6
		if got := IsWeekend(day); got != want {
			t.Errorf("IsWeekend(%s) = %v, want %v", day.Format(DayLayout), got, want)
		}
	}
}

func TestDays(t *testing.T) {
	from := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 5, 8, 0, 0, 0, time.UTC)

	days := slices.Collect(Days(from, to))

	require.Len(t, days, 3)
	assert.Equal(t, "2024-06-03", Key(days[0]))
	assert.Equal(t, "2024-06-05", Key(days[2]))
	assert.Empty(t, slices.Collect(Days(to, from)))
}

func TestDays_StopsEarly(t *testing.T) {
	from := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	visited := 0
	for d := range Days(from, to) {
		visited++
		if IsWeekend(d) {
			break
		}
	}
	assert.Equal(t, 6, visited)
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "Sat Jun 08 2024", Display(time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)))
}
