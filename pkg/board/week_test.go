package board

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWeek(t *testing.T) {
	ref := time.Date(2026, 2, 9, 15, 30, 0, 0, time.UTC) // a Monday afternoon
	view := BuildWeek(ref, WorkingHours{Start: 9, End: 18})

	require.Len(t, view.Days, 7)
	assert.Equal(t, time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), view.Reference)
	assert.Equal(t, []int{9, 10, 11, 12, 13, 14, 15, 16, 17, 18}, view.Hours)

	want := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	for i, d := range view.Days {
		assert.Equal(t, want[i], d.Weekday)
		assert.Equal(t, ref.AddDate(0, 0, i).Day(), d.Date.Day())
	}
	assert.Equal(t, "Monday", view.Days[0].Name)
	assert.Equal(t, "Feb 9", view.Days[0].Display)
	assert.Equal(t, "Feb 15", view.Days[6].Display)
}

func TestBuildWeekDoesNotSnapToWeekStart(t *testing.T) {
	ref := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC) // Wednesday
	view := BuildWeek(ref, DefaultWorkingHours)

	assert.Equal(t, Wednesday, view.Days[0].Weekday)
	assert.Equal(t, Tuesday, view.Days[6].Weekday)
}

func TestBuildWeekSingleHour(t *testing.T) {
	view := BuildWeek(time.Now(), WorkingHours{Start: 12, End: 12})
	assert.Equal(t, []int{12}, view.Hours)
}

func TestStartOfWeek(t *testing.T) {
	wed := time.Date(2026, 2, 11, 13, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), StartOfWeek(wed, Monday))
	assert.Equal(t, time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC), StartOfWeek(wed, Sunday))

	mon := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, StartOfWeek(mon, Monday))

	sun := time.Date(2026, 2, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, mon, StartOfWeek(sun, Monday))

	// Unknown first day falls back to Monday.
	assert.Equal(t, mon, StartOfWeek(wed, "someday"))
}

func TestWeekNavigation(t *testing.T) {
	view := testWeek()

	next := view.Next()
	assert.Equal(t, time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC), next.Reference)
	assert.Equal(t, view.Hours, next.Hours)

	prev := view.Prev()
	assert.Equal(t, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), prev.Reference)
	assert.Equal(t, view.Hours, prev.Hours)
}

func TestWeekViewContains(t *testing.T) {
	view := testWeek()

	assert.True(t, view.Contains(time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)))
	assert.True(t, view.Contains(time.Date(2026, 2, 15, 23, 0, 0, 0, time.UTC)))
	assert.False(t, view.Contains(time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)))
	assert.False(t, view.Contains(time.Date(2026, 2, 8, 23, 0, 0, 0, time.UTC)))
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in   string
		want Weekday
	}{
		{"monday", Monday},
		{"Tuesday", Tuesday},
		{" WED ", Wednesday},
		{"thu", Thursday},
		{"Sun", Sunday},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWeekday(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseWeekday("funday")
	assert.True(t, errors.Is(err, ErrInvalidSlot))
	_, err = ParseWeekday("mo")
	assert.Error(t, err)
}

func TestWeekdayConversions(t *testing.T) {
	for _, d := range Weekdays {
		date := StartOfWeek(time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC), d)
		assert.Equal(t, d, WeekdayOf(date))
		assert.Equal(t, d.TimeWeekday(), date.Weekday())
	}
	assert.Equal(t, "Sat", Saturday.Short())
}

func TestWorkingHours(t *testing.T) {
	h := WorkingHours{Start: 9, End: 18}
	assert.NoError(t, h.Validate())
	assert.True(t, h.Contains(9))
	assert.True(t, h.Contains(18))
	assert.False(t, h.Contains(19))
	assert.Len(t, h.Hours(), 10)
	assert.Equal(t, "09:00-18:00", h.String())

	assert.Error(t, WorkingHours{Start: -1, End: 5}.Validate())
	assert.Nil(t, WorkingHours{Start: 5, End: 4}.Hours())
}
