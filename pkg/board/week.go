package board

import "time"

// DisplayDateLayout formats the date shown under each day header.
const DisplayDateLayout = "Jan 2"

// Day describes one column of a week view.
type Day struct {
	Weekday Weekday
	Name    string
	Display string
	Date    time.Time
}

// WeekView is the read-only scaffold of a displayed week.
type WeekView struct {
	Reference time.Time
	Days      []Day
	Hours     []int

	working WorkingHours
}

// BuildWeek returns seven days starting at reference and the working hours
// as consecutive integers. It does not snap reference to a week start; use
// StartOfWeek for that.
func BuildWeek(reference time.Time, hours WorkingHours) WeekView {
	start := midnight(reference)
	days := make([]Day, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		wd := WeekdayOf(date)
		days = append(days, Day{
			Weekday: wd,
			Name:    wd.Title(),
			Display: date.Format(DisplayDateLayout),
			Date:    date,
		})
	}
	return WeekView{
		Reference: start,
		Days:      days,
		Hours:     hours.Hours(),
		working:   hours,
	}
}

// StartOfWeek returns midnight of the most recent first weekday on or before t.
func StartOfWeek(t time.Time, first Weekday) time.Time {
	if !first.Valid() {
		first = Monday
	}
	day := midnight(t)
	offset := (int(day.Weekday()) - int(first.TimeWeekday()) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// Next returns the view of the following week with the same hours.
func (v WeekView) Next() WeekView {
	return v.shift(7)
}

// Prev returns the view of the preceding week with the same hours.
func (v WeekView) Prev() WeekView {
	return v.shift(-7)
}

func (v WeekView) shift(days int) WeekView {
	return BuildWeek(v.Reference.AddDate(0, 0, days), v.working)
}

// DayOf returns the descriptor for weekday d.
func (v WeekView) DayOf(d Weekday) (Day, bool) {
	for _, day := range v.Days {
		if day.Weekday == d {
			return day, true
		}
	}
	return Day{}, false
}

// HasHour reports whether hour is one of the view's rows.
func (v WeekView) HasHour(hour int) bool {
	for _, h := range v.Hours {
		if h == hour {
			return true
		}
	}
	return false
}

// Contains reports whether t falls on one of the view's dates.
func (v WeekView) Contains(t time.Time) bool {
	if len(v.Days) == 0 {
		return false
	}
	d := midnight(t.In(v.Reference.Location()))
	first := v.Days[0].Date
	last := v.Days[len(v.Days)-1].Date
	return !d.Before(first) && !d.After(last)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
