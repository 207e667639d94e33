package board

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when an operation references an unknown task id.
	ErrNotFound = errors.New("task not found")
	// ErrInvalidSlot is returned when a day or hour lies outside the board.
	ErrInvalidSlot = errors.New("invalid slot")
)

// Weekday is a day column of the board.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists every weekday, Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether d is one of the seven weekdays.
func (d Weekday) Valid() bool {
	for _, w := range Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// Title returns the display name, e.g. "Monday".
func (d Weekday) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Short returns the three-letter abbreviation, e.g. "Mon".
func (d Weekday) Short() string {
	t := d.Title()
	if len(t) < 3 {
		return t
	}
	return t[:3]
}

// TimeWeekday converts d to the standard library weekday.
func (d Weekday) TimeWeekday() time.Weekday {
	switch d {
	case Sunday:
		return time.Sunday
	case Monday:
		return time.Monday
	case Tuesday:
		return time.Tuesday
	case Wednesday:
		return time.Wednesday
	case Thursday:
		return time.Thursday
	case Friday:
		return time.Friday
	default:
		return time.Saturday
	}
}

// WeekdayOf returns the board weekday of t.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Sunday:
		return Sunday
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	default:
		return Saturday
	}
}

// ParseWeekday accepts full names and three-letter abbreviations in any case.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, w := range Weekdays {
		if s == string(w) || (len(s) == 3 && strings.HasPrefix(string(w), s)) {
			return w, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q: %w", s, ErrInvalidSlot)
}

// WorkingHours is the closed range of schedulable hours, e.g. 9..18.
type WorkingHours struct {
	Start int `yaml:"start" json:"start"`
	End   int `yaml:"end" json:"end"`
}

// DefaultWorkingHours is the 9 to 18 office day.
var DefaultWorkingHours = WorkingHours{Start: 9, End: 18}

// Validate checks that the range is non-empty and within a day.
func (h WorkingHours) Validate() error {
	if h.Start < 0 || h.End > 23 || h.Start > h.End {
		return fmt.Errorf("working hours %d-%d must satisfy 0 <= start <= end <= 23", h.Start, h.End)
	}
	return nil
}

// Contains reports whether hour lies inside the range.
func (h WorkingHours) Contains(hour int) bool {
	return hour >= h.Start && hour <= h.End
}

// Hours returns the range as consecutive integers.
func (h WorkingHours) Hours() []int {
	if h.End < h.Start {
		return nil
	}
	hours := make([]int, 0, h.End-h.Start+1)
	for hr := h.Start; hr <= h.End; hr++ {
		hours = append(hours, hr)
	}
	return hours
}

func (h WorkingHours) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", h.Start, h.End)
}

// Slot is one cell of the weekly grid.
type Slot struct {
	Day  Weekday
	Hour int
}

func (s Slot) String() string {
	return fmt.Sprintf("%s %02d:00", s.Day, s.Hour)
}

// Task is a schedulable unit of work placed in a slot.
type Task struct {
	ID          string
	Title       string
	Day         Weekday
	Hour        int
	Completed   bool
	ProjectName string
	Color       string
	Notes       string
	Created     time.Time
	Updated     time.Time
}

// Slot returns the task's grid coordinates.
func (t Task) Slot() Slot {
	return Slot{Day: t.Day, Hour: t.Hour}
}

// Details are the caller-supplied display fields of a new task.
type Details struct {
	Title       string
	ProjectName string
	Color       string
	Notes       string
}

// Patch updates display fields; nil fields are left untouched.
type Patch struct {
	Title       *string
	ProjectName *string
	Color       *string
	Notes       *string
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.ProjectName == nil && p.Color == nil && p.Notes == nil
}

func (p Patch) apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.ProjectName != nil {
		t.ProjectName = *p.ProjectName
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
}
