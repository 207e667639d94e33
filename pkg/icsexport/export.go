// Package icsexport renders a board week as an iCalendar feed.
package icsexport

import (
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/weekboard/weekboard/pkg/board"
)

const (
	productID = "-//weekboard//Weekly Board//EN"
	uidDomain = "weekboard"

	propCompleted = ical.ComponentProperty("X-WEEKBOARD-COMPLETED")
	propSlot      = ical.ComponentProperty("X-WEEKBOARD-SLOT")
)

// Options controls how slots become calendar times.
type Options struct {
	// Location places each hour slot; nil means time.Local.
	Location *time.Location
	// Duration of every event; zero means one hour.
	Duration time.Duration
	// Now stamps DTSTAMP; zero means time.Now().
	Now time.Time
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Duration <= 0 {
		o.Duration = time.Hour
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}

// UID returns the calendar UID of a task.
func UID(taskID string) string {
	return taskID + "@" + uidDomain
}

// SlotStart resolves a slot of the week to a wall-clock time in loc.
func SlotStart(day board.Day, hour int, loc *time.Location) time.Time {
	y, m, d := day.Date.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, loc)
}

// Build returns a calendar with one event per task shown in grid.
func Build(grid *board.Grid, opts Options) *ical.Calendar {
	opts = opts.withDefaults()

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, day := range grid.View.Days {
		for _, hour := range grid.View.Hours {
			for _, t := range grid.Bucket(day.Weekday, hour) {
				addEvent(cal, t, SlotStart(day, hour, opts.Location), opts)
			}
		}
	}
	return cal
}

func addEvent(cal *ical.Calendar, t board.Task, start time.Time, opts Options) {
	ev := cal.AddEvent(UID(t.ID))
	ev.SetDtStampTime(opts.Now)
	if !t.Created.IsZero() {
		ev.SetCreatedTime(t.Created)
	}
	if !t.Updated.IsZero() {
		ev.SetModifiedAt(t.Updated)
	}
	ev.SetStartAt(start)
	ev.SetEndAt(start.Add(opts.Duration))
	ev.SetSummary(t.Title)
	if t.Notes != "" {
		ev.SetDescription(t.Notes)
	}
	if t.ProjectName != "" {
		ev.SetProperty(ical.ComponentPropertyCategories, t.ProjectName)
	}
	if t.Color != "" {
		ev.SetProperty(ical.ComponentPropertyColor, t.Color)
	}
	ev.SetProperty(ical.ComponentPropertyStatus, "CONFIRMED")
	ev.SetProperty(propSlot, t.Slot().String())
	if t.Completed {
		ev.SetProperty(propCompleted, "TRUE")
	}
}

// Write serializes the grid's week to w.
func Write(w io.Writer, grid *board.Grid, opts Options) error {
	_, err := io.WriteString(w, Build(grid, opts).Serialize())
	return err
}
