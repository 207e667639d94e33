package tui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/weekboard/weekboard/pkg/board"
)

// cellLabel summarizes a slot's bucket in at most width columns: the focused
// task with its status icon, and a "+N" suffix for the others.
func cellLabel(bucket []board.Task, focus, width int) string {
	if len(bucket) == 0 || width <= 0 {
		return ""
	}
	if focus < 0 || focus >= len(bucket) {
		focus = 0
	}
	t := bucket[focus]

	icon := IconIncomplete
	if t.Completed {
		icon = IconComplete
	}

	suffix := ""
	if len(bucket) > 1 {
		suffix = fmt.Sprintf(" %s%d", IconMore, len(bucket)-1)
	}

	room := width - ansi.StringWidth(suffix)
	if room < 3 {
		return ansi.Truncate(icon+" "+t.Title, width, "…")
	}
	return ansi.Truncate(icon+" "+t.Title, room, "…") + suffix
}

// padRight pads s with spaces to width display columns.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	for ; w < width; w++ {
		s += " "
	}
	return s
}

// dayHeader renders "Mon Feb 9" plus the day's completion count.
func dayHeader(day board.Day, c board.Completion, width int) string {
	label := day.Weekday.Short() + " " + day.Display
	if c.Total > 0 {
		label += fmt.Sprintf(" %d/%d", c.Done, c.Total)
	}
	return ansi.Truncate(label, width, "…")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
