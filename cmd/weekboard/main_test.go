package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weekboard/weekboard/pkg/board"
)

func TestParseSlot(t *testing.T) {
	day, hour, err := parseSlot("Tue", "14")
	require.NoError(t, err)
	assert.Equal(t, board.Tuesday, day)
	assert.Equal(t, 14, hour)

	_, _, err = parseSlot("someday", "9")
	assert.ErrorIs(t, err, board.ErrInvalidSlot)

	_, _, err = parseSlot("monday", "nine")
	assert.ErrorIs(t, err, board.ErrInvalidSlot)
}

func TestWeekToMap(t *testing.T) {
	hours := board.WorkingHours{Start: 9, End: 10}
	e, err := board.NewEngine(hours)
	require.NoError(t, err)
	_, err = e.Create(board.Monday, 9, board.Details{Title: "Standup"})
	require.NoError(t, err)

	view := board.BuildWeek(time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), hours)
	m := weekToMap(e.Index(view))

	days := m["days"].([]map[string]any)
	require.Len(t, days, 7)
	assert.Equal(t, "monday", days[0]["day"])
	assert.Equal(t, "2026-02-09", days[0]["date"])
	assert.Equal(t, 1, days[0]["total"])
	assert.Len(t, days[0]["tasks"], 1)
	assert.Equal(t, 0, days[1]["total"])
	assert.Equal(t, 0, m["hidden"])
}

func TestTaskToMap(t *testing.T) {
	task := board.Task{ID: "t1", Title: "Review", Day: board.Friday, Hour: 16, ProjectName: "q3"}
	m := taskToMap(task)
	assert.Equal(t, "friday", m["day"])
	assert.Equal(t, 16, m["hour"])
	assert.Equal(t, "q3", m["project"])
	assert.NotContains(t, m, "created")
}
