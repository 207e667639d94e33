package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/weekboard/weekboard/pkg/board"
)

func TestCellLabel(t *testing.T) {
	one := []board.Task{{ID: "a", Title: "Standup"}}
	three := []board.Task{
		{ID: "a", Title: "Standup"},
		{ID: "b", Title: "Review", Completed: true},
		{ID: "c", Title: "Lunch"},
	}

	tests := []struct {
		name   string
		bucket []board.Task
		focus  int
		width  int
		want   string
	}{
		{"empty bucket", nil, 0, 20, ""},
		{"single task", one, 0, 20, "○ Standup"},
		{"more suffix", three, 0, 20, "○ Standup +2"},
		{"focused completed task", three, 1, 20, "✓ Review +2"},
		{"focus out of range falls back", three, 7, 20, "○ Standup +2"},
		{"truncated before suffix", three, 0, 10, "○ Stan… +2"},
		{"zero width", one, 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cellLabel(tt.bucket, tt.focus, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, ansi.StringWidth(got), max(tt.width, 0))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
	assert.Equal(t, "✓ x ", padRight("✓ x", 4))
}

func TestDayHeader(t *testing.T) {
	day := board.Day{
		Weekday: board.Monday,
		Display: "Feb 9",
		Date:    time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "Mon Feb 9", dayHeader(day, board.Completion{}, 20))
	assert.Equal(t, "Mon Feb 9 1/3", dayHeader(day, board.Completion{Done: 1, Total: 3}, 20))
	assert.Equal(t, "Mon F…", dayHeader(day, board.Completion{}, 6))
}

func TestIsTaskFile(t *testing.T) {
	assert.True(t, isTaskFile("/data/tasks/abc.md"))
	assert.True(t, isTaskFile(`C:\data\tasks\abc.md`))
	assert.False(t, isTaskFile("/data/tasks/.abc.md.swp"))
	assert.False(t, isTaskFile("/data/tasks/.hidden.md"))
	assert.False(t, isTaskFile("/data/tasks/abc.md~"))
	assert.False(t, isTaskFile("/data/config.yaml"))
}
