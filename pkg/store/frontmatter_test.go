package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weekboard/weekboard/pkg/board"
)

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		check   func(t *testing.T, task board.Task)
	}{
		{
			name: "full frontmatter with notes",
			input: `---
title: "Standup"
day: monday
hour: 9
completed: true
project: core
color: "#7D56F4"
created: 2026-02-08T10:00:00Z
updated: 2026-02-08T14:30:00Z
---

# Agenda

- blockers
`,
			check: func(t *testing.T, task board.Task) {
				assert.Equal(t, "Standup", task.Title)
				assert.Equal(t, board.Monday, task.Day)
				assert.Equal(t, 9, task.Hour)
				assert.True(t, task.Completed)
				assert.Equal(t, "core", task.ProjectName)
				assert.Equal(t, "#7D56F4", task.Color)
				assert.True(t, task.Created.Equal(time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)))
				assert.Contains(t, task.Notes, "# Agenda")
				assert.Contains(t, task.Notes, "- blockers")
			},
		},
		{
			name: "minimal",
			input: `---
title: Review
day: friday
hour: 16
---
`,
			check: func(t *testing.T, task board.Task) {
				assert.Equal(t, board.Friday, task.Day)
				assert.False(t, task.Completed)
				assert.Empty(t, task.Notes)
				assert.Empty(t, task.ProjectName)
			},
		},
		{
			name:    "no frontmatter",
			input:   "just some notes",
			wantErr: true,
		},
		{
			name:    "unclosed frontmatter",
			input:   "---\ntitle: broken\n",
			wantErr: true,
		},
		{
			name:    "unknown day",
			input:   "---\ntitle: x\nday: caturday\nhour: 9\n---\n",
			wantErr: true,
		},
		{
			name:    "bad yaml",
			input:   "---\ntitle: [unterminated\n---\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := ParseFrontmatter(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, task)
		})
	}
}

func TestParseFrontmatterUnknownDayIsInvalidSlot(t *testing.T) {
	_, err := ParseFrontmatter("---\nday: caturday\n---\n")
	assert.True(t, errors.Is(err, board.ErrInvalidSlot))
}

func TestSerializeFrontmatter(t *testing.T) {
	task := board.Task{
		ID:          "ignored",
		Title:       "Plan sprint",
		Day:         board.Tuesday,
		Hour:        14,
		ProjectName: "roadmap",
		Notes:       "Bring the backlog",
		Created:     time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC),
		Updated:     time.Date(2026, 2, 8, 11, 0, 0, 0, time.UTC),
	}

	out, err := SerializeFrontmatter(task)
	require.NoError(t, err)
	assert.Contains(t, out, "title: Plan sprint")
	assert.Contains(t, out, "day: tuesday")
	assert.Contains(t, out, "hour: 14")
	assert.Contains(t, out, "project: roadmap")
	assert.NotContains(t, out, "color:")
	assert.NotContains(t, out, "ignored")
	assert.Contains(t, out, "---\n\nBring the backlog\n")

	parsed, err := ParseFrontmatter(out)
	require.NoError(t, err)
	assert.Equal(t, task.Title, parsed.Title)
	assert.Equal(t, task.Day, parsed.Day)
	assert.Equal(t, task.Hour, parsed.Hour)
	assert.Equal(t, "Bring the backlog", parsed.Notes)
	assert.True(t, task.Updated.Equal(parsed.Updated))
}
