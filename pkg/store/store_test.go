package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weekboard/weekboard/pkg/board"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	return s
}

func sampleTask(id string, day board.Weekday, hour int, created time.Time) board.Task {
	return board.Task{
		ID:      id,
		Title:   "task " + id,
		Day:     day,
		Hour:    hour,
		Created: created,
		Updated: created,
	}
}

func TestSaveAndLoadTask(t *testing.T) {
	s := setupTestStore(t)
	created := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)

	task := sampleTask("t1", board.Monday, 9, created)
	task.Notes = "agenda"
	require.NoError(t, s.SaveTask(task))

	_, err := os.Stat(filepath.Join(s.TasksDir(), "t1.md"))
	require.NoError(t, err)

	loaded, err := s.LoadTask("t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", loaded.ID)
	assert.Equal(t, task.Title, loaded.Title)
	assert.Equal(t, board.Monday, loaded.Day)
	assert.Equal(t, 9, loaded.Hour)
	assert.Equal(t, "agenda", loaded.Notes)
}

func TestLoadTaskMissing(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.LoadTask("nope")
	assert.True(t, errors.Is(err, board.ErrNotFound))
}

func TestLoadTasksCreationOrder(t *testing.T) {
	s := setupTestStore(t)
	base := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.SaveTask(sampleTask("zz", board.Monday, 9, base)))
	require.NoError(t, s.SaveTask(sampleTask("aa", board.Tuesday, 10, base.Add(time.Hour))))
	require.NoError(t, s.SaveTask(sampleTask("mm", board.Friday, 11, base.Add(-time.Hour))))

	tasks, err := s.LoadTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "mm", tasks[0].ID)
	assert.Equal(t, "zz", tasks[1].ID)
	assert.Equal(t, "aa", tasks[2].ID)
}

func TestLoadTasksSkipsBrokenFiles(t *testing.T) {
	s := setupTestStore(t)
	created := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.SaveTask(sampleTask("good", board.Monday, 9, created)))
	require.NoError(t, os.WriteFile(filepath.Join(s.TasksDir(), "bad.md"), []byte("no frontmatter"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(s.TasksDir(), "notes.txt"), []byte("ignored"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(s.TasksDir(), "subdir.md"), 0755))

	tasks, err := s.LoadTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "good", tasks[0].ID)
}

func TestDeleteTask(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.SaveTask(sampleTask("t1", board.Monday, 9, time.Now())))
	require.NoError(t, s.DeleteTask("t1"))

	_, err := s.LoadTask("t1")
	assert.Error(t, err)

	err = s.DeleteTask("t1")
	assert.True(t, errors.Is(err, board.ErrNotFound))

	// The journal side tolerates files already removed on disk.
	assert.NoError(t, s.Remove("t1"))
}

func TestRejectsPathLikeIDs(t *testing.T) {
	s := setupTestStore(t)

	for _, id := range []string{"", "..", "a/b", `a\b`} {
		assert.Error(t, s.SaveTask(board.Task{ID: id, Day: board.Monday, Hour: 9}), id)
		_, err := s.LoadTask(id)
		assert.Error(t, err, id)
	}
}

func TestSearchTasks(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now()

	a := sampleTask("a", board.Monday, 9, now)
	a.Title = "Write RFC"
	b := sampleTask("b", board.Monday, 10, now)
	b.ProjectName = "rfc-process"
	c := sampleTask("c", board.Monday, 11, now)
	c.Notes = "unrelated"
	for _, task := range []board.Task{a, b, c} {
		require.NoError(t, s.SaveTask(task))
	}

	matches, err := s.SearchTasks("RFC")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestStoreAsEngineJournal(t *testing.T) {
	s := setupTestStore(t)
	e, err := board.NewEngine(board.DefaultWorkingHours, board.WithJournal(s))
	require.NoError(t, err)

	task, err := e.Create(board.Monday, 9, board.Details{Title: "Standup"})
	require.NoError(t, err)
	_, err = e.Move(task.ID, board.Tuesday, 14)
	require.NoError(t, err)

	loaded, err := s.LoadTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, board.Tuesday, loaded.Day)
	assert.Equal(t, 14, loaded.Hour)

	// A fresh engine rebuilt from disk sees the same board.
	fresh, err := board.NewEngine(board.DefaultWorkingHours)
	require.NoError(t, err)
	tasks, err := s.LoadTasks()
	require.NoError(t, err)
	require.NoError(t, fresh.Replace(tasks))

	got, err := fresh.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Standup", got.Title)

	_, err = e.Delete(task.ID)
	require.NoError(t, err)
	_, err = os.Stat(s.TaskPath(task.ID))
	assert.True(t, os.IsNotExist(err))
}
