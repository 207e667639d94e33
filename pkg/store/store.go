package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/weekboard/weekboard/pkg/board"
	"github.com/weekboard/weekboard/pkg/log"
)

const taskExt = ".md"

// Store keeps one markdown file per task under <root>/tasks.
type Store struct {
	Root string
}

// NewStore creates a Store rooted at the given directory, creating the
// directory structure if it doesn't exist.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, "tasks"), 0755); err != nil {
		return nil, fmt.Errorf("creating tasks directory: %w", err)
	}
	return &Store{Root: root}, nil
}

// TasksDir returns the directory holding task files.
func (s *Store) TasksDir() string {
	return filepath.Join(s.Root, "tasks")
}

// TaskPath returns the file path for a task id.
func (s *Store) TaskPath(id string) string {
	return filepath.Join(s.TasksDir(), id+taskExt)
}

func checkID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("invalid task id %q", id)
	}
	return nil
}

// LoadTask reads a single task file.
func (s *Store) LoadTask(id string) (board.Task, error) {
	if err := checkID(id); err != nil {
		return board.Task{}, err
	}
	data, err := os.ReadFile(s.TaskPath(id))
	if errors.Is(err, fs.ErrNotExist) {
		return board.Task{}, fmt.Errorf("reading task %s: %w", id, board.ErrNotFound)
	}
	if err != nil {
		return board.Task{}, fmt.Errorf("reading task %s: %w", id, err)
	}

	t, err := ParseFrontmatter(string(data))
	if err != nil {
		return board.Task{}, fmt.Errorf("parsing task %s: %w", id, err)
	}
	t.ID = id
	return t, nil
}

// LoadTasks reads every task file in creation order. Broken files are
// logged and skipped.
func (s *Store) LoadTasks() ([]board.Task, error) {
	entries, err := os.ReadDir(s.TasksDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading tasks directory: %w", err)
	}

	var tasks []board.Task
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, taskExt) || strings.HasPrefix(name, ".") {
			continue
		}
		t, err := s.LoadTask(strings.TrimSuffix(name, taskExt))
		if err != nil {
			log.Error("skipping broken task file", err, "file", name)
			continue
		}
		tasks = append(tasks, t)
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].Created.Equal(tasks[j].Created) {
			return tasks[i].Created.Before(tasks[j].Created)
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

// SaveTask writes a task to disk.
func (s *Store) SaveTask(t board.Task) error {
	if err := checkID(t.ID); err != nil {
		return err
	}
	if err := os.MkdirAll(s.TasksDir(), 0755); err != nil {
		return fmt.Errorf("creating tasks directory: %w", err)
	}

	content, err := SerializeFrontmatter(t)
	if err != nil {
		return fmt.Errorf("serializing task: %w", err)
	}
	return os.WriteFile(s.TaskPath(t.ID), []byte(content), 0644)
}

// DeleteTask removes a task file.
func (s *Store) DeleteTask(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	err := os.Remove(s.TaskPath(id))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("task %s: %w", id, board.ErrNotFound)
	}
	return err
}

// Put implements board.Journal.
func (s *Store) Put(t board.Task) error {
	return s.SaveTask(t)
}

// Remove implements board.Journal. A file that is already gone is not an
// error: the engine is the source of truth for existence.
func (s *Store) Remove(id string) error {
	err := s.DeleteTask(id)
	if errors.Is(err, board.ErrNotFound) {
		return nil
	}
	return err
}

// SearchTasks returns tasks whose title, project or notes contain query,
// case-insensitively.
func (s *Store) SearchTasks(query string) ([]board.Task, error) {
	tasks, err := s.LoadTasks()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	var matches []board.Task
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.ProjectName), query) ||
			strings.Contains(strings.ToLower(t.Notes), query) {
			matches = append(matches, t)
		}
	}
	return matches, nil
}
