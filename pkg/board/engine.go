package board

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const maxIDAttempts = 16

// Journal persists task changes. The engine writes through it before
// committing a change in memory, so a failed write leaves the store as it was.
type Journal interface {
	Put(t Task) error
	Remove(id string) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDFunc overrides the task id generator (uuid by default).
func WithIDFunc(f func() string) Option {
	return func(e *Engine) { e.newID = f }
}

// WithJournal persists every mutation through j.
func WithJournal(j Journal) Option {
	return func(e *Engine) { e.journal = j }
}

// WithClock overrides the time source used for Created/Updated.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// Engine is the only mutator of a task store. All methods are safe for
// concurrent use; mutations are serialized.
type Engine struct {
	mu      sync.RWMutex
	hours   WorkingHours
	tasks   *Store
	retired map[string]bool

	newID   func() string
	journal Journal
	now     func() time.Time
}

// NewEngine returns an engine with an empty store.
func NewEngine(hours WorkingHours, opts ...Option) (*Engine, error) {
	if err := hours.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		hours:   hours,
		tasks:   NewStore(),
		retired: make(map[string]bool),
		newID:   uuid.NewString,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// WorkingHours returns the engine's schedulable range.
func (e *Engine) WorkingHours() WorkingHours {
	return e.hours
}

func (e *Engine) checkSlot(day Weekday, hour int) error {
	if !day.Valid() {
		return fmt.Errorf("day %q: %w", day, ErrInvalidSlot)
	}
	if !e.hours.Contains(hour) {
		return fmt.Errorf("hour %d outside working hours %s: %w", hour, e.hours, ErrInvalidSlot)
	}
	return nil
}

func (e *Engine) allocateID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := strings.TrimSpace(e.newID())
		if id != "" && !e.tasks.Has(id) && !e.retired[id] {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not allocate a fresh task id after %d attempts", maxIDAttempts)
}

// commit persists t and then stores it.
func (e *Engine) commit(t Task) error {
	if e.journal != nil {
		if err := e.journal.Put(t); err != nil {
			return fmt.Errorf("persisting task %s: %w", t.ID, err)
		}
	}
	e.tasks.put(t)
	return nil
}

// Create places a new incomplete task in (day, hour).
func (e *Engine) Create(day Weekday, hour int, d Details) (Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkSlot(day, hour); err != nil {
		return Task{}, err
	}
	id, err := e.allocateID()
	if err != nil {
		return Task{}, err
	}

	now := e.now()
	t := Task{
		ID:          id,
		Title:       d.Title,
		Day:         day,
		Hour:        hour,
		Completed:   false,
		ProjectName: d.ProjectName,
		Color:       d.Color,
		Notes:       d.Notes,
		Created:     now,
		Updated:     now,
	}
	if err := e.commit(t); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Edit updates display fields of a task; its slot is never touched.
func (e *Engine) Edit(id string, p Patch) (Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tasks.Get(id)
	if !ok {
		return Task{}, fmt.Errorf("edit %s: %w", id, ErrNotFound)
	}
	if p.Empty() {
		return t, nil
	}
	p.apply(&t)
	t.Updated = e.now()
	if err := e.commit(t); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Move reassigns a task's slot. Moving to the current slot is a no-op.
func (e *Engine) Move(id string, day Weekday, hour int) (Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tasks.Get(id)
	if !ok {
		return Task{}, fmt.Errorf("move %s: %w", id, ErrNotFound)
	}
	if err := e.checkSlot(day, hour); err != nil {
		return Task{}, err
	}
	if t.Day == day && t.Hour == hour {
		return t, nil
	}

	t.Day = day
	t.Hour = hour
	t.Updated = e.now()
	if err := e.commit(t); err != nil {
		return Task{}, err
	}
	return t, nil
}

// ToggleCompletion flips a task between complete and incomplete.
func (e *Engine) ToggleCompletion(id string) (Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tasks.Get(id)
	if !ok {
		return Task{}, fmt.Errorf("toggle %s: %w", id, ErrNotFound)
	}
	t.Completed = !t.Completed
	t.Updated = e.now()
	if err := e.commit(t); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Delete removes a task. Its id is retired and never handed out again.
func (e *Engine) Delete(id string) (Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tasks.Get(id)
	if !ok {
		return Task{}, fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	if e.journal != nil {
		if err := e.journal.Remove(id); err != nil {
			return Task{}, fmt.Errorf("removing task %s: %w", id, err)
		}
	}
	e.tasks.remove(id)
	e.retired[id] = true
	return t, nil
}

// Replace swaps the whole store for tasks loaded by a collaborator, such as
// the file store after an external change. Tasks keep their hours even when
// outside the working range; the grid simply does not show them. Nothing is
// replaced if any record is malformed.
func (e *Engine) Replace(tasks []Task) error {
	next := NewStore()
	for _, t := range tasks {
		if strings.TrimSpace(t.ID) == "" {
			return fmt.Errorf("task %q has no id", t.Title)
		}
		if next.Has(t.ID) {
			return fmt.Errorf("duplicate task id %s", t.ID)
		}
		if !t.Day.Valid() {
			return fmt.Errorf("task %s day %q: %w", t.ID, t.Day, ErrInvalidSlot)
		}
		next.put(t)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for id := range e.retired {
		if next.Has(id) {
			delete(e.retired, id)
		}
	}
	for _, id := range e.tasks.order {
		if !next.Has(id) {
			e.retired[id] = true
		}
	}
	e.tasks = next
	return nil
}

// Get returns the task with the given id.
func (e *Engine) Get(id string) (Task, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	t, ok := e.tasks.Get(id)
	if !ok {
		return Task{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	return t, nil
}

// Tasks returns a snapshot of every task in insertion order.
func (e *Engine) Tasks() []Task {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tasks.Snapshot()
}

// Index partitions a consistent snapshot of the store into view.
func (e *Engine) Index(view WeekView) *Grid {
	return IndexTasks(e.Tasks(), view)
}
