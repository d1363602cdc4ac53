// Package store implements the task store: an ordered, id-unique task
// collection with CRUD operations, filtered views, and aggregate counts,
// synchronized to a persistence slot after every mutation.
package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/tidylist-io/tidylist/internal/models"
	"github.com/tidylist-io/tidylist/internal/slot"
)

// DefaultKey is the slot key the collection is stored under.
const DefaultKey = "tasks"

// Stats holds the aggregate counts view. Active + Completed == Total.
type Stats struct {
	Total     int
	Active    int
	Completed int
}

// Store owns the task collection. It is a plain struct passed by
// reference; all operations are synchronous and either fully apply or
// fully fail. A failed slot write is the one exception: the mutation
// stays applied in memory and the write failure is reported as a
// *PersistenceError alongside the result.
type Store struct {
	slot  slot.Slot
	key   string
	clock Clock
	ids   IDGenerator
	tasks []*models.Task
}

// Option configures a Store at construction.
type Option func(*Store)

// WithClock replaces the system clock, for deterministic tests.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithIDGenerator replaces the UUID generator, for deterministic tests.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// WithKey changes the slot key the collection is stored under.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// Open loads the collection from the slot, or seeds sample tasks when the
// slot is empty. The slot is read exactly once, here.
func Open(sl slot.Slot, opts ...Option) (*Store, error) {
	s := &Store{
		slot:  sl,
		key:   DefaultKey,
		clock: SystemClock{},
		ids:   UUIDGenerator{},
	}
	for _, opt := range opts {
		opt(s)
	}

	blob, ok, err := sl.Get(s.key)
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	if !ok {
		s.tasks = sampleTasks(s.clock.Now())
		if err := s.persist(); err != nil {
			return nil, err
		}
		return s, nil
	}

	tasks, err := decodeTasks(blob)
	if err != nil {
		return nil, err
	}
	s.tasks = tasks
	return s, nil
}

// sampleTasks builds the first-run collection: three active tasks (two of
// them usage tips) and one pre-completed, with synthetic ids.
func sampleTasks(now time.Time) []*models.Task {
	texts := []struct {
		text      string
		completed bool
	}{
		{"Tip: add a task with 'tidylist add <text>'", false},
		{"Tip: press f in the TUI to cycle filters", false},
		{"Plan something worth doing", false},
		{"Install tidylist", true},
	}

	tasks := make([]*models.Task, 0, len(texts))
	for i, t := range texts {
		task := models.NewTask(strconv.Itoa(i+1), t.text, now)
		task.Completed = t.completed
		tasks = append(tasks, task)
	}
	return tasks
}

// Create adds a new task at the front of the collection.
// Whitespace-only text is rejected with a *ValidationError and the
// collection is left unchanged.
func (s *Store) Create(text string) (*models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errEmptyText()
	}

	id := s.freshID()
	task := models.NewTask(id, text, s.clock.Now())
	s.tasks = append([]*models.Task{task}, s.tasks...)

	if err := s.persist(); err != nil {
		return task.Clone(), err
	}
	return task.Clone(), nil
}

// freshID draws ids until one does not collide with the collection.
// UUIDs make a retry vanishingly rare but test generators may collide.
func (s *Store) freshID() string {
	for {
		id := s.ids.NewID()
		if s.find(id) == -1 {
			return id
		}
	}
}

// List returns tasks in collection order, narrowed by a case-insensitive
// substring search over the text and then by completion status. Pure read.
func (s *Store) List(filter models.FilterStatus, search string) []*models.Task {
	out := []*models.Task{}
	for _, t := range s.tasks {
		if !t.MatchesSearch(search) {
			continue
		}
		if !filter.Matches(t) {
			continue
		}
		out = append(out, t.Clone())
	}
	return out
}

// Toggle flips a task's completion state.
func (s *Store) Toggle(id string) (*models.Task, error) {
	i := s.find(id)
	if i == -1 {
		return nil, &NotFoundError{ID: id}
	}

	t := s.tasks[i]
	t.Completed = !t.Completed
	t.Touch(s.clock.Now())

	if err := s.persist(); err != nil {
		return t.Clone(), err
	}
	return t.Clone(), nil
}

// Edit replaces a task's text, applying the same trim and empty check as
// Create. Failures leave the collection untouched.
func (s *Store) Edit(id, text string) (*models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errEmptyText()
	}

	i := s.find(id)
	if i == -1 {
		return nil, &NotFoundError{ID: id}
	}

	t := s.tasks[i]
	t.Text = text
	t.Touch(s.clock.Now())

	if err := s.persist(); err != nil {
		return t.Clone(), err
	}
	return t.Clone(), nil
}

// Delete removes a task from the collection.
func (s *Store) Delete(id string) error {
	i := s.find(id)
	if i == -1 {
		return &NotFoundError{ID: id}
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return s.persist()
}

// ClearCompleted removes every completed task and returns how many were
// removed. Zero is an informational result, not an error.
func (s *Store) ClearCompleted() (int, error) {
	kept := s.tasks[:0:0]
	removed := 0
	for _, t := range s.tasks {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	if removed == 0 {
		return 0, nil
	}

	s.tasks = kept
	return removed, s.persist()
}

// MarkAllComplete completes every active task, persisting once after the
// batch, and returns how many tasks changed.
func (s *Store) MarkAllComplete() (int, error) {
	now := s.clock.Now()
	changed := 0
	for _, t := range s.tasks {
		if t.Completed {
			continue
		}
		t.Completed = true
		t.Touch(now)
		changed++
	}
	if changed == 0 {
		return 0, nil
	}
	return changed, s.persist()
}

// Statistics returns the aggregate counts view. Pure read.
func (s *Store) Statistics() Stats {
	st := Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		} else {
			st.Active++
		}
	}
	return st
}

// find returns the index of id in the collection, or -1.
func (s *Store) find(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the whole collection to the slot as one blob.
func (s *Store) persist() error {
	blob, err := encodeTasks(s.tasks)
	if err != nil {
		return &PersistenceError{Err: err}
	}
	if err := s.slot.Set(s.key, blob); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}
