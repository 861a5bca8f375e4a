package skipheap

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sort"
	"sync"
	"time"

	"github.com/davidvella/skipheap/fibheap"
	"github.com/davidvella/skipheap/skiplist"
	"github.com/davidvella/skipheap/task"
)

var (
	ErrTaskExists   = errors.New("skipheap: task already exists")
	ErrTaskNotFound = errors.New("skipheap: task not found")
)

// Manager keeps an ordered index and a priority queue synchronized over one
// task set: a skip list keyed by task name and a Fibonacci heap keyed by
// priority. Every compound operation runs under one mutex, so a state where
// only one of the two structures has been updated is never observable.
//
// The heap's reduced API has no in-place priority mutation, so removals and
// field updates rebuild the heap from the index's ordered traversal.
type Manager struct {
	mu      sync.Mutex
	index   *skiplist.List[string, task.Task]
	heap    *fibheap.Heap[int, task.Task]
	store   Store
	confirm Confirmer
}

// NewManager creates a manager and, when a store is configured, loads the
// persisted task set into both structures.
func NewManager(ctx context.Context, opts ...Option) (*Manager, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Manager{
		index:   skiplist.New[string, task.Task](o.listOptions...),
		heap:    fibheap.New[int, task.Task](byUrgency),
		store:   o.store,
		confirm: o.confirm,
	}

	if m.store != nil {
		tasks, err := m.store.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("skipheap: failed to load tasks: %w", err)
		}
		for _, t := range tasks {
			m.index.Insert(t.Name, t)
			m.heap.Insert(t.Priority, t)
		}
	}

	return m, nil
}

// byUrgency orders priorities so that lower values are more urgent.
func byUrgency(a, b int) bool {
	return a < b
}

// Add inserts a task into both structures and persists it. When the name is
// already taken the configured Confirmer decides whether the new task
// replaces the old one; without a Confirmer, Add returns ErrTaskExists.
func (m *Manager) Add(ctx context.Context, t task.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.index.Search(t.Name); exists {
		if m.confirm == nil || !m.confirm.Confirm(t.Name) {
			return fmt.Errorf("%w: %s", ErrTaskExists, t.Name)
		}
		m.index.Delete(t.Name)
		m.index.Insert(t.Name, t)
		m.rebuildHeap()
	} else {
		m.index.Insert(t.Name, t)
		m.heap.Insert(t.Priority, t)
	}

	return m.persistPut(ctx, t)
}

// Remove deletes the named task from both structures. Removing an absent
// name is a no-op.
func (m *Manager) Remove(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.index.Search(name); !exists {
		return nil
	}

	m.index.Delete(name)
	m.rebuildHeap()

	return m.persistDelete(ctx, name)
}

// Get returns the named task. The boolean is false when no such task
// exists.
func (m *Manager) Get(name string) (task.Task, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.index.Search(name)
}

// Next returns the most urgent task without removing it.
func (m *Manager) Next() (task.Task, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.heap.Peek()
}

// CompleteNext removes the most urgent task from both structures and
// persists the removal. The boolean is false when no tasks remain.
func (m *Manager) CompleteNext(ctx context.Context) (task.Task, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.heap.ExtractMin()
	if !ok {
		return task.Task{}, false, nil
	}

	m.index.Delete(t.Name)

	return t, true, m.persistDelete(ctx, t.Name)
}

// Update applies field updates to the named task, rebuilds the heap and
// persists the result. Returns ErrTaskNotFound when the name is absent.
func (m *Manager) Update(ctx context.Context, name string, updates ...UpdateOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, exists := m.index.Search(name)
	if !exists {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, name)
	}

	for _, update := range updates {
		update(&t)
	}

	m.index.Delete(name)
	m.index.Insert(name, t)
	m.rebuildHeap()

	return m.persistPut(ctx, t)
}

// Len returns the number of tasks under management.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.index.Len()
}

// All returns an iterator over a snapshot of the task set in ascending name
// order. The snapshot is taken when All is called, so the iterator stays
// valid across later mutations.
func (m *Manager) All() iter.Seq[task.Task] {
	tasks := m.Tasks()
	return func(yield func(task.Task) bool) {
		for _, t := range tasks {
			if !yield(t) {
				return
			}
		}
	}
}

// Tasks returns every task in ascending name order.
func (m *Manager) Tasks() []task.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	tasks := make([]task.Task, 0, m.index.Len())
	for _, t := range m.index.All() {
		tasks = append(tasks, t)
	}
	return tasks
}

// ByPriority returns the incomplete tasks sorted by priority, most urgent
// first.
func (m *Manager) ByPriority() []task.Task {
	tasks := m.incomplete()
	sort.Slice(tasks, func(i, j int) bool {
		return task.ByPriority(tasks[i], tasks[j])
	})
	return tasks
}

// ByDue returns the incomplete tasks sorted by due date, earliest first.
func (m *Manager) ByDue() []task.Task {
	tasks := m.incomplete()
	sort.Slice(tasks, func(i, j int) bool {
		return task.ByDue(tasks[i], tasks[j])
	})
	return tasks
}

// Close releases the configured store, if any.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil {
		return nil
	}
	return m.store.Close()
}

func (m *Manager) incomplete() []task.Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	var tasks []task.Task
	for _, t := range m.index.All() {
		if t.Incomplete() {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// rebuildHeap drains the index's ordered traversal into a fresh heap. The
// reduced heap API has no targeted removal or priority mutation, so a full
// rebuild is the only way to reflect those changes. Callers hold the mutex.
func (m *Manager) rebuildHeap() {
	heap := fibheap.New[int, task.Task](byUrgency)
	for _, t := range m.index.All() {
		heap.Insert(t.Priority, t)
	}
	m.heap = heap
}

func (m *Manager) persistPut(ctx context.Context, t task.Task) error {
	if m.store == nil {
		return nil
	}
	if err := m.store.Put(ctx, t); err != nil {
		return fmt.Errorf("skipheap: failed to persist task %s: %w", t.Name, err)
	}
	return nil
}

func (m *Manager) persistDelete(ctx context.Context, name string) error {
	if m.store == nil {
		return nil
	}
	if err := m.store.Delete(ctx, name); err != nil {
		return fmt.Errorf("skipheap: failed to persist removal of task %s: %w", name, err)
	}
	return nil
}

// UpdateOption applies a field update to a task.
type UpdateOption func(*task.Task)

// SetPriority updates the task's priority.
func SetPriority(priority int) UpdateOption {
	return func(t *task.Task) {
		t.Priority = priority
	}
}

// SetDue updates the task's due date.
func SetDue(due time.Time) UpdateOption {
	return func(t *task.Task) {
		t.Due = due
	}
}

// SetStatus updates the task's status.
func SetStatus(status task.Status) UpdateOption {
	return func(t *task.Task) {
		t.Status = status
	}
}
