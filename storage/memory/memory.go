// Package memory provides an in-memory task store, useful for tests and
// ephemeral setups.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/davidvella/skipheap/task"
)

// Store keeps tasks in a map guarded by a mutex.
type Store struct {
	mu    sync.RWMutex
	tasks map[string]task.Task
}

func NewStore() *Store {
	return &Store{
		tasks: make(map[string]task.Task),
	}
}

func (s *Store) Put(_ context.Context, t task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.Name] = t
	return nil
}

func (s *Store) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, name)
	return nil
}

func (s *Store) Load(_ context.Context) ([]task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return task.ByName(tasks[i], tasks[j])
	})
	return tasks, nil
}

func (s *Store) Close() error {
	return nil
}
