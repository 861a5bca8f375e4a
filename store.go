package skipheap

import (
	"context"

	"github.com/davidvella/skipheap/task"
)

// Store persists the task set. The storage subpackages provide
// implementations for memory, a local log file, Pebble and Badger; the
// Manager works against any of them and against none at all.
type Store interface {
	// Put stores or replaces the task under its name.
	Put(ctx context.Context, t task.Task) error

	// Delete removes the task with the given name.
	Delete(ctx context.Context, name string) error

	// Load returns every stored task.
	Load(ctx context.Context) ([]task.Task, error)

	// Close releases any resources held by the store.
	Close() error
}
