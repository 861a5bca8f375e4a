// Package local provides a task store backed by a segmented log file on the
// local filesystem.
package local

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/davidvella/skipheap/recordio"
	"github.com/davidvella/skipheap/task"
	"github.com/davidvella/skipheap/tasklog"
)

// Store appends every mutation to a task log file and reconstructs the task
// set by replaying it.
type Store struct {
	mu     sync.Mutex
	path   string
	writer *tasklog.Writer
}

// NewStore opens (or creates) the log file at path. maxRecords bounds the
// number of records buffered per log segment.
func NewStore(path string, maxRecords int) (*Store, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}

	writer, err := tasklog.NewWriter(file, maxRecords)
	if err != nil {
		return nil, err
	}

	return &Store{
		path:   path,
		writer: writer,
	}, nil
}

func (s *Store) Put(_ context.Context, t task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writer.Append(recordio.Record{Op: recordio.OpSet, Task: t})
}

func (s *Store) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writer.Append(recordio.Record{Op: recordio.OpDelete, Task: task.Task{Name: name}})
}

// Load flushes any buffered records and replays the log from disk, returning
// the surviving tasks in name order.
func (s *Store) Load(_ context.Context) ([]task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writer.Flush(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", s.path, err)
	}
	defer file.Close()

	var tasks []task.Task
	for rec := range tasklog.NewReader(file).All() {
		tasks = append(tasks, rec.Task)
	}
	return tasks, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writer.Close()
}
