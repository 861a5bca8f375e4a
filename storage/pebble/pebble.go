// Package pebble provides a task store backed by a Pebble embedded
// key-value database. Task names are the keys, so iteration comes back in
// name order for free.
package pebble

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/davidvella/skipheap/task"
)

// Options configures the storage.
type Options struct {
	Path         string
	CacheSize    int64
	MaxOpenFiles int
}

// Store persists tasks in a Pebble database, gob-encoded.
type Store struct {
	db *pebble.DB
}

func NewStore(opts Options) (*Store, error) {
	pebbleOpts := &pebble.Options{
		MaxOpenFiles: opts.MaxOpenFiles,
	}
	if opts.CacheSize > 0 {
		pebbleOpts.Cache = pebble.NewCache(opts.CacheSize)
	}

	db, err := pebble.Open(opts.Path, pebbleOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble db at %s: %w", opts.Path, err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Put(_ context.Context, t task.Task) error {
	value, err := encode(t)
	if err != nil {
		return err
	}
	return s.db.Set([]byte(t.Name), value, pebble.Sync)
}

func (s *Store) Delete(_ context.Context, name string) error {
	return s.db.Delete([]byte(name), pebble.Sync)
}

func (s *Store) Load(_ context.Context) ([]task.Task, error) {
	it, err := s.db.NewIter(nil)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var tasks []task.Task
	for it.First(); it.Valid(); it.Next() {
		t, err := decode(it.Value())
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, it.Error()
}

func (s *Store) Close() error {
	return s.db.Close()
}

func encode(t task.Task) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(t); err != nil {
		return nil, fmt.Errorf("failed to encode task %s: %w", t.Name, err)
	}
	return buf.Bytes(), nil
}

func decode(b []byte) (task.Task, error) {
	var t task.Task
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&t); err != nil {
		return task.Task{}, fmt.Errorf("failed to decode task: %w", err)
	}
	return t, nil
}
