// Package badger provides a task store backed by a Badger embedded
// key-value database. Task names are the keys; Badger iterates keys in
// order, so loading comes back sorted by name.
package badger

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"

	"github.com/davidvella/skipheap/task"
	"github.com/dgraph-io/badger/v4"
)

// Options configures the storage.
type Options struct {
	// Path is the directory for the database files. Ignored when InMemory
	// is true.
	Path string

	// InMemory disables disk persistence. Useful for testing.
	InMemory bool

	// SyncWrites makes every write wait for the disk.
	SyncWrites bool
}

// Store persists tasks in a Badger database, gob-encoded.
type Store struct {
	db *badger.DB
}

func NewStore(opts Options) (*Store, error) {
	badgerOpts := badger.DefaultOptions(opts.Path).
		WithInMemory(opts.InMemory).
		WithSyncWrites(opts.SyncWrites).
		WithLogger(nil)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db at %s: %w", opts.Path, err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Put(_ context.Context, t task.Task) error {
	value, err := encode(t)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(t.Name), value)
	})
}

func (s *Store) Delete(_ context.Context, name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(name))
	})
}

func (s *Store) Load(_ context.Context) ([]task.Task, error) {
	var tasks []task.Task

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				t, err := decode(val)
				if err != nil {
					return err
				}
				tasks = append(tasks, t)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tasks, nil
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
