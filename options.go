package skipheap

import (
	"github.com/davidvella/skipheap/skiplist"
)

// options defines all configuration options for the manager.
type options struct {
	store       Store     // Persistence for the task set, nil for none
	confirm     Confirmer // Duplicate-name policy, nil rejects duplicates
	listOptions []skiplist.Option
}

// Option is a function that configures the manager options.
type Option func(*options)

// WithStore sets the persistence backend for the task set.
func WithStore(store Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithConfirmer sets the policy consulted when a task name collides with an
// existing task.
func WithConfirmer(c Confirmer) Option {
	return func(o *options) {
		o.confirm = c
	}
}

// WithMaxLevel caps the tower height of the underlying ordered index.
func WithMaxLevel(maxLevel int) Option {
	return func(o *options) {
		o.listOptions = append(o.listOptions, skiplist.WithMaxLevel(maxLevel))
	}
}

// WithProbability sets the level-promotion probability of the underlying
// ordered index.
func WithProbability(p float64) Option {
	return func(o *options) {
		o.listOptions = append(o.listOptions, skiplist.WithProbability(p))
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		store:   nil,
		confirm: nil,
	}
}
