package skiplist

import (
	"cmp"
	"iter"
	"math/rand"
)

const (
	defaultMaxLevel    = 16
	defaultProbability = 0.5
)

// options defines the configuration for a List.
type options struct {
	maxLevel    int
	probability float64
	rnd         *rand.Rand
}

// Option is a function that configures a List.
type Option func(*options)

// WithMaxLevel caps the height of node towers. Level draws beyond the cap
// are silently clamped.
func WithMaxLevel(maxLevel int) Option {
	return func(o *options) {
		if maxLevel > 0 {
			o.maxLevel = maxLevel
		}
	}
}

// WithProbability sets the per-level promotion probability. Values outside
// (0, 1) are ignored.
func WithProbability(p float64) Option {
	return func(o *options) {
		if p > 0 && p < 1 {
			o.probability = p
		}
	}
}

// WithRand sets the random source used for level draws. Useful for
// deterministic tests.
func WithRand(rnd *rand.Rand) Option {
	return func(o *options) {
		if rnd != nil {
			o.rnd = rnd
		}
	}
}

func defaultOptions() options {
	return options{
		maxLevel:    defaultMaxLevel,
		probability: defaultProbability,
		rnd:         rand.New(rand.NewSource(rand.Int63())),
	}
}

// node is a single tower in the list. forward has one slot per level the
// node participates in; slot 0 links the fully ordered chain.
type node[K cmp.Ordered, V any] struct {
	key     K
	value   V
	forward []*node[K, V]
}

// List is a probabilistically balanced ordered map. Search, Insert and
// Delete run in O(log n) expected time over the random level draws; there is
// no protection against adversarial inputs, so the worst case is O(n).
type List[K cmp.Ordered, V any] struct {
	opts   options
	header *node[K, V]
	level  int
	length int
}

// New creates an empty List.
func New[K cmp.Ordered, V any](opts ...Option) *List[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &List[K, V]{
		opts: o,
		header: &node[K, V]{
			forward: make([]*node[K, V], o.maxLevel+1),
		},
	}
}

// Len returns the number of entries in the list.
func (l *List[K, V]) Len() int {
	return l.length
}

// randomLevel draws a geometric level, capped at the configured maximum.
func (l *List[K, V]) randomLevel() int {
	level := 0
	for l.opts.rnd.Float64() < l.opts.probability && level < l.opts.maxLevel {
		level++
	}
	return level
}

// findUpdate descends from the current top level to level 0, recording the
// last node visited at each level.
func (l *List[K, V]) findUpdate(key K) []*node[K, V] {
	update := make([]*node[K, V], l.opts.maxLevel+1)
	current := l.header

	for i := l.level; i >= 0; i-- {
		for current.forward[i] != nil && current.forward[i].key < key {
			current = current.forward[i]
		}
		update[i] = current
	}

	return update
}

// Insert splices a new entry into the list. The list does not reject
// duplicate keys; callers that need unique keys must check with Search
// first.
func (l *List[K, V]) Insert(key K, value V) {
	update := l.findUpdate(key)
	level := l.randomLevel()

	if level > l.level {
		for i := l.level + 1; i <= level; i++ {
			update[i] = l.header
		}
		l.level = level
	}

	newNode := &node[K, V]{
		key:     key,
		value:   value,
		forward: make([]*node[K, V], level+1),
	}

	for i := 0; i <= level; i++ {
		newNode.forward[i] = update[i].forward[i]
		update[i].forward[i] = newNode
	}

	l.length++
}

// Delete removes the entry with the given key. Deleting an absent key is a
// no-op.
func (l *List[K, V]) Delete(key K) {
	update := l.findUpdate(key)
	current := update[0].forward[0]

	if current == nil || current.key != key {
		return
	}

	for i := 0; i <= l.level; i++ {
		if update[i].forward[i] != current {
			break
		}
		update[i].forward[i] = current.forward[i]
	}

	for l.level > 0 && l.header.forward[l.level] == nil {
		l.level--
	}

	l.length--
}

// Search returns the value stored under key. The boolean is false when the
// key is absent; absence is a normal outcome, not an error.
func (l *List[K, V]) Search(key K) (V, bool) {
	current := l.header

	for i := l.level; i >= 0; i-- {
		for current.forward[i] != nil && current.forward[i].key < key {
			current = current.forward[i]
		}
	}

	current = current.forward[0]
	if current != nil && current.key == key {
		return current.value, true
	}

	var zero V
	return zero, false
}

// All returns an iterator over every entry in ascending key order. The
// iterator is lazy and restartable and reflects the list as it stands when
// iteration begins; it offers no snapshot isolation across mutation.
func (l *List[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for current := l.header.forward[0]; current != nil; current = current.forward[0] {
			if !yield(current.key, current.value) {
				return
			}
		}
	}
}
