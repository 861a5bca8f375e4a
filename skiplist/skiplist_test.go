package skiplist_test

import (
	"math/rand"
	"testing"

	"github.com/davidvella/skipheap/skiplist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_InsertSearch(t *testing.T) {
	tests := []struct {
		name    string
		insert  map[string]int
		search  string
		want    int
		wantHit bool
	}{
		{
			name:    "hit after inserts",
			insert:  map[string]int{"a": 1, "b": 2, "c": 3},
			search:  "b",
			want:    2,
			wantHit: true,
		},
		{
			name:    "miss on absent key",
			insert:  map[string]int{"a": 1, "c": 3},
			search:  "b",
			wantHit: false,
		},
		{
			name:    "miss on empty list",
			insert:  nil,
			search:  "a",
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := skiplist.New[string, int]()
			for k, v := range tt.insert {
				list.Insert(k, v)
			}

			got, ok := list.Search(tt.search)
			assert.Equal(t, tt.wantHit, ok)
			if tt.wantHit {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestList_OrderingInvariant(t *testing.T) {
	list := skiplist.New[int, int](
		skiplist.WithRand(rand.New(rand.NewSource(1))),
	)

	keys := rand.New(rand.NewSource(2)).Perm(500)
	for _, k := range keys {
		list.Insert(k, k*10)
	}

	for _, k := range keys {
		if k%3 == 0 {
			list.Delete(k)
		}
	}

	prev := -1
	count := 0
	for k, v := range list.All() {
		require.Greater(t, k, prev, "traversal must yield strictly increasing keys")
		require.Equal(t, k*10, v)
		prev = k
		count++
	}
	assert.Equal(t, list.Len(), count)
}

func TestList_DenseKeysLowMaxLevel(t *testing.T) {
	list := skiplist.New[int, string](
		skiplist.WithMaxLevel(4),
		skiplist.WithRand(rand.New(rand.NewSource(7))),
	)

	keys := rand.New(rand.NewSource(8)).Perm(100)
	values := make(map[int]string, 100)
	for _, k := range keys {
		key := k + 1 // keys 1..100
		values[key] = string(rune('a' + key%26))
		list.Insert(key, values[key])
	}

	for key := 1; key <= 100; key++ {
		got, ok := list.Search(key)
		require.True(t, ok, "key %d must be found", key)
		require.Equal(t, values[key], got)
	}

	for key := 2; key <= 100; key += 2 {
		list.Delete(key)
	}

	for key := 1; key <= 100; key++ {
		_, ok := list.Search(key)
		if key%2 == 0 {
			assert.False(t, ok, "even key %d must be gone", key)
		} else {
			assert.True(t, ok, "odd key %d must remain", key)
		}
	}
	assert.Equal(t, 50, list.Len())
}

func TestList_DeleteAbsentIsNoOp(t *testing.T) {
	list := skiplist.New[string, int]()
	list.Insert("a", 1)
	list.Insert("b", 2)

	list.Delete("missing")
	list.Delete("") // before the first key

	assert.Equal(t, 2, list.Len())
	v, ok := list.Search("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestList_DeleteEmptiesList(t *testing.T) {
	list := skiplist.New[string, int]()
	list.Insert("a", 1)
	list.Delete("a")

	assert.Equal(t, 0, list.Len())
	_, ok := list.Search("a")
	assert.False(t, ok)

	// Deleting again stays a no-op.
	list.Delete("a")
	assert.Equal(t, 0, list.Len())
}

func TestList_SkewedProbability(t *testing.T) {
	// With probability near 1 every node tops out at the level cap; the
	// structure degenerates but must stay correct.
	list := skiplist.New[int, int](
		skiplist.WithMaxLevel(2),
		skiplist.WithProbability(0.99),
		skiplist.WithRand(rand.New(rand.NewSource(3))),
	)

	for i := 0; i < 64; i++ {
		list.Insert(i, i)
	}

	for i := 0; i < 64; i++ {
		v, ok := list.Search(i)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestList_AllStopsEarly(t *testing.T) {
	list := skiplist.New[int, int]()
	for i := 0; i < 10; i++ {
		list.Insert(i, i)
	}

	seen := 0
	for range list.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)

	// The iterator is restartable.
	seen = 0
	for range list.All() {
		seen++
	}
	assert.Equal(t, 10, seen)
}
