package local_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/davidvella/skipheap/storage/local"
	"github.com/davidvella/skipheap/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.log")

	store, err := local.NewStore(path, 2)
	require.NoError(t, err)

	due := time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Put(ctx, task.Task{Name: "b", Priority: 2, Due: due, Status: task.StatusIncomplete}))
	require.NoError(t, store.Put(ctx, task.Task{Name: "a", Priority: 1, Due: due, Status: task.StatusIncomplete}))
	require.NoError(t, store.Put(ctx, task.Task{Name: "c", Priority: 3, Due: due, Status: task.StatusIncomplete}))

	// Load sees flushed and buffered records alike.
	tasks, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "a", tasks[0].Name)
	assert.Equal(t, "b", tasks[1].Name)
	assert.Equal(t, "c", tasks[2].Name)

	require.NoError(t, store.Delete(ctx, "b"))
	require.NoError(t, store.Close())

	// Reopen: the log replays to the same surviving set.
	store, err = local.NewStore(path, 2)
	require.NoError(t, err)
	defer store.Close()

	tasks, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].Name)
	assert.Equal(t, "c", tasks[1].Name)
}

func TestStore_ReplaceByName(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.log")

	store, err := local.NewStore(path, 10)
	require.NoError(t, err)
	defer store.Close()

	due := time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Put(ctx, task.Task{Name: "a", Priority: 1, Due: due}))
	require.NoError(t, store.Put(ctx, task.Task{Name: "a", Priority: 7, Due: due}))

	tasks, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 7, tasks[0].Priority)
}

func TestStore_EmptyLog(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.log")

	store, err := local.NewStore(path, 10)
	require.NoError(t, err)
	defer store.Close()

	tasks, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestNewStore_BadPath(t *testing.T) {
	_, err := local.NewStore(filepath.Join(t.TempDir(), "missing", "tasks.log"), 10)
	assert.Error(t, err)
}
