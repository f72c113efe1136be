package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStore_PutGetDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")

	store, err := Open(path)
	require.NoError(t, err)

	err = store.Put("alpha", testRecord{Name: "first", Count: 3})
	require.NoError(t, err)

	var out testRecord
	found, err := store.Get("alpha", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, testRecord{Name: "first", Count: 3}, out)

	err = store.Delete("alpha")
	require.NoError(t, err)

	found, err = store.Get("alpha", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_GetMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")

	store, err := Open(path)
	require.NoError(t, err)

	var out testRecord
	found, err := store.Get("missing", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, store.Has("missing"))
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Put("alpha", testRecord{Name: "first", Count: 1}))
	require.NoError(t, store.Put("beta", testRecord{Name: "second", Count: 2}))
	require.NoError(t, store.Delete("alpha"))

	reopened, err := Open(path)
	require.NoError(t, err)

	var out testRecord
	found, err := reopened.Get("beta", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", out.Name)

	assert.False(t, reopened.Has("alpha"))
}

func TestStore_DeleteMissingKeyIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")

	store, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, store.Delete("never-existed"))
}
