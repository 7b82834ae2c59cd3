package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageKey(t *testing.T) {
	assert.Equal(t, "usage_a@b.co_2026-08-31", UsageKey("a@b.co", "2026-08-31"))
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory()

	v, err := s.Get("missing")
	require.NoError(t, err)
	assert.Empty(t, v)

	ok, err := s.Has("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(KeyUserEmail, "a@b.co"))

	v, err = s.Get(KeyUserEmail)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", v)

	ok, err = s.Has(KeyUserEmail)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Delete(KeyUserEmail))
	ok, err = s.Has(KeyUserEmail)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := NewFile(path)
	require.NoError(t, err)

	v, err := s.Get("anything")
	require.NoError(t, err)
	assert.Empty(t, v, "missing file should read as empty state")

	require.NoError(t, s.Set(KeyTheme, "dark"))
	require.NoError(t, s.Set(UsageKey("a@b.co", "2026-08-31"), "3"))

	// A fresh instance over the same path sees the persisted values.
	reopened, err := NewFile(path)
	require.NoError(t, err)

	v, err = reopened.Get(KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	v, err = reopened.Get(UsageKey("a@b.co", "2026-08-31"))
	require.NoError(t, err)
	assert.Equal(t, "3", v)
}

func TestFileStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := NewFile(path)
	require.NoError(t, err)

	require.NoError(t, s.Set(KeyUserEmail, "a@b.co"))
	require.NoError(t, s.Delete(KeyUserEmail))

	ok, err := s.Has(KeyUserEmail)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreRejectsCorruptState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := NewFile(path)
	require.NoError(t, err)

	_, err = s.Get("anything")
	assert.Error(t, err)
}
