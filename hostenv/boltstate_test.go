package hostenv_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nostromo_launchpad/hostenv"
)

func openState(t *testing.T, path string) *hostenv.BoltState {
	t.Helper()
	st, err := hostenv.OpenBoltState(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// TestBoltStateFlushPersists tests that flushed writes survive a close and
// reopen cycle.
func TestBoltStateFlushPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	st := openState(t, path)
	st.Set("k1", "v1")
	st.Set("k2", "v2")
	require.NoError(t, st.Flush())
	require.NoError(t, st.Close())

	st = openState(t, path)
	require.NotNil(t, st.Get("k1"))
	assert.Equal(t, "v1", *st.Get("k1"))
	assert.Equal(t, "v2", *st.Get("k2"))
}

// TestBoltStateUnflushedWritesAreLost tests that writes without a flush do
// not reach the file.
func TestBoltStateUnflushedWritesAreLost(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	st := openState(t, path)
	st.Set("k", "v")
	require.NoError(t, st.Close())

	st = openState(t, path)
	assert.Nil(t, st.Get("k"))
}

// TestBoltStateDiscard tests the rollback path: buffered writes vanish and
// the committed values come back.
func TestBoltStateDiscard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	st := openState(t, path)

	st.Set("k", "committed")
	require.NoError(t, st.Flush())

	st.Set("k", "dirty")
	st.Set("extra", "dirty")
	require.NoError(t, st.Discard())

	require.NotNil(t, st.Get("k"))
	assert.Equal(t, "committed", *st.Get("k"))
	assert.Nil(t, st.Get("extra"))
}

// TestBoltStateDelete tests that a flushed delete removes the committed key.
func TestBoltStateDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	st := openState(t, path)

	st.Set("k", "v")
	require.NoError(t, st.Flush())

	st.Delete("k")
	require.NoError(t, st.Flush())
	require.NoError(t, st.Close())

	st = openState(t, path)
	assert.Nil(t, st.Get("k"))
}

// TestBoltStateCreatesParentDir tests directory creation for nested paths.
func TestBoltStateCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "state.db")

	st := openState(t, path)
	st.Set("k", "v")
	assert.NoError(t, st.Flush())
}
