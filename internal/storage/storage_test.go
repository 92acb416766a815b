package storage

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "todo.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestGet_MissingKey(t *testing.T) {
	s, _ := openTemp(t)

	v, ok, err := s.Get("tasks")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestPut_Overwrites(t *testing.T) {
	s, _ := openTemp(t)

	require.NoError(t, s.Put("tasks", "[]"))
	require.NoError(t, s.Put("tasks", `[{"id":1}]`))

	v, ok, err := s.Get("tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)
}

func TestRemove(t *testing.T) {
	s, _ := openTemp(t)

	require.NoError(t, s.Put("tasks", "[]"))
	require.NoError(t, s.Remove("tasks"))
	require.NoError(t, s.Remove("never-set"))

	_, ok, err := s.Get("tasks")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValuesSurviveReopen(t *testing.T) {
	s, path := openTemp(t)
	require.NoError(t, s.Put("tasks", "[1,2,3]"))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get("tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[1,2,3]", v)
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "file:memdb?mode=memory", sqliteDSN("file:memdb?mode=memory"))

	dsn := sqliteDSN("/var/lib/todo.db")
	assert.True(t, strings.HasPrefix(dsn, "file:///var/lib/todo.db?"), dsn)
	assert.Contains(t, dsn, "mode=rwc")
}
