package identity

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity.db")

	s, err := OpenSQLite(path, nil)
	require.NoError(t, err)
	s.Save("dev-a", 1000)
	s.Save("dev-b", 1001)
	s.Save("dev-a", 1000)
	require.NoError(t, s.Close())

	s2, err := OpenSQLite(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s2.Close() })

	got, err := s2.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int32{"dev-a": 1000, "dev-b": 1001}, got)
}

func TestCloseTwice(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "identity.db"), nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Close(), ErrStoreClosed)
	s.Save("late", 1) // 关闭后忽略
}
