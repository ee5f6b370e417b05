package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLoggerWritesFile(t *testing.T) {
	t.Cleanup(func() { Log = zap.NewNop().Sugar() })
	path := filepath.Join(t.TempDir(), "server.log")

	require.NoError(t, InitLogger(LogConfig{File: path, Level: "debug", MaxSizeMB: 1}))
	Log.Infow("room created", "code", "ABCD")
	SyncLogger()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "room created")
	assert.Contains(t, string(data), "ABCD")
}

func TestInitLoggerBadLevel(t *testing.T) {
	assert.Error(t, InitLogger(LogConfig{Level: "loud"}))
}
