package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONLinesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gallery.log")

	logger, err := New(path, false)
	require.NoError(t, err)
	logger.Info("favorites loaded")
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"favorites loaded"`)
	assert.NotContains(t, out, "hidden at info level")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.log")

	logger, err := New(path, true)
	require.NoError(t, err)
	logger.Debug("filter recomputed")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "filter recomputed"))
}

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New(" ", false)
	require.NoError(t, err)
	logger.Info("dropped")
}
