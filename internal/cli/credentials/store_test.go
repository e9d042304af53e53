package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTempConfigHome(t *testing.T) string {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "gomctl-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	oldXDG := os.Getenv("XDG_CONFIG_HOME")
	_ = os.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Cleanup(func() { _ = os.Setenv("XDG_CONFIG_HOME", oldXDG) })

	return tmpDir
}

func TestStoreOperations(t *testing.T) {
	tmpDir := withTempConfigHome(t)

	store, err := NewStore()
	require.NoError(t, err)
	assert.NotNil(t, store)

	expectedPath := filepath.Join(tmpDir, DefaultConfigDir, ConfigFileName)
	assert.Equal(t, expectedPath, store.ConfigPath())

	_, err = store.GetCurrentContext()
	assert.ErrorIs(t, err, ErrNoCurrentContext)
	assert.Empty(t, store.ListContexts())

	ctx1 := &Context{
		ServerURL:       "tcp://localhost:7890",
		APIKey:          "key-1",
		InterpreterID:   "interp-1",
		StripTracebacks: true,
	}
	require.NoError(t, store.SetContext("default", ctx1))
	require.NoError(t, store.UseContext("default"))

	current, err := store.GetCurrentContext()
	require.NoError(t, err)
	assert.Equal(t, "tcp://localhost:7890", current.ServerURL)
	assert.Equal(t, "key-1", current.APIKey)

	ctx2 := &Context{ServerURL: "tcp://staging:7890", APIKey: "key-2"}
	require.NoError(t, store.SetContext("staging", ctx2))

	contexts := store.ListContexts()
	assert.Len(t, contexts, 2)
	assert.Contains(t, contexts, "default")
	assert.Contains(t, contexts, "staging")

	require.NoError(t, store.UseContext("staging"))
	assert.Equal(t, "staging", store.GetCurrentContextName())

	require.NoError(t, store.DeleteContext("staging"))
	assert.Empty(t, store.GetCurrentContextName())

	_, err = store.GetContext("nonexistent")
	assert.ErrorIs(t, err, ErrContextNotFound)

	err = store.UseContext("nonexistent")
	assert.ErrorIs(t, err, ErrContextNotFound)
}

func TestStorePersistsAcrossInstances(t *testing.T) {
	withTempConfigHome(t)

	store, err := NewStore()
	require.NoError(t, err)

	ctx := &Context{ServerURL: "tcp://localhost:7890", APIKey: "key-1", InterpreterID: "interp-1"}
	require.NoError(t, store.SetContext("default", ctx))
	require.NoError(t, store.UseContext("default"))

	reloaded, err := NewStore()
	require.NoError(t, err)

	current, err := reloaded.GetCurrentContext()
	require.NoError(t, err)
	assert.Equal(t, "tcp://localhost:7890", current.ServerURL)
	assert.Equal(t, "key-1", current.APIKey)
	assert.Equal(t, "interp-1", current.InterpreterID)
}

func TestGenerateContextName(t *testing.T) {
	assert.Equal(t, "default", GenerateContextName("tcp://localhost:7890"))
}
