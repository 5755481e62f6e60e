package logging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	require.NoError(t, Initialize("", ""))
	assert.False(t, GetLogger().Core().Enabled(zapcore.DebugLevel), "nop logger must not enable debug")
}

func TestInitializeWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "multibox.log")

	require.NoError(t, Initialize("debug", path))
	t.Cleanup(func() { logger = nil })

	LogTabSwitch("Hello World", "Clock")
	LogListing("/nowhere", 0, errors.New("boom"))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Tab activated")
	assert.Contains(t, string(data), "Directory listing failed")
}

func TestInitializeFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(LogLevelEnvVar, "warn")

	require.NoError(t, InitializeFromEnv(path))
	t.Cleanup(func() { logger = nil })

	Info("not written")
	Warn("written")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "not written")
	assert.Contains(t, string(data), "written")
}
