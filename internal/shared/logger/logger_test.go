package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger_Levels(t *testing.T) {
	require.False(t, newLogger("production").Core().Enabled(zap.DebugLevel))
	require.True(t, newLogger("production").Core().Enabled(zap.InfoLevel))
	require.True(t, newLogger("development").Core().Enabled(zap.DebugLevel))
	require.True(t, newLogger("").Core().Enabled(zap.DebugLevel))
}

func TestResolveEnv_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_ENV=production\n"), 0o600))
	chdir(t, dir)

	// registered for restore, then removed so .env is the only source
	t.Setenv("APP_ENV", "")
	require.NoError(t, os.Unsetenv("APP_ENV"))

	require.Equal(t, "production", resolveEnv())
}

func TestResolveEnv_ProcessEnvWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_ENV=production\n"), 0o600))
	chdir(t, dir)
	t.Setenv("APP_ENV", "staging")

	require.Equal(t, "staging", resolveEnv())
}

// chdir switches the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
