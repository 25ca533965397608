package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sharing-service dev (commit: none, built: unknown)\n", out)
}

func TestMigrateCommand(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", ":memory:")
	t.Setenv("LOG_LEVEL", "error")

	out, err := run(t, "migrate", "--config-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Migrations completed successfully (driver: sqlite)")
}

func TestInvalidConfigFails(t *testing.T) {
	t.Setenv("AUTH_MODE", "magic")

	_, err := run(t, "migrate", "--config-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_MODE")
}
