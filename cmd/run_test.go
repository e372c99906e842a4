package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configdomain "github.com/confixhq/confix/internal/core/domain/config"
	processdomain "github.com/confixhq/confix/internal/core/domain/process"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on sh")
	}
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := NewRootCommand("test", "none", "unknown")
	root.SetArgs(args)
	return root.Execute()
}

func TestRun_ChildSuccess(t *testing.T) {
	skipOnWindows(t)

	err := execute(t, "run", "--", "sh", "-c", "true")
	assert.NoError(t, err)
}

func TestRun_PropagatesChildExitCode(t *testing.T) {
	skipOnWindows(t)

	err := execute(t, "run", "--", "sh", "-c", "exit 7")

	var exitErr *processdomain.ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 7, exitErr.Code)
}

func TestRun_LoadsAndMergesConfigFiles(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	envPath := filepath.Join(dir, "base.env")
	tomlPath := filepath.Join(dir, "override.toml")
	require.NoError(t, os.WriteFile(envPath, []byte("CONFIX_RUN_TEST=from_env\n"), 0o600))
	require.NoError(t, os.WriteFile(tomlPath, []byte("CONFIX_RUN_TEST = \"from_toml\"\n"), 0o600))

	// The child observes the merged value: exit 0 only if the override won.
	err := execute(t, "run",
		"-c", envPath,
		"-c", tomlPath,
		"--", "sh", "-c", `test "$CONFIX_RUN_TEST" = from_toml`)

	assert.NoError(t, err)
}

func TestRun_MissingConfigFile(t *testing.T) {
	skipOnWindows(t)
	missing := filepath.Join(t.TempDir(), "missing.env")

	err := execute(t, "run", "-c", missing, "--", "sh", "-c", "true")

	var notFound *configdomain.FileNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, missing, notFound.Path)
}

func TestRun_NoCommand(t *testing.T) {
	err := execute(t, "run")
	assert.Error(t, err)
}
