package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfileFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateCommand_OK(t *testing.T) {
	path := writeProfileFile(t, "name: smoke\nitems: 10\nseed: 42\n")

	stdout, _, err := executeCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, `profile "smoke" OK`)
	assert.Contains(t, stdout, "items=10")
	assert.Contains(t, stdout, "seed=42")
}

func TestValidateCommand_OK_JSON(t *testing.T) {
	path := writeProfileFile(t, "name: smoke\nitems: 10\nseed: 42\n")

	stdout, _, err := executeCommand(t, "validate", path, "--format", "json")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestValidateCommand_UnknownField(t *testing.T) {
	path := writeProfileFile(t, "name: typo\nitem: 10\n")

	stdout, _, err := executeCommand(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error:")
}

func TestValidateCommand_MissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "validate", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
