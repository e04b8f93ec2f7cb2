package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/sqlprobe/internal/cli/config"
	"github.com/leapstack-labs/sqlprobe/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSQLFile(t *testing.T, dir, name, sql string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(sql), 0o600))
	return path
}

func TestCheckCommandValidFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeSQLFile(t, dir, "a.sql", "SELECT 1;")
	b := writeSQLFile(t, dir, "b.sql", "SELECT 1; SELECT 2;")

	out, _, err := execute(t, NewCheckCommand(), a, b)
	require.NoError(t, err)

	assert.Contains(t, out, "a.sql: ok (1 statements)")
	assert.Contains(t, out, "b.sql: ok (2 statements)")
}

func TestCheckCommandFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeSQLFile(t, dir, "good.sql", "SELECT 1")
	bad := writeSQLFile(t, dir, "bad.sql", "SELECT * FROM")

	out, errOut, err := execute(t, NewCheckCommand(), good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")

	assert.Contains(t, out, "good.sql: ok")
	assert.Contains(t, errOut, "bad.sql:")
}

func TestCheckCommandMissingFile(t *testing.T) {
	_, errOut, err := execute(t, NewCheckCommand(), filepath.Join(t.TempDir(), "absent.sql"))
	require.Error(t, err)
	assert.Contains(t, errOut, "absent.sql")
}

func TestCheckCommandRequiresArgs(t *testing.T) {
	_, _, err := execute(t, NewCheckCommand())
	assert.Error(t, err)
}

func TestCheckCommandWithTestLogger(t *testing.T) {
	config.ResetConfig()
	path := writeSQLFile(t, t.TempDir(), "q.sql", "SELECT 1")

	cmd := NewCheckCommand()
	cmd.SetContext(testutil.NewTestContext(t))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "ok (1 statements)")
}
