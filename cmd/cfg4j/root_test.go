package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with args and returns its stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Reset persistent flag state shared across executions.
	flags.rootDir = ""
	flags.files = nil
	flags.verbose = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "prod")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.properties"), []byte("db.host=localhost\napp=demo\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "override.yaml"), []byte("db:\n  host: db.internal\n"), 0o644))

	return root
}

func TestDumpCommand(t *testing.T) {
	root := writeTree(t)

	out, err := runCommand(t,
		"dump", "prod",
		"--root", root,
		"--file", "base.properties", "--file", "override.yaml",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "app=demo\n")
	assert.Contains(t, out, "db.host=db.internal\n")
}

func TestDumpCommand_Provenance(t *testing.T) {
	root := writeTree(t)

	out, err := runCommand(t,
		"dump", "prod", "--provenance",
		"--root", root,
		"--file", "base.properties", "--file", "override.yaml",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "db.host=db.internal\t# override.yaml")
	assert.Contains(t, out, "app=demo\t# base.properties")
}

func TestGetCommand(t *testing.T) {
	root := writeTree(t)

	out, err := runCommand(t,
		"get", "prod", "db.host",
		"--root", root,
		"--file", "base.properties", "--file", "override.yaml",
	)

	require.NoError(t, err)
	assert.Equal(t, "db.internal\n", out)
}

func TestGetCommand_MissingKey(t *testing.T) {
	root := writeTree(t)

	_, err := runCommand(t,
		"get", "prod", "no.such.key",
		"--root", root,
		"--file", "base.properties",
	)

	require.Error(t, err)
}

func TestRootCommand_RequiresRoot(t *testing.T) {
	t.Setenv("CFG4J_ROOT", "")

	_, err := runCommand(t, "dump", "prod")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration root is required")
}
