package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inTempDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
}

func runInit(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunInit(&buf))
	return buf.String()
}

func TestInit_CreatesDatabase(t *testing.T) {
	inTempDir(t)

	out := runInit(t)

	assert.Contains(t, out, "htp.db created")
	_, err := os.Stat("htp.db")
	assert.NoError(t, err)
}

func TestInit_IsIdempotent(t *testing.T) {
	inTempDir(t)
	runInit(t)

	out := runInit(t)

	assert.Contains(t, out, "htp.db already exists")
}

func TestInit_CreatesGitignore(t *testing.T) {
	inTempDir(t)

	out := runInit(t)

	assert.Contains(t, out, ".gitignore created")
	data, err := os.ReadFile(".gitignore")
	require.NoError(t, err)
	assert.Contains(t, string(data), "htp.db")
}

func TestInit_AppendsToExistingGitignore(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile(".gitignore", []byte("vendor/\n"), 0o644))

	out := runInit(t)

	assert.Contains(t, out, "htp.db added to .gitignore")
	data, err := os.ReadFile(".gitignore")
	require.NoError(t, err)
	assert.Contains(t, string(data), "vendor/")
	assert.Contains(t, string(data), "htp.db")
}
