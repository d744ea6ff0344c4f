package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "log.txt")
	base := []string{"-c", filepath.Join(dir, "missing.json"), "--color", "never", "--log-file", logFile}

	assert.Equal(t, 0, run(append(base, "version")))
	assert.NoFileExists(t, logFile)

	assert.Equal(t, 1, run(append(base, "no-such-command")))
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `[ERROR] `)
	assert.Contains(t, string(data), `error: unknown command "no-such-command"`)
}
