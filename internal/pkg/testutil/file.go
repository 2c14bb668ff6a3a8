package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFile writes content to fileName inside a fresh temporary directory and returns its path.
func CreateTestFile(t *testing.T, fileName string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), fileName)
	err := os.WriteFile(path, content, 0600)
	require.NoError(t, err, "failed to create test file")
	return path
}

// ReadTestFile returns the content of path, failing the test if it cannot be read.
func ReadTestFile(t *testing.T, path string) []byte {
	t.Helper()

	content, err := os.ReadFile(filepath.Clean(path))
	require.NoError(t, err, "failed to read test file")
	return content
}
