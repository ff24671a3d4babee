package ghoutput

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteNoopWithoutGitHubOutput(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "")
	assert.NoError(t, Write(map[string]string{"key": "value"}))
}

func TestWriteAppendsSortedSanitizedPairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(path, []byte("existing=1\n"), 0o600))
	t.Setenv("GITHUB_OUTPUT", path)

	err := Write(map[string]string{
		"b":   "line1\nline2",
		"a":   "plain",
		"   ": "skipped",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing=1\na=plain\nb=line1%0Aline2\n", string(data))
}
