package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallTemplate(t *testing.T) {
	dir := t.TempDir()

	files, err := installTemplate("book", dir, false)
	require.NoError(t, err)
	assert.Contains(t, files, "Makefile")
	assert.Contains(t, files, ".gitignore")
	assert.Contains(t, files, filepath.ToSlash("manuscript/chapter-01.txt"))
	for _, f := range files {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(f)))
	}
}

func TestInstallTemplateKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	edited := filepath.Join(dir, "Makefile")
	require.NoError(t, os.WriteFile(edited, []byte("# local edits\n"), 0o600))

	_, err := installTemplate("book", dir, false)
	require.NoError(t, err)
	data, err := os.ReadFile(edited)
	require.NoError(t, err)
	assert.Equal(t, "# local edits\n", string(data), "existing files survive without --force")

	_, err = installTemplate("book", dir, true)
	require.NoError(t, err)
	data, err = os.ReadFile(edited)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "local edits", "--force restores template content")
}

func TestDotfileName(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"gitignore", ".gitignore"},
		{"manuscript/chapter-01.txt", "manuscript/chapter-01.txt"},
		{"sub/gitignore", "sub/.gitignore"},
		{"Makefile", "Makefile"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dotfileName(tt.rel))
	}
}
