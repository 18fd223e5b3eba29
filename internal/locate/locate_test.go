package locate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFindCandidatesFiltersAndSorts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "z.ejs"), "")
	writeFile(t, filepath.Join(root, "a.ejs"), "")
	writeFile(t, filepath.Join(root, "partials", "header.ejs"), "")
	writeFile(t, filepath.Join(root, "notes.txt"), "")
	writeFile(t, filepath.Join(root, "script.js"), "")

	l := NewFSLocator([]string{".ejs"}, []string{"backup"})
	got, err := l.FindCandidates(root)
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "a.ejs"),
		filepath.Join(root, "partials", "header.ejs"),
		filepath.Join(root, "z.ejs"),
	}
	assert.Equal(t, want, got)
}

func TestFindCandidatesSkipsBackupDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "index.ejs"), "")
	writeFile(t, filepath.Join(root, "backup", "index.ejs"), "")
	writeFile(t, filepath.Join(root, "admin", "backup", "old.ejs"), "")

	l := NewFSLocator([]string{".ejs"}, []string{"backup"})
	got, err := l.FindCandidates(root)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "index.ejs")}, got)
}

func TestFindCandidatesMissingRoot(t *testing.T) {
	l := NewFSLocator([]string{".ejs"}, []string{"backup"})

	_, err := l.FindCandidates(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestFindCandidatesRootIsFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "file.ejs")
	writeFile(t, path, "")

	l := NewFSLocator([]string{".ejs"}, nil)
	_, err := l.FindCandidates(path)
	assert.ErrorIs(t, err, ErrRootNotFound)
}
