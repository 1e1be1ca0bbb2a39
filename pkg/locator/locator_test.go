package locator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte{}, 0o644))
}

func TestStaticSourceFilesKeepsPrecedenceOrder(t *testing.T) {
	var user, system string = t.TempDir(), t.TempDir()
	touch(t, filepath.Join(user, "globs2"))
	touch(t, filepath.Join(system, "globs2"))

	loc := NewStatic(user, system)
	assert.Equal(t, []string{
		filepath.Join(user, "globs2"),
		filepath.Join(system, "globs2"),
	}, loc.SourceFiles("globs2"))
}

func TestStaticSourceFilesSkipsMissing(t *testing.T) {
	var user, system string = t.TempDir(), t.TempDir()
	touch(t, filepath.Join(system, "aliases"))

	loc := NewStatic(user, system)
	assert.Equal(t, []string{filepath.Join(system, "aliases")}, loc.SourceFiles("aliases"))
	assert.Empty(t, loc.SourceFiles("generic-icons"))
}

func TestStaticTypeDocuments(t *testing.T) {
	var root string = t.TempDir()
	touch(t, filepath.Join(root, "text", "x-log.xml"))

	loc := NewStatic(root)
	assert.Equal(t, []string{
		filepath.Join(root, "text", "x-log.xml"),
	}, loc.TypeDocuments("text/x-log"))

	assert.Empty(t, loc.TypeDocuments("text/x-unknown"))
}

func TestStaticTypeDocumentsRejectsBadNames(t *testing.T) {
	loc := NewStatic(t.TempDir())

	for _, name := range []string{"text", "text/", "/x-log", "text/x/y", ""} {
		assert.Empty(t, loc.TypeDocuments(name), "type name %q", name)
	}
}

func TestXDGUsesDataHomeFirst(t *testing.T) {
	loc := NewXDG()
	require.NotNil(t, loc)
	require.NotEmpty(t, loc.roots)
	assert.Equal(t, MimeDirName, filepath.Base(loc.roots[0]))
}
