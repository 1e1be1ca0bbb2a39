package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mproffitt/mimeinfo/pkg/locator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDefaults(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.Empty(t, c.MimeDirectories)
	assert.Equal(t, DefaultLang, c.Lang)
}

func TestNewLoadsFile(t *testing.T) {
	path := writeConfig(t, "mimeDirectories:\n  - /usr/share/mime\nlogLevel: debug\nlang: de\n")

	c, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/usr/share/mime"}, c.MimeDirectories)
	assert.Equal(t, "de", c.Lang)
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNewExpandsHome(t *testing.T) {
	path := writeConfig(t, "mimeDirectories:\n  - ~/.local/share/mime\n")

	c, err := New(path)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(home, ".local/share/mime")}, c.MimeDirectories)
}

func TestLocatorSelection(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.IsType(t, &locator.Static{}, c.Locator())

	c.MimeDirectories = []string{t.TempDir()}
	loc := c.Locator()
	require.IsType(t, &locator.Static{}, loc)
	assert.Empty(t, loc.SourceFiles("globs2"))
}
