// Package locator enumerates the directories that make up the shared
// mime info database and hands the engine its source files in a fixed
// precedence order.
package locator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// MimeDirName Name of the database directory under each data root
const MimeDirName = "mime"

// Static A locator over an explicit, caller ordered list of mime
// database directories, highest precedence first
//
// Each root is a directory containing the database itself, such as
// /usr/share/mime. Used for configuration overrides and tests.
type Static struct {
	roots []string
}

// NewStatic Create a locator over explicit database directories
func NewStatic(roots ...string) *Static {
	return &Static{roots: roots}
}

// SourceFiles The existing `<root>/<name>` files in precedence order
func (s *Static) SourceFiles(name string) []string {
	return existing(s.roots, name)
}

// TypeDocuments The existing `<root>/<media>/<subtype>.xml` documents
// in precedence order
func (s *Static) TypeDocuments(typeName string) []string {
	media, subtype, ok := splitType(typeName)
	if !ok {
		return nil
	}
	return existing(s.roots, filepath.Join(media, subtype+".xml"))
}

// NewXDG A locator over the host's XDG data directories
//
// The upstream specification leaves the relative order of the data
// directories to the environment; this locator fixes a deterministic
// precedence: the user data home first, then XDG_DATA_DIRS in the
// order the environment lists them, duplicates removed.
func NewXDG() *Static {
	var (
		roots []string = make([]string, 0, len(xdg.DataDirs)+1)
		seen  map[string]bool
	)
	seen = make(map[string]bool)
	for _, dir := range append([]string{xdg.DataHome}, xdg.DataDirs...) {
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		roots = append(roots, filepath.Join(dir, MimeDirName))
	}
	return NewStatic(roots...)
}

func existing(roots []string, rel string) []string {
	var paths []string = make([]string, 0, len(roots))
	for _, root := range roots {
		path := filepath.Join(root, rel)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}
	return paths
}

func splitType(typeName string) (media, subtype string, ok bool) {
	media, subtype, ok = strings.Cut(typeName, "/")
	if !ok || media == "" || subtype == "" || strings.Contains(subtype, "/") {
		return "", "", false
	}
	return
}
