// Package mime resolves file names and type names against the XDG
// shared mime info database.
//
// The engine loads the line oriented alias, glob and icon sources once
// at construction time and answers every query from the resulting in
// memory tables; per-type XML documents are parsed lazily on first
// comment or alias access. Which directories make up the database, and
// in which precedence order, is the business of the Locator the engine
// is built with.
package mime

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Engine Read only resolution tables built from an ordered source list
//
// Safe for concurrent use once constructed.
type Engine struct {
	aliases  *AliasesFile
	globs    *GlobsFile
	icons    *IconsFile
	metadata *MetadataStore
}

type sourceParser interface {
	Parse(r io.Reader) error
}

// NewEngine Build the resolution tables from every source the locator lists
//
// Sources for each table are parsed lowest precedence first so that the
// tables' last-wins merge leaves the highest precedence directory's
// records in place. A source that cannot be opened, or that contains a
// malformed record, fails construction; a partially loaded precedence
// table is worse than an explicit error.
func NewEngine(locator Locator) (*Engine, error) {
	var e *Engine = &Engine{
		aliases:  NewAliasesFile(),
		globs:    NewGlobsFile(),
		icons:    NewIconsFile(),
		metadata: NewMetadataStore(locator),
	}

	sources := []struct {
		name   string
		parser sourceParser
	}{
		{"aliases", e.aliases},
		{"globs2", e.globs},
		{"generic-icons", e.icons},
	}
	for _, source := range sources {
		paths := locator.SourceFiles(source.name)
		for i := len(paths) - 1; i >= 0; i-- {
			if err := parseFile(paths[i], source.parser); err != nil {
				return nil, err
			}
		}
		log.Debugf("Loaded %d %s source(s)", len(paths), source.name)
	}

	return e, nil
}

func parseFile(path string, parser sourceParser) (err error) {
	var f *os.File
	if f, err = os.Open(path); err != nil {
		return
	}
	defer f.Close()

	if err = parser.Parse(f); err != nil {
		err = fmt.Errorf("%s: %w", path, err)
	}
	return
}

// FromName Resolve a file name to its type
//
// Reports absent when no glob rule matches; a file name with no known
// type is a normal outcome, not an error.
func (e *Engine) FromName(fileName string) (Type, bool) {
	name, ok := e.globs.Match(fileName)
	if !ok {
		return Type{}, false
	}
	return Type{name: name, engine: e}, true
}

// ForType Wrap a raw type name for metadata queries
//
// The name is not validated against the database; queries on an
// unknown type simply report absent.
func (e *Engine) ForType(typeName string) Type {
	return Type{name: typeName, engine: e}
}
