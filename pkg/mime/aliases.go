package mime

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// AliasesFile One directional mapping from alias type name to canonical
// type name, loaded from the shared database "aliases" sources
//
// Each line is `alias SPACE canonical`. Multiple sources may be parsed
// into the same table; a later parse overwrites an earlier value for
// the same alias, so callers express directory precedence purely by
// call order.
type AliasesFile struct {
	aliases map[string]string
}

// NewAliasesFile Create an empty alias table
func NewAliasesFile() *AliasesFile {
	return &AliasesFile{
		aliases: make(map[string]string),
	}
}

// Parse Ingest one source's worth of alias lines
//
// A malformed line fails the load of this source rather than silently
// corrupting the table.
func (a *AliasesFile) Parse(r io.Reader) (err error) {
	var (
		scanner *bufio.Scanner = bufio.NewScanner(r)
		lineno  int
	)
	for scanner.Scan() {
		lineno++
		var line string = scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, " ")
		if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
			return fmt.Errorf("aliases: line %d: expected 'alias canonical', got %q", lineno, line)
		}
		a.aliases[fields[0]] = fields[1]
	}
	err = scanner.Err()
	return
}

// Get Look up the canonical name for an alias
func (a *AliasesFile) Get(name string) (string, bool) {
	canonical, ok := a.aliases[name]
	return canonical, ok
}
