package mime

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// IconsFile Mapping from canonical type name to a generic icon name,
// loaded from the shared database "generic-icons" sources
//
// Line format is `type:icon`; later parses overwrite earlier values on
// key collision, same as the alias table.
type IconsFile struct {
	icons map[string]string
}

// NewIconsFile Create an empty icon table
func NewIconsFile() *IconsFile {
	return &IconsFile{
		icons: make(map[string]string),
	}
}

// Parse Ingest one source's worth of generic-icons lines
func (i *IconsFile) Parse(r io.Reader) (err error) {
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

		fields := strings.Split(line, ":")
		if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
			return fmt.Errorf("icons: line %d: expected 'type:icon', got %q", lineno, line)
		}
		i.icons[fields[0]] = fields[1]
	}
	err = scanner.Err()
	return
}

// Get Look up the generic icon registered for a type name
func (i *IconsFile) Get(name string) (string, bool) {
	icon, ok := i.icons[name]
	return icon, ok
}
