package mime

// DefaultText The well known fallback type for textual content
const DefaultText = "text/plain"

// DefaultBinary The well known fallback type for binary content
const DefaultBinary = "application/octet-stream"

// DefaultGlobWeight Weight assigned to a glob rule whose source line
// carries an empty weight field
const DefaultGlobWeight = 50

// Locator Supplies the ordered source paths the engine loads from
//
// Implementations return paths in precedence order, highest precedence
// first. The engine performs no directory enumeration of its own; see
// pkg/locator for the XDG implementation.
type Locator interface {
	// SourceFiles returns the existing shared database files for the
	// given logical name ("aliases", "globs2", "generic-icons")
	SourceFiles(name string) []string

	// TypeDocuments returns the existing per-type XML documents for a
	// "media/subtype" name, one per search root that defines the type
	TypeDocuments(typeName string) []string
}

// GlobRule A single weighted file name pattern loaded from a globs2 source
type GlobRule struct {
	Weight        int
	Type          string
	Pattern       string
	CaseSensitive bool

	// pattern lowered once at load time for the case insensitive
	// match fallback
	lower string
}
