package mime

import (
	"strings"
	"sync"

	"github.com/beevik/etree"
	log "github.com/sirupsen/logrus"
)

// typeMetadata Comments and document declared aliases extracted from
// the per-type XML definitions of a single type name
//
// The declared aliases here are the ones written inside the type's own
// documents. They are not reconciled with the global alias table; the
// shared database carries both and they are queryable independently.
type typeMetadata struct {
	comments map[string]string
	aliases  []string
	found    bool
}

// MetadataStore Lazily parsed per-type metadata
//
// Document parsing is comparatively expensive and most resolved types
// never have their comment or alias fields read, so a type's documents
// are located and parsed on first access only, then cached for the
// lifetime of the store. The cache fill is idempotent; the mutex keeps
// concurrent first accesses from racing on map writes.
type MetadataStore struct {
	locator Locator

	mu    sync.Mutex
	types map[string]*typeMetadata
}

// NewMetadataStore Create a store reading documents through the given locator
func NewMetadataStore(locator Locator) *MetadataStore {
	return &MetadataStore{
		locator: locator,
		types:   make(map[string]*typeMetadata),
	}
}

// Comment The comment registered for a type in the given language
//
// The language defaults to "en" when a comment element carries no
// xml:lang attribute; no fallback between languages is performed, so a
// request for "fr" returns absent even when an English comment exists.
func (m *MetadataStore) Comment(typeName, lang string) (string, bool) {
	md := m.load(typeName)
	if !md.found {
		return "", false
	}
	comment, ok := md.comments[lang]
	return comment, ok
}

// Aliases The aliases declared inside the type's own documents, in
// first occurrence order
//
// Returns absent when no documents define the type at all, which is
// distinct from a type whose documents declare zero aliases.
func (m *MetadataStore) Aliases(typeName string) ([]string, bool) {
	md := m.load(typeName)
	if !md.found {
		return nil, false
	}
	return md.aliases, true
}

func (m *MetadataStore) load(typeName string) *typeMetadata {
	m.mu.Lock()
	defer m.mu.Unlock()

	if md, ok := m.types[typeName]; ok {
		return md
	}

	var md *typeMetadata = &typeMetadata{
		comments: make(map[string]string),
		aliases:  make([]string, 0),
	}
	for _, path := range m.locator.TypeDocuments(typeName) {
		doc := etree.NewDocument()
		if err := doc.ReadFromFile(path); err != nil {
			log.Errorf("Unable to parse type document %s. %s", path, err.Error())
			continue
		}
		md.found = true
		mergeDocument(md, doc)
	}

	m.types[typeName] = md
	return md
}

// mergeDocument folds one document into the metadata record. Documents
// arrive in precedence order, so the first comment seen for a language
// wins and aliases keep first occurrence order.
func mergeDocument(md *typeMetadata, doc *etree.Document) {
	root := doc.Root()
	if root == nil {
		return
	}

	for _, comment := range root.SelectElements("comment") {
		var lang string = comment.SelectAttrValue("xml:lang", "en")
		if _, ok := md.comments[lang]; !ok {
			md.comments[lang] = strings.TrimSpace(comment.Text())
		}
	}

	for _, alias := range root.SelectElements("alias") {
		var name string = alias.SelectAttrValue("type", "")
		if name == "" || contains(name, md.aliases) {
			continue
		}
		md.aliases = append(md.aliases, name)
	}
}

func contains(what string, where []string) bool {
	for _, p := range where {
		if what == p {
			return true
		}
	}
	return false
}
