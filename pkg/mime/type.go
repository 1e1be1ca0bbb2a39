package mime

import "strings"

// Type A resolved mime type
//
// Type is a thin view keyed by canonical name; it does not own any of
// the tables it reads through. Two Type values resolved from the same
// engine compare equal exactly when their names are equal; use Is to
// compare against a raw name string.
type Type struct {
	name   string
	engine *Engine
}

// Name The canonical "media/subtype" name
func (t Type) Name() string {
	return t.name
}

func (t Type) String() string {
	return t.name
}

// Is Test the type against a raw type name
func (t Type) Is(name string) bool {
	return t.name == name
}

// AliasOf The canonical name this type is an alias for, from the
// global alias table
func (t Type) AliasOf() (string, bool) {
	return t.engine.aliases.Get(t.name)
}

// Comment The human readable comment for this type in the given
// language. No fallback between languages is performed; pass "en" for
// the conventional default.
func (t Type) Comment(lang string) (string, bool) {
	return t.engine.metadata.Comment(t.name, lang)
}

// Aliases The aliases declared inside this type's own documents
func (t Type) Aliases() ([]string, bool) {
	return t.engine.metadata.Aliases(t.name)
}

// GenericIcon The icon registered for this type, if any
func (t Type) GenericIcon() (string, bool) {
	return t.engine.icons.Get(t.name)
}

// Icon The icon name for this type
//
// Falls back to deriving a name from the type itself when no generic
// icon is registered, so the result is never empty.
func (t Type) Icon() string {
	if icon, ok := t.GenericIcon(); ok {
		return icon
	}
	return strings.ReplaceAll(t.name, "/", "-")
}

// IsDefault Test whether this is one of the two well known fallback types
func (t Type) IsDefault() bool {
	return t.name == DefaultText || t.name == DefaultBinary
}

// Parent The super type in the subtype hierarchy
//
// The sub-class-of relationship is not resolved by this engine; Parent
// always reports absent.
func (t Type) Parent() (Type, bool) {
	return Type{}, false
}
