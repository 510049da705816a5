package descriptor

import (
	"fmt"
	"strings"
)

// ObjectFullName is the root of every inheritance chain.
const ObjectFullName = "System.Object"

//go:generate go tool stringer -type=Visibility,StorageClass -linecomment -output=types_string.go

// Visibility is the access level of a field as seen by reflection.
type Visibility int

const (
	VisibilityNonPublic Visibility = iota // nonpublic
	VisibilityPrivate                     // private
	VisibilityPublic                      // public
)

// ParseVisibility parses a visibility keyword. "protected" and "internal"
// map to VisibilityNonPublic; "private" is kept apart because reflection on
// a derived type does not see a base's private fields.
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nonpublic", "non-public", "protected", "internal":
		return VisibilityNonPublic, nil
	case "private":
		return VisibilityPrivate, nil
	case "public":
		return VisibilityPublic, nil
	default:
		return VisibilityNonPublic, fmt.Errorf("unknown visibility %q", s)
	}
}

// StorageClass tells whether a field belongs to instances or to the type.
type StorageClass int

const (
	StorageInstance StorageClass = iota // instance
	StorageStatic                       // static
)

// ParseStorageClass parses a storage keyword.
func ParseStorageClass(s string) (StorageClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "instance":
		return StorageInstance, nil
	case "static":
		return StorageStatic, nil
	default:
		return StorageInstance, fmt.Errorf("unknown storage class %q", s)
	}
}

// Type describes a (possibly generic) type.
type Type struct {
	Name      string // Simple name, e.g. "Player" or "List`1"
	Namespace string // Empty for the global namespace
	Generic   bool
	Args      []Type // Generic type arguments, in declaration order
}

// NewType builds a non-generic Type from a namespace-qualified name.
// Everything up to the last dot is taken as the namespace.
func NewType(fullName string) Type {
	fullName = strings.TrimSpace(fullName)

	idx := strings.LastIndexByte(fullName, '.')
	if idx < 0 {
		return Type{Name: fullName}
	}

	return Type{Namespace: fullName[:idx], Name: fullName[idx+1:]}
}

// FullName returns the namespace-qualified name.
func (t Type) FullName() string {
	if t.Namespace == "" {
		return t.Name
	}

	return t.Namespace + "." + t.Name
}

// BaseName returns FullName without the CLR arity suffix.
func (t Type) BaseName() string {
	return stripArity(t.FullName())
}

// String returns the C# source spelling of the type.
func (t Type) String() string {
	return t.Render()
}

// IsObject reports whether t is System.Object.
func (t Type) IsObject() bool {
	return t.FullName() == ObjectFullName
}

// Field describes one data member of a type.
type Field struct {
	Name          string
	DeclaringType Type
	ValueType     Type
	Visibility    Visibility
	Storage       StorageClass
}

// IsPublic returns true if the field is public.
func (f Field) IsPublic() bool {
	return f.Visibility == VisibilityPublic
}

// IsStatic returns true if the field is static.
func (f Field) IsStatic() bool {
	return f.Storage == StorageStatic
}

// Inherited reports whether GetField on a derived type still finds the
// field: private and static members of a base are not returned without
// BindingFlags.FlattenHierarchy.
func (f Field) Inherited() bool {
	return f.Visibility != VisibilityPrivate && !f.IsStatic()
}

// String returns a one-line summary used in listings and prompts.
func (f Field) String() string {
	return fmt.Sprintf("%s (%s, %s, %s, %s)",
		f.Name, f.ValueType.Render(), f.Visibility, f.Storage, f.DeclaringType.FullName())
}

func stripArity(name string) string {
	if idx := strings.IndexByte(name, '`'); idx >= 0 {
		return name[:idx]
	}

	return name
}
