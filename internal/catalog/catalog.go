package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"reflection-generator/internal/descriptor"
	"reflection-generator/internal/diagnostic"
	"reflection-generator/internal/suggest"
)

var (
	// ErrUnknownType is returned when a type name is not in the catalog.
	ErrUnknownType = errors.New("unknown type")
	// ErrAmbiguousType is returned when a simple name matches several types.
	ErrAmbiguousType = errors.New("ambiguous type name")
	// ErrInheritanceCycle is returned when a base chain loops back on itself.
	ErrInheritanceCycle = errors.New("inheritance cycle")
)

// Entry is an indexed catalog type.
type Entry struct {
	Type   descriptor.Type
	Base   string // Full name of the base type; empty means System.Object
	Fields []descriptor.Field
}

// Catalog indexes a File by full type name.
type Catalog struct {
	entries map[string]*Entry
	order   []string
	diags   diagnostic.Diagnostics
}

// New validates f and builds a Catalog. Error diagnostics fail the build;
// warnings and infos stay available through Diagnostics.
func New(f *File) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]*Entry, len(f.Types))}

	for i := range f.Types {
		c.add(&f.Types[i])
	}

	for _, name := range c.order {
		c.resolveBase(c.entries[name])
	}

	if err := c.diags.Error(); err != nil {
		return nil, err
	}

	return c, nil
}

// resolveBase rewrites e.Base to a catalog full name the way C# binds a base
// clause: as written, then relative to each enclosing namespace from the
// innermost out, then as a unique simple name. A base found none of these
// ways is external.
func (c *Catalog) resolveBase(e *Entry) {
	if e.Base == "" || e.Base == descriptor.ObjectFullName {
		return
	}

	if _, ok := c.entries[e.Base]; ok {
		return
	}

	for ns := e.Type.Namespace; ns != ""; ns = parentNamespace(ns) {
		if _, ok := c.entries[ns+"."+e.Base]; ok {
			e.Base = ns + "." + e.Base

			return
		}
	}

	subject := e.Type.FullName()

	found, err := c.Lookup(e.Base)
	switch {
	case err == nil:
		e.Base = found.Type.FullName()
	case errors.Is(err, ErrAmbiguousType):
		c.diags.AddError(diagnostic.CodeAmbiguousBase, err.Error(), subject)
	default:
		c.diags.AddInfo(diagnostic.CodeExternalBase,
			fmt.Sprintf("base type %s is not described; its fields are not listed", e.Base), subject)
	}
}

func parentNamespace(ns string) string {
	if idx := strings.LastIndexByte(ns, '.'); idx >= 0 {
		return ns[:idx]
	}

	return ""
}

func (c *Catalog) add(spec *TypeSpec) {
	if spec.Name == "" {
		c.diags.AddError(diagnostic.CodeEmptyName, "type has no name", spec.Namespace)

		return
	}

	fullName := spec.fullName()
	if _, ok := c.entries[fullName]; ok {
		c.diags.AddError(diagnostic.CodeDuplicateType, "type is declared more than once", fullName)

		return
	}

	t := descriptor.Type{Name: spec.Name, Namespace: spec.Namespace}
	for _, arg := range spec.GenericArgs {
		t.Generic = true
		t.Args = append(t.Args, arg.Type)
	}

	e := &Entry{Type: t, Base: strings.TrimSpace(spec.Base)}
	seen := make(map[string]bool, len(spec.Fields))

	for _, fs := range spec.Fields {
		subject := fullName + "." + fs.Name

		if fs.Name == "" {
			c.diags.AddError(diagnostic.CodeEmptyName, "field has no name", fullName)

			continue
		}

		if seen[fs.Name] {
			c.diags.AddError(diagnostic.CodeDuplicateField, "field is declared more than once", subject)

			continue
		}

		seen[fs.Name] = true

		if fs.Type.IsZero() {
			c.diags.AddError(diagnostic.CodeBadFieldType, "field has no type", subject)

			continue
		}

		vis, err := descriptor.ParseVisibility(fs.Visibility)
		if err != nil {
			c.diags.AddError(diagnostic.CodeBadVisibility, err.Error(), subject)

			continue
		}

		storage, err := descriptor.ParseStorageClass(fs.Storage)
		if err != nil {
			c.diags.AddError(diagnostic.CodeBadStorage, err.Error(), subject)

			continue
		}

		e.Fields = append(e.Fields, descriptor.Field{
			Name:          fs.Name,
			DeclaringType: t,
			ValueType:     fs.Type.Type,
			Visibility:    vis,
			Storage:       storage,
		})
	}

	c.entries[fullName] = e
	c.order = append(c.order, fullName)
}

// Diagnostics returns the non-fatal findings collected while indexing.
func (c *Catalog) Diagnostics() diagnostic.Diagnostics {
	return c.diags
}

// Types returns all catalog types in declaration order.
func (c *Catalog) Types() []descriptor.Type {
	types := make([]descriptor.Type, 0, len(c.order))
	for _, name := range c.order {
		types = append(types, c.entries[name].Type)
	}

	return types
}

// Lookup finds a type by full name, or by simple name when that is unique.
func (c *Catalog) Lookup(name string) (*Entry, error) {
	if e, ok := c.entries[name]; ok {
		return e, nil
	}

	var matches []string
	for _, full := range c.order {
		if c.entries[full].Type.Name == name {
			matches = append(matches, full)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s%s", ErrUnknownType, name, suggest.Hint(name, c.order))
	case 1:
		return c.entries[matches[0]], nil
	default:
		return nil, fmt.Errorf("%w: %s matches %s", ErrAmbiguousType, name, strings.Join(matches, ", "))
	}
}

// BaseTypes returns the inheritance chain of name: the type itself first,
// then each base in turn. System.Object is left out, and the walk ends at a
// base the catalog does not describe.
func (c *Catalog) BaseTypes(name string) ([]*Entry, error) {
	e, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}

	if e.Type.IsObject() {
		return nil, fmt.Errorf("%w: %s cannot be wrapped", ErrUnknownType, descriptor.ObjectFullName)
	}

	var chain []*Entry

	visited := make(map[string]bool)

	for e != nil && !e.Type.IsObject() {
		full := e.Type.FullName()
		if visited[full] {
			return nil, fmt.Errorf("%w: %s", ErrInheritanceCycle, chainString(chain, full))
		}

		visited[full] = true
		chain = append(chain, e)

		e = c.entries[e.Base]
	}

	return chain, nil
}

// Fields returns the fields reflection on name can reach: every field the
// type declares, then the inherited fields of each base in turn, each in
// declaration order. Private and static members of a base are left out.
func (c *Catalog) Fields(name string) ([]descriptor.Field, error) {
	chain, err := c.BaseTypes(name)
	if err != nil {
		return nil, err
	}

	return reachable(chain), nil
}

func reachable(chain []*Entry) []descriptor.Field {
	var fields []descriptor.Field

	for i, e := range chain {
		for _, f := range e.Fields {
			if i == 0 || f.Inherited() {
				fields = append(fields, f)
			}
		}
	}

	return fields
}

// InChain reports whether full is one of the chain's type names.
func InChain(chain []*Entry, full string) bool {
	return slices.ContainsFunc(chain, func(e *Entry) bool {
		return e.Type.FullName() == full
	})
}

func chainString(chain []*Entry, closing string) string {
	names := make([]string, 0, len(chain)+1)
	for _, e := range chain {
		names = append(names, e.Type.FullName())
	}

	return strings.Join(append(names, closing), " -> ")
}
