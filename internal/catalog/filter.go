package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"reflection-generator/internal/descriptor"
	"reflection-generator/internal/suggest"
)

// ErrUnknownField is returned by Select for a name no listed field has.
var ErrUnknownField = errors.New("unknown field")

// Filter decides which fields of an inheritance chain are offered for wrapping.
type Filter struct {
	ShowNonPublic bool `yaml:"show_nonpublic"`
	ShowPublic    bool `yaml:"show_public"`
	ShowInstance  bool `yaml:"show_instance"`
	ShowStatic    bool `yaml:"show_static"`
	// DeclaringTypes limits the listing to fields declared by these types.
	// Empty means the target type only.
	DeclaringTypes []string `yaml:"declaring_types,omitempty"`
}

// DefaultFilter shows non-public and instance fields of the target type.
func DefaultFilter() Filter {
	return Filter{
		ShowNonPublic: true,
		ShowInstance:  true,
	}
}

// Matches applies the four toggles. They are alternatives: a field passes
// when any enabled toggle describes it, so with ShowInstance on a public
// instance field is shown even with ShowPublic off.
func (f Filter) Matches(field descriptor.Field) bool {
	return f.ShowNonPublic && !field.IsPublic() ||
		f.ShowPublic && field.IsPublic() ||
		f.ShowInstance && !field.IsStatic() ||
		f.ShowStatic && field.IsStatic()
}

// List returns the reachable fields of name that pass f and are declared by
// a selected type.
func (c *Catalog) List(name string, f Filter) ([]descriptor.Field, error) {
	chain, err := c.BaseTypes(name)
	if err != nil {
		return nil, err
	}

	selected := []string{chain[0].Type.FullName()}

	if len(f.DeclaringTypes) > 0 {
		selected = selected[:0]

		for _, dt := range f.DeclaringTypes {
			e, err := c.Lookup(dt)
			if err != nil {
				return nil, err
			}

			full := e.Type.FullName()
			if !InChain(chain, full) {
				return nil, fmt.Errorf("%s is not in the inheritance chain of %s", full, chain[0].Type.FullName())
			}

			selected = append(selected, full)
		}
	}

	var fields []descriptor.Field

	for _, field := range reachable(chain) {
		if slices.Contains(selected, field.DeclaringType.FullName()) && f.Matches(field) {
			fields = append(fields, field)
		}
	}

	return fields, nil
}

// Select keeps the fields whose names are listed, in listing order. Every
// name must match at least one field.
func Select(fields []descriptor.Field, names []string) ([]descriptor.Field, error) {
	known := make([]string, 0, len(fields))
	for _, f := range fields {
		known = append(known, f.Name)
	}

	var missing []string

	for _, name := range names {
		if !slices.Contains(known, name) {
			missing = append(missing, name+suggest.Hint(name, known))
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(missing, ", "))
	}

	var out []descriptor.Field

	for _, f := range fields {
		if slices.Contains(names, f.Name) {
			out = append(out, f)
		}
	}

	return out, nil
}

// Resolve looks up the target type and the fields to wrap: the fields f
// lists, narrowed to names when any are given.
func (c *Catalog) Resolve(name string, f Filter, names []string) (descriptor.Type, []descriptor.Field, error) {
	e, err := c.Lookup(name)
	if err != nil {
		return descriptor.Type{}, nil, err
	}

	fields, err := c.List(name, f)
	if err != nil {
		return descriptor.Type{}, nil, err
	}

	if len(names) > 0 {
		fields, err = Select(fields, names)
		if err != nil {
			return descriptor.Type{}, nil, fmt.Errorf("%s: %w", e.Type.FullName(), err)
		}
	}

	return e.Type, fields, nil
}
