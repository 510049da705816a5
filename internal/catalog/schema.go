package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"reflection-generator/internal/descriptor"
)

// File is the on-disk catalog document.
type File struct {
	Version string     `yaml:"version"`
	Types   []TypeSpec `yaml:"types"`
}

// TypeSpec describes one class.
type TypeSpec struct {
	Name        string      `yaml:"name"`
	Namespace   string      `yaml:"namespace,omitempty"`
	Base        string      `yaml:"base,omitempty"`
	GenericArgs []TypeExpr  `yaml:"generic_args,omitempty"`
	Fields      []FieldSpec `yaml:"fields,omitempty"`
}

// FieldSpec describes one declared field.
type FieldSpec struct {
	Name       string   `yaml:"name"`
	Type       TypeExpr `yaml:"type"`
	Visibility string   `yaml:"visibility,omitempty"`
	Storage    string   `yaml:"storage,omitempty"`
}

// TypeExpr is a field value type as written in the catalog.
type TypeExpr struct {
	descriptor.Type
}

// IsZero reports whether no type was given.
func (e TypeExpr) IsZero() bool {
	return e.Name == ""
}

// typeExprMapping is the long form of a TypeExpr.
type typeExprMapping struct {
	Name string     `yaml:"name"`
	Args []TypeExpr `yaml:"args"`
}

// UnmarshalYAML implements custom YAML unmarshaling for TypeExpr.
// Accepts:
//   - A type expression: "System.Collections.Generic.List<System.Int32>"
//   - A mapping: {name: System.Collections.Generic.List, args: [System.Int32]}
func (e *TypeExpr) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str == "" {
			*e = TypeExpr{}

			return nil
		}

		t, err := descriptor.ParseType(str)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		e.Type = t

		return nil

	case yaml.MappingNode:
		var m typeExprMapping

		err := node.Decode(&m)
		if err != nil {
			return err
		}

		t, err := descriptor.ParseType(m.Name)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		for _, arg := range m.Args {
			t.Generic = true
			t.Args = append(t.Args, arg.Type)
		}

		e.Type = t

		return nil

	default:
		return fmt.Errorf("line %d: expected type expression or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for TypeExpr.
// Outputs the rendered type expression.
func (e TypeExpr) MarshalYAML() (any, error) {
	return e.Render(), nil
}

// fullName returns the namespace-qualified name of the spec.
func (s *TypeSpec) fullName() string {
	return descriptor.Type{Name: s.Name, Namespace: s.Namespace}.FullName()
}
