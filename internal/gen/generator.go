package gen

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"reflection-generator/internal/descriptor"
	"reflection-generator/internal/naming"
	"reflection-generator/internal/settings"
)

// File naming.
const (
	ClassSuffix = "Extensions"
	Extension   = ".cs"
)

var (
	// ErrOpenGenericTarget is returned for a generic target type; typeof(T)
	// of an unbound generic cannot name the instances the wrapper extends.
	ErrOpenGenericTarget = errors.New("generic target types are not supported")
	// ErrInvalidConfig is returned when the generation config breaks its invariants.
	ErrInvalidConfig = errors.New("invalid generation config")
)

// Request is one generation request.
type Request struct {
	// Type is the class the wrapper extends.
	Type descriptor.Type
	// Fields are wrapped in this order.
	Fields []descriptor.Field
	// Config controls accessor naming and the output directory.
	Config settings.Config
}

// Unit is a generated source file.
type Unit struct {
	// Filename is the name of the file (e.g., "PlayerExtensions.cs").
	Filename string
	// Content is the C# source.
	Content []byte
}

// Lines returns the content as a sequence of lines without terminators.
func (u *Unit) Lines() []string {
	text := strings.TrimSuffix(string(u.Content), "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}

// Generator renders and writes wrappers. It keeps no state between requests.
type Generator struct {
	logger zerolog.Logger
}

// NewGenerator creates a new Generator logging to logger.
func NewGenerator(logger zerolog.Logger) *Generator {
	return &Generator{logger: logger}
}

// ClassName returns the wrapper class name for t, e.g. "PlayerExtensions".
func ClassName(t descriptor.Type) (string, error) {
	name, err := naming.Transform(t.Name)
	if err != nil {
		return "", fmt.Errorf("naming wrapper for %s: %w", t.FullName(), err)
	}

	return name + ClassSuffix, nil
}

// Filename returns the file name the wrapper for t is written to.
func Filename(t descriptor.Type) (string, error) {
	class, err := ClassName(t)
	if err != nil {
		return "", err
	}

	return class + Extension, nil
}

// Emit renders the wrapper unit for req without touching the filesystem.
// Accessor name collisions are not detected.
func (g *Generator) Emit(req Request) (*Unit, error) {
	diags := req.Config.Validate()
	if err := diags.WarningError(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if req.Type.Generic {
		return nil, fmt.Errorf("%w: %s", ErrOpenGenericTarget, req.Type.Render())
	}

	data, err := g.buildUnitData(req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := unitTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing wrapper template: %w", err)
	}

	g.logger.Debug().
		Str("type", req.Type.FullName()).
		Int("fields", len(req.Fields)).
		Msg("emitted wrapper")

	return &Unit{
		Filename: data.ClassName + Extension,
		Content:  buf.Bytes(),
	}, nil
}

// Generate emits the wrapper for req and writes it to the configured output
// directory, replacing any previous file. It returns the written path.
func (g *Generator) Generate(req Request) (string, error) {
	unit, err := g.Emit(req)
	if err != nil {
		return "", err
	}

	path, err := WriteUnit(unit, req.Config.OutputDirectory)
	if err != nil {
		return "", err
	}

	g.logger.Info().
		Str("type", req.Type.FullName()).
		Str("path", path).
		Msg("wrapper generated")

	return path, nil
}

// buildUnitData constructs the template data for a request.
func (g *Generator) buildUnitData(req Request) (*unitData, error) {
	class, err := ClassName(req.Type)
	if err != nil {
		return nil, err
	}

	indent := ""
	if req.Type.Namespace != "" {
		indent = "\t"
	}

	data := &unitData{
		Namespace:  req.Type.Namespace,
		Indent:     indent,
		Member:     indent + "\t",
		Body:       indent + "\t\t",
		ClassName:  class,
		TargetName: strings.ReplaceAll(req.Type.Name, "+", "."),
		TypeConst:  targetTypeConst,
		Flags:      bindingFlags,
		Accessors:  make([]accessorData, 0, len(req.Fields)),
	}

	cfg := req.Config

	for _, f := range req.Fields {
		getter, err := naming.AccessorName(cfg.GetPrefix, f.Name, cfg.GetPostfix, cfg.RenameFields)
		if err != nil {
			return nil, fmt.Errorf("naming getter for %s: %w", f.Name, err)
		}

		setter, err := naming.AccessorName(cfg.SetPrefix, f.Name, cfg.SetPostfix, cfg.RenameFields)
		if err != nil {
			return nil, fmt.Errorf("naming setter for %s: %w", f.Name, err)
		}

		data.Accessors = append(data.Accessors, accessorData{
			Field:     f.Name,
			ValueType: f.ValueType.Render(),
			Getter:    getter,
			Setter:    setter,
		})
	}

	return data, nil
}
