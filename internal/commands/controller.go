// Package commands contains the CLI commands for the application
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"reflection-generator/internal/catalog"
	"reflection-generator/internal/descriptor"
	"reflection-generator/internal/diagnostic"
	"reflection-generator/internal/prompt"
	"reflection-generator/internal/settings"
)

// ErrNoSelection is returned when a generate request names no fields.
var ErrNoSelection = errors.New("no fields selected: pass --field, --all or --interactive")

// Flags are the global command line flags.
type Flags struct {
	LogLevel  string
	ConfigDir string
}

// Selection identifies the type and fields of a generation request.
type Selection struct {
	CatalogPath string
	TypeName    string
	Fields      []string
	All         bool
	Interactive bool
	Filter      catalog.Filter
}

// ConfigFlags override loaded settings. Nil means not given.
type ConfigFlags struct {
	RenameFields    *bool
	GetPrefix       *string
	GetPostfix      *string
	SetPrefix       *string
	SetPostfix      *string
	OutputDirectory *string
}

// Apply copies the given overrides onto cfg.
func (f ConfigFlags) Apply(cfg *settings.Config) {
	if f.RenameFields != nil {
		cfg.RenameFields = *f.RenameFields
	}

	setIf(&cfg.GetPrefix, f.GetPrefix)
	setIf(&cfg.GetPostfix, f.GetPostfix)
	setIf(&cfg.SetPrefix, f.SetPrefix)
	setIf(&cfg.SetPostfix, f.SetPostfix)
	setIf(&cfg.OutputDirectory, f.OutputDirectory)
}

func setIf(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Controller runs CLI commands.
type Controller struct {
	Flags  *Flags
	Logger zerolog.Logger
	Out    io.Writer

	// SelectFields asks the operator to pick fields; defaults to prompt.SelectFields.
	SelectFields func(typeName string, fields []descriptor.Field) ([]descriptor.Field, error)
}

// NewController creates a Controller writing command output to stdout.
func NewController(flags *Flags, logger zerolog.Logger) *Controller {
	return &Controller{
		Flags:        flags,
		Logger:       logger,
		Out:          os.Stdout,
		SelectFields: prompt.SelectFields,
	}
}

func (c *Controller) configDir() string {
	if c.Flags != nil && c.Flags.ConfigDir != "" {
		return c.Flags.ConfigDir
	}

	return settings.DefaultConfigDir
}

// loadConfig reads saved settings and applies the per-request overrides.
func (c *Controller) loadConfig(overrides ConfigFlags) (settings.Config, error) {
	cfg, err := settings.Load(c.configDir())
	if err != nil {
		return settings.Config{}, err
	}

	overrides.Apply(&cfg)

	return cfg, nil
}

func (c *Controller) openCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return nil, errors.New("a catalog file is required")
	}

	cat, err := catalog.Open(path)
	if err != nil {
		return nil, err
	}

	c.logDiagnostics(cat.Diagnostics())

	return cat, nil
}

// resolve picks the target type and fields a selection describes.
func (c *Controller) resolve(cat *catalog.Catalog, sel Selection) (descriptor.Type, []descriptor.Field, error) {
	typ, fields, err := cat.Resolve(sel.TypeName, sel.Filter, sel.Fields)
	if err != nil {
		return descriptor.Type{}, nil, err
	}

	switch {
	case len(sel.Fields) > 0, sel.All:
		return typ, fields, nil
	case sel.Interactive:
		chosen, err := c.SelectFields(typ.FullName(), fields)
		if err != nil {
			return descriptor.Type{}, nil, err
		}

		return typ, chosen, nil
	default:
		return descriptor.Type{}, nil, ErrNoSelection
	}
}

func (c *Controller) logDiagnostics(d diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		var ev *zerolog.Event

		switch diag.Severity {
		case diagnostic.SeverityError:
			ev = c.Logger.Error()
		case diagnostic.SeverityWarning:
			ev = c.Logger.Warn()
		default:
			ev = c.Logger.Debug()
		}

		ev.Str("code", diag.Code).Str("subject", diag.Subject).Msg(diag.Message)
	}
}

func (c *Controller) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// checkContext returns ctx's error, if any, before a command does work.
func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("command cancelled: %w", err)
	}

	return nil
}
