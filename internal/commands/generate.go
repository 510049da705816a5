package commands

import (
	"context"

	"reflection-generator/internal/gen"
)

// Generate writes the wrapper for a selection and returns its path.
func (c *Controller) Generate(ctx context.Context, sel Selection, overrides ConfigFlags) (string, error) {
	if err := checkContext(ctx); err != nil {
		return "", err
	}

	cfg, err := c.loadConfig(overrides)
	if err != nil {
		return "", err
	}

	cat, err := c.openCatalog(sel.CatalogPath)
	if err != nil {
		return "", err
	}

	typ, fields, err := c.resolve(cat, sel)
	if err != nil {
		return "", err
	}

	path, err := gen.NewGenerator(c.Logger).Generate(gen.Request{Type: typ, Fields: fields, Config: cfg})
	if err != nil {
		return "", err
	}

	c.printf("Type %s wrapper generated at %s.\n", typ.Name, cfg.OutputDirectory)

	return path, nil
}
