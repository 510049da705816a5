package commands

import (
	"context"
	"errors"
	"os"

	"reflection-generator/internal/descriptor"
	"reflection-generator/internal/settings"
	"reflection-generator/internal/watch"
)

// Watch generates once, then regenerates whenever the catalog or the
// settings file changes. An interactive choice is made once and replayed by
// field name on every change. Regeneration errors are logged, not returned.
func (c *Controller) Watch(ctx context.Context, sel Selection, overrides ConfigFlags) error {
	if sel.Interactive {
		cat, err := c.openCatalog(sel.CatalogPath)
		if err != nil {
			return err
		}

		_, fields, err := c.resolve(cat, sel)
		if err != nil {
			return err
		}

		sel.Interactive = false
		sel.Fields = fieldNames(fields)
	}

	if _, err := c.Generate(ctx, sel, overrides); err != nil {
		return err
	}

	files := []string{sel.CatalogPath}
	if _, err := os.Stat(c.configDir()); err == nil {
		files = append(files, settings.Path(c.configDir()))
	}

	w, err := watch.New(files, watch.DefaultDebounce, c.Logger, func(path string) {
		c.Logger.Info().Str("path", path).Msg("regenerating")

		if _, err := c.Generate(ctx, sel, overrides); err != nil {
			c.Logger.Error().Err(err).Msg("regeneration failed")
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()

	c.Logger.Info().Strs("files", files).Msg("watching for changes")

	err = w.Start(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

func fieldNames(fields []descriptor.Field) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}

	return names
}
