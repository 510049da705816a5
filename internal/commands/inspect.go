package commands

import (
	"context"
	"strings"

	"reflection-generator/internal/descriptor"
)

// Types prints every catalog type with its inheritance chain and the number
// of fields reflection can reach on it.
func (c *Controller) Types(ctx context.Context, catalogPath string) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	cat, err := c.openCatalog(catalogPath)
	if err != nil {
		return err
	}

	for _, t := range cat.Types() {
		chain, err := cat.BaseTypes(t.FullName())
		if err != nil {
			return err
		}

		names := make([]string, 0, len(chain))
		for _, e := range chain {
			names = append(names, e.Type.FullName())
		}

		line := strings.Join(names, " : ")
		if last := chain[len(chain)-1]; last.Base != "" && last.Base != descriptor.ObjectFullName {
			line += " : " + last.Base + " (external)"
		}

		fields, err := cat.Fields(t.FullName())
		if err != nil {
			return err
		}

		c.printf("%s [%d fields]\n", line, len(fields))
	}

	return nil
}

// Fields prints the fields a selection's filter offers.
func (c *Controller) Fields(ctx context.Context, sel Selection) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	cat, err := c.openCatalog(sel.CatalogPath)
	if err != nil {
		return err
	}

	_, fields, err := cat.Resolve(sel.TypeName, sel.Filter, sel.Fields)
	if err != nil {
		return err
	}

	for _, f := range fields {
		c.printf("%s\n", f)
	}

	return nil
}
