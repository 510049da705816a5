package commands

import (
	"context"
	"errors"
	"fmt"

	"reflection-generator/internal/settings"
)

// ShowConfig prints the effective settings as YAML.
func (c *Controller) ShowConfig(ctx context.Context) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	cfg, err := settings.Load(c.configDir())
	if err != nil {
		return err
	}

	data, err := settings.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	c.printf("# %s\n%s", settings.Path(c.configDir()), data)

	return nil
}

// SaveConfig applies overrides to the saved settings and persists them.
// Validation problems are reported as warnings and nothing is saved.
func (c *Controller) SaveConfig(ctx context.Context, overrides ConfigFlags) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	cfg, err := c.loadConfig(overrides)
	if err != nil {
		return err
	}

	dir := c.configDir()

	c.logDiagnostics(settings.Check(dir, cfg))

	path, err := settings.Save(dir, cfg)
	if errors.Is(err, settings.ErrInvalidConfig) {
		return fmt.Errorf("settings not saved: %w", err)
	}

	if err != nil {
		return err
	}

	c.printf("Generator config saved to %s.\n", path)

	return nil
}
