// Package main provides the CLI entrypoint for reflection-generator.
//
// reflection-generator emits C# extension classes that read and write
// fields of a class through System.Reflection:
//   - Reads type and field metadata from a YAML type catalog
//   - Walks inheritance chains and filters fields by visibility and storage
//   - Generates {Type}Extensions.cs with a getter/setter pair per field
//   - Persists naming settings next to the host project's resources
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"reflection-generator/internal/catalog"
	"reflection-generator/internal/commands"
	"reflection-generator/internal/settings"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	flags := &commands.Flags{}
	ctrl := commands.NewController(flags, log.Logger)

	app := &cli.Command{
		Name:    "reflection-generator",
		Usage:   "Generate C# reflection accessors for non-public fields",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("RG_LOG_LEVEL"),
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config-dir",
				Usage:   "directory holding " + settings.FileName + " (must be a Resources folder)",
				Sources: cli.EnvVars("RG_CONFIG_DIR"),
				Value:   settings.DefaultConfigDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)
			ctrl.Logger = log.Logger
			flags.LogLevel = level.String()
			flags.ConfigDir = c.String("config-dir")

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate the wrapper for one type",
				Flags: append(selectionFlags(), configFlags()...),
				Action: func(ctx context.Context, c *cli.Command) error {
					_, err := ctrl.Generate(ctx, selectionFromFlags(c), configFromFlags(c))

					return err
				},
			},
			{
				Name:  "types",
				Usage: "List catalog types and their inheritance chains",
				Flags: []cli.Flag{catalogFlag()},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Types(ctx, c.String("catalog"))
				},
			},
			{
				Name:  "fields",
				Usage: "List the fields the filter offers for a type",
				Flags: selectionFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Fields(ctx, selectionFromFlags(c))
				},
			},
			{
				Name:  "config",
				Usage: "Show or save generator settings",
				Commands: []*cli.Command{
					{
						Name:  "show",
						Usage: "Print the effective settings",
						Action: func(ctx context.Context, c *cli.Command) error {
							return ctrl.ShowConfig(ctx)
						},
					},
					{
						Name:  "save",
						Usage: "Validate and persist settings",
						Flags: configFlags(),
						Action: func(ctx context.Context, c *cli.Command) error {
							return ctrl.SaveConfig(ctx, configFromFlags(c))
						},
					},
				},
			},
			{
				Name:  "watch",
				Usage: "Regenerate the wrapper whenever the catalog or settings change",
				Flags: append(selectionFlags(), configFlags()...),
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Watch(ctx, selectionFromFlags(c), configFromFlags(c))
				},
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run reflection-generator")
	}
}

func catalogFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "catalog",
		Aliases:  []string{"c"},
		Usage:    "type catalog YAML file",
		Required: true,
	}
}

func selectionFlags() []cli.Flag {
	return []cli.Flag{
		catalogFlag(),
		&cli.StringFlag{
			Name:     "type",
			Aliases:  []string{"t"},
			Usage:    "target type, full or unique simple name",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:    "field",
			Aliases: []string{"f"},
			Usage:   "field to wrap (repeatable)",
		},
		&cli.BoolFlag{Name: "all", Usage: "wrap every field the filter offers"},
		&cli.BoolFlag{Name: "interactive", Aliases: []string{"i"}, Usage: "pick fields from a list"},
		&cli.BoolFlag{Name: "hide-nonpublic", Usage: "do not offer non-public fields"},
		&cli.BoolFlag{Name: "show-public", Usage: "offer public fields"},
		&cli.BoolFlag{Name: "hide-instance", Usage: "do not offer instance fields"},
		&cli.BoolFlag{Name: "show-static", Usage: "offer static fields"},
		&cli.StringSliceFlag{
			Name:  "declaring",
			Usage: "offer fields declared by this type of the inheritance chain (repeatable, default: the target type)",
		},
	}
}

func selectionFromFlags(c *cli.Command) commands.Selection {
	return commands.Selection{
		CatalogPath: c.String("catalog"),
		TypeName:    c.String("type"),
		Fields:      c.StringSlice("field"),
		All:         c.Bool("all"),
		Interactive: c.Bool("interactive"),
		Filter: catalog.Filter{
			ShowNonPublic:  !c.Bool("hide-nonpublic"),
			ShowPublic:     c.Bool("show-public"),
			ShowInstance:   !c.Bool("hide-instance"),
			ShowStatic:     c.Bool("show-static"),
			DeclaringTypes: c.StringSlice("declaring"),
		},
	}
}

func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "rename", Usage: "transform field names into accessor names"},
		&cli.StringFlag{Name: "get-prefix", Usage: "getter name prefix"},
		&cli.StringFlag{Name: "get-postfix", Usage: "getter name postfix"},
		&cli.StringFlag{Name: "set-prefix", Usage: "setter name prefix"},
		&cli.StringFlag{Name: "set-postfix", Usage: "setter name postfix"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "wrapper output directory"},
	}
}

// configFromFlags returns overrides for the flags actually given.
func configFromFlags(c *cli.Command) commands.ConfigFlags {
	var cf commands.ConfigFlags

	if c.IsSet("rename") {
		v := c.Bool("rename")
		cf.RenameFields = &v
	}

	str := func(name string) *string {
		if !c.IsSet(name) {
			return nil
		}

		v := c.String(name)

		return &v
	}

	cf.GetPrefix = str("get-prefix")
	cf.GetPostfix = str("get-postfix")
	cf.SetPrefix = str("set-prefix")
	cf.SetPostfix = str("set-postfix")
	cf.OutputDirectory = str("output")

	return cf
}
