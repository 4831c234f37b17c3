package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/w4sprite"
	"github.com/bodgit/w4sprite/ident"
	"github.com/bodgit/w4sprite/rust"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(verbose bool) *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	return slog.New(slog.DiscardHandler)
}

// Flags beat environment variables which beat the configuration file.
func loadConfig(c *cli.Context) (*w4sprite.Config, error) {
	cfg, err := w4sprite.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("keywords") {
		cfg.Keywords = c.String("keywords")
	}
	if c.IsSet("flatten") {
		cfg.Flatten = c.Bool("flatten")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.Bool("verbose") {
		cfg.Verbose = true
	}

	return cfg, nil
}

func newEncoder(cfg *w4sprite.Config) (*rust.Encoder, error) {
	format, err := rust.ParseByteFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	keywords, err := rust.ParseKeywordPolicy(cfg.Keywords)
	if err != nil {
		return nil, err
	}

	return &rust.Encoder{Format: format, Keywords: keywords}, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "w4sprite"
	app.Usage = "WASM-4 sprite code generator"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			EnvVars: []string{"W4SPRITE_CONFIG"},
			Value:   w4sprite.DefaultConfigFile,
			Usage:   "path to configuration file",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "generate",
			Usage:       "Generate Rust sprite modules from a directory tree",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write the generated source to `FILE` instead of stdout",
				},
				&cli.StringFlag{
					Name:  "format",
					Usage: "byte format, hex or binary",
				},
				&cli.StringFlag{
					Name:  "keywords",
					Usage: "keyword escape policy, raw or suffix",
				},
				&cli.BoolFlag{
					Name:  "flatten",
					Usage: "hoist every sprite into the root module",
				},
				&cli.IntFlag{
					Name:  "workers",
					Usage: "number of images to convert at once",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cfg, err := loadConfig(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				enc, err := newEncoder(cfg)
				if err != nil {
					return cli.Exit(err, 1)
				}

				logger := newLogger(cfg.Verbose)

				tree, err := w4sprite.New(logger, cfg.Workers).Build(c.Context, c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				if cfg.Flatten {
					if tree, err = tree.Flatten(); err != nil {
						return cli.Exit(err, 1)
					}
				}

				if len(tree.SourcePaths()) == 0 {
					logger.Warn("no sprites found", "path", c.Args().First())
				}

				out := os.Stdout
				if cfg.Output != "" && cfg.Output != "-" {
					f, err := os.Create(cfg.Output)
					if err != nil {
						return cli.Exit(err, 1)
					}
					defer f.Close()
					out = f
				}

				if err := enc.Encode(out, tree); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "deps",
			Usage:       "Print the source images a build script should watch",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "cargo",
					Usage: "print cargo:rerun-if-changed directives",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cfg, err := loadConfig(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				tree, err := w4sprite.New(newLogger(cfg.Verbose), cfg.Workers).Build(c.Context, c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				paths := tree.SourcePaths()

				if c.Bool("cargo") {
					if err := rust.CargoInstructions(os.Stdout, paths); err != nil {
						return cli.Exit(err, 1)
					}

					return nil
				}

				for _, path := range paths {
					fmt.Println(path)
				}

				return nil
			},
		},
		{
			Name:        "list",
			Usage:       "List the sprites found in a directory tree",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cfg, err := loadConfig(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				tree, err := w4sprite.New(newLogger(cfg.Verbose), cfg.Workers).Build(c.Context, c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				t := table.NewWriter()
				t.SetOutputMirror(os.Stdout)
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Sprite", "Width", "Height", "Flags", "Bytes", "Source"})

				var walk func(prefix string, m *w4sprite.Module)
				walk = func(prefix string, m *w4sprite.Module) {
					for _, n := range m.Children() {
						switch n := n.(type) {
						case *w4sprite.Module:
							walk(prefix+n.Name()+"::", n)
						case *w4sprite.Leaf:
							s := n.Sprite()
							t.AppendRow(table.Row{
								prefix + n.Identifier(),
								s.Width(),
								s.Height(),
								s.Depth(),
								len(s.Data()),
								n.SourcePath(),
							})
						}
					}
				}
				walk("", tree)

				t.Render()

				return nil
			},
		},
		{
			Name:        "convert",
			Usage:       "Convert a single image and print its constants",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Usage: "byte format, hex or binary",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cfg, err := loadConfig(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				enc, err := newEncoder(cfg)
				if err != nil {
					return cli.Exit(err, 1)
				}

				path := c.Args().First()

				s, err := w4sprite.ReadSprite(path)
				if err != nil {
					return cli.Exit(err, 1)
				}

				stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

				name, err := ident.Constant(stem)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := enc.EncodeSprite(os.Stdout, name, s); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
