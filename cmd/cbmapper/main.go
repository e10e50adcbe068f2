package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/cbmapper"
	"github.com/bodgit/cbmapper/format"
	"github.com/bodgit/cbmapper/image"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

var titleFlag = &cli.StringFlag{
	Name:    "title",
	Aliases: []string{"t"},
	EnvVars: []string{"CBMAPPER_TITLE"},
	Value:   format.Zeus.String(),
	Usage:   "game the files belong to: caesar3, pharaoh or zeus",
}

var scaleFlag = &cli.IntFlag{
	Name:  "scale",
	Value: 1,
	Usage: "enlarge the minimap by this factor",
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
	}
	return logger
}

func scan(c *cli.Context, t format.Title, opts cbmapper.Options) (err error) {
	var catalog *cbmapper.Catalog
	if c.String("db") != "" {
		if catalog, err = cbmapper.NewCatalog(c.String("db")); err != nil {
			return err
		}
		defer func() {
			if cerr := catalog.Close(); err == nil {
				err = cerr
			}
		}()
	}

	return cbmapper.New(catalog, newLogger(c)).Scan(c.Args().First(), c.Args().Get(1), t, opts)
}

func outputFormat(c *cli.Context, output string) (image.Format, error) {
	if c.IsSet("format") {
		return image.ParseFormat(c.String("format"))
	}
	if f, err := image.FormatFromPath(output); err == nil {
		return f, nil
	}
	return image.PNG, nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "cbmapper"
	app.Usage = "Minimap extractor for Caesar 3, Pharaoh and Zeus"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"CBMAPPER_DB"},
			Usage:   "path to catalog database, only used by scan",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "render",
			Usage:       "Render the minimap of a single file",
			Description: "Adventures produce one image per map, colonies are numbered C1 to C4.",
			ArgsUsage:   "FILE OUTPUT",
			Flags: []cli.Flag{
				titleFlag,
				&cli.StringFlag{
					Name:  "format",
					Usage: "image format: png, gif, bmp or tiff, defaults to the output extension",
				},
				scaleFlag,
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				t, err := format.ParseTitle(c.String("title"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				f, err := outputFormat(c, c.Args().Get(1))
				if err != nil {
					return cli.Exit(err, 1)
				}

				m := cbmapper.New(nil, newLogger(c))

				maps, err := m.Render(c.Args().First(), t)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := m.Write(maps, c.Args().Get(1), cbmapper.Options{Format: f, Scale: c.Int("scale")}); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Render every file in a directory tree",
			Description: "",
			ArgsUsage:   "DIRECTORY OUTPUT",
			Flags: []cli.Flag{
				titleFlag,
				&cli.StringFlag{
					Name:  "format",
					Value: image.PNG.String(),
					Usage: "image format: png, gif, bmp or tiff",
				},
				scaleFlag,
				&cli.IntFlag{
					Name:  "workers",
					Value: 10,
					Usage: "number of files to render at once",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				t, err := format.ParseTitle(c.String("title"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				f, err := image.ParseFormat(c.String("format"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				opts := cbmapper.Options{
					Format:  f,
					Scale:   c.Int("scale"),
					Workers: c.Int("workers"),
				}

				if err := scan(c, t, opts); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "info",
			Usage:       "Describe the maps in a file",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				titleFlag,
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				t, err := format.ParseTitle(c.String("title"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				maps, err := cbmapper.New(nil, newLogger(c)).Inspect(c.Args().First(), t)
				if err != nil {
					return cli.Exit(err, 1)
				}

				for _, mp := range maps {
					if mp.Err != nil {
						fmt.Fprintf(c.App.Writer, "%d\t%s\t%s\terror: %v\n", mp.Index, mp.Title, mp.Kind, mp.Err)
						continue
					}
					fmt.Fprintf(c.App.Writer, "%d\t%s\t%s\t%dx%d\t%s\n", mp.Index, mp.Title, mp.Kind, mp.MapSize, mp.MapSize, mp.Climate)
				}

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
